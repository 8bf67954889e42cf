package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vlang",
	Short: "Verilog/SystemVerilog/Verilog-AMS lexical utility core",
	Long: `vlang exposes the keyword classification, numeric literal
parsing, comment stripping, and bus expansion operations of the Verilog
language core from the command line.

Examples:
  vlang keyword logic --standard 1800-2005
  vlang number 32'shfeed
  vlang bus "[31,5:4]"
  vlang strip-comments < file.v`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
