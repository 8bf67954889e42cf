package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/vlang/pkg/vlang"
)

var standardMax bool

var standardCmd = &cobra.Command{
	Use:   "standard [name]",
	Short: "Get or set the active language standard",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStandard,
}

func init() {
	rootCmd.AddCommand(standardCmd)
	standardCmd.Flags().BoolVar(&standardMax, "max", false, "print the maximum supported standard instead")
}

func runStandard(cmd *cobra.Command, args []string) error {
	if standardMax {
		fmt.Println(vlang.LanguageMaximum())
		return nil
	}
	var current string
	var err error
	if len(args) == 1 {
		current, err = vlang.LanguageStandard(args[0])
	} else {
		current, err = vlang.LanguageStandard()
	}
	if err != nil {
		return fmt.Errorf("vlang: %w", err)
	}
	fmt.Println(current)
	return nil
}
