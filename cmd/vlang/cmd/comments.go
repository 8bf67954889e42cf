package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/vlang/pkg/vlang"
)

var stripCommentsCmd = &cobra.Command{
	Use:   "strip-comments",
	Short: "Remove // and /* */ comments from stdin, preserving line numbers",
	Args:  cobra.NoArgs,
	RunE:  runStripComments,
}

func init() {
	rootCmd.AddCommand(stripCommentsCmd)
}

func runStripComments(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("vlang: failed to read stdin: %w", err)
	}
	fmt.Print(vlang.StripComments(string(data)))
	return nil
}
