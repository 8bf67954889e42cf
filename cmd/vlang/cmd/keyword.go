package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/vlang/pkg/vlang"
)

var (
	keywordStandard string
	keywordDirect   bool
	keywordGate     bool
)

var keywordCmd = &cobra.Command{
	Use:   "keyword <symbol>",
	Short: "Classify a symbol as a keyword, compiler directive, or gate primitive",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyword,
}

func init() {
	rootCmd.AddCommand(keywordCmd)
	keywordCmd.Flags().StringVarP(&keywordStandard, "standard", "s", "", "set the active standard before classifying")
	keywordCmd.Flags().BoolVarP(&keywordDirect, "directive", "d", false, "classify as a compiler directive instead")
	keywordCmd.Flags().BoolVarP(&keywordGate, "gate", "g", false, "classify as a gate primitive instead")
}

func runKeyword(cmd *cobra.Command, args []string) error {
	sym := args[0]

	if keywordStandard != "" {
		if _, err := vlang.LanguageStandard(keywordStandard); err != nil {
			return fmt.Errorf("vlang: %w", err)
		}
	}

	var std string
	var ok bool
	switch {
	case keywordDirect:
		std, ok = vlang.IsCompilerDirective(sym)
	case keywordGate:
		std, ok = vlang.IsGatePrimitive(sym)
	default:
		std, ok = vlang.IsKeyword(sym)
	}

	if !ok {
		fmt.Printf("%s: not recognized\n", sym)
		return nil
	}
	fmt.Printf("%s: %s\n", sym, std)
	return nil
}
