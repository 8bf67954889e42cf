package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/vlang/pkg/vlang"
)

var busNoComma bool

var busCmd = &cobra.Command{
	Use:   "bus <expression>",
	Short: "Expand a bus expression into its ordered scalar references",
	Args:  cobra.ExactArgs(1),
	RunE:  runBus,
}

func init() {
	rootCmd.AddCommand(busCmd)
	busCmd.Flags().BoolVar(&busNoComma, "no-comma", false, "use the simple (no comma, no stride) grammar")
}

func runBus(cmd *cobra.Command, args []string) error {
	var expanded []string
	if busNoComma {
		expanded = vlang.SplitBusNoComma(args[0])
	} else {
		expanded = vlang.SplitBus(args[0])
	}
	for _, e := range expanded {
		fmt.Println(e)
	}
	return nil
}
