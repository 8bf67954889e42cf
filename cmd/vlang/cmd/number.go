package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/vlang/pkg/vlang"
)

var numberCmd = &cobra.Command{
	Use:   "number <literal>",
	Short: "Parse a Verilog numeric literal and print its width/signedness/value",
	Args:  cobra.ExactArgs(1),
	RunE:  runNumber,
}

func init() {
	rootCmd.AddCommand(numberCmd)
}

func runNumber(cmd *cobra.Command, args []string) error {
	lit := args[0]

	n, ok := vlang.ParseNumber(lit)
	if !ok {
		fmt.Printf("%s: malformed literal\n", lit)
		return nil
	}

	if w, ok := vlang.NumberBits(lit); ok {
		fmt.Printf("width:  %d\n", w)
	} else {
		fmt.Println("width:  (unsized)")
	}
	fmt.Printf("signed: %v\n", vlang.NumberSigned(lit))
	fmt.Printf("value:  %d\n", n.Int())
	fmt.Printf("bigint: %s\n", n.BigInt().String())

	bv := n.BitVector(32)
	fmt.Print("bits:   ")
	for i := len(bv) - 1; i >= 0; i-- {
		if bv[i] {
			fmt.Print("1")
		} else {
			fmt.Print("0")
		}
	}
	fmt.Println()
	return nil
}
