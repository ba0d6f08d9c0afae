// Package similar checks whether two merchant names refer to the same merchant
package similar

import (
	"fmt"
	"io"

	"fjacquet/txn-categorizer/cmd/root"
	"fjacquet/txn-categorizer/internal/categorizer"

	"github.com/spf13/cobra"
)

var minLength int

// Cmd represents the similar command
var Cmd = &cobra.Command{
	Use:   "similar <merchant-a> <merchant-b>",
	Short: "Check whether two merchant names are the same merchant",
	Long: `Check whether two merchant names plausibly refer to the same merchant
after removing payment-rail noise such as prefixes, reference numbers and
city suffixes.

Example:
  txn-categorizer similar "UPI-ZOMATO LTD" "zomato.payu@hdfcbank"`,
	Args: cobra.ExactArgs(2),
	RunE: similarFunc,
}

func init() {
	Cmd.Flags().IntVar(&minLength, "min-length", 0, "Minimum cleaned length for a match (0 uses the configured value)")
}

func similarFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	return Similar(cmd.OutOrStdout(), c.GetCategorizer(), args[0], args[1], minLength)
}

// Similar writes "similar" or "different" for the pair.
func Similar(out io.Writer, cat *categorizer.Categorizer, a, b string, min int) error {
	verdict := "different"
	if cat.IsSimilarMerchant(a, b, min) {
		verdict = "similar"
	}
	_, err := fmt.Fprintln(out, verdict)
	return err
}
