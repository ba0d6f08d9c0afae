// Package suggest lists ranked category suggestions for a transaction
package suggest

import (
	"fmt"
	"io"

	"fjacquet/txn-categorizer/cmd/root"
	"fjacquet/txn-categorizer/internal/categorizer"

	"github.com/spf13/cobra"
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest <merchant> [description]",
	Short: "Suggest up to three categories for a transaction",
	Long: `Suggest up to three categories for a transaction, ranked by how many of
each category's patterns occur in the merchant and description.

Example:
  txn-categorizer suggest "Swiggy" "Instamart order"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: suggestFunc,
}

func suggestFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}

	var description string
	if len(args) > 1 {
		description = args[1]
	}
	return Suggest(cmd.OutOrStdout(), c.GetCategorizer(), args[0], description)
}

// Suggest writes one line per suggestion, best first.
func Suggest(out io.Writer, cat *categorizer.Categorizer, merchant, description string) error {
	suggestions := cat.Suggestions(merchant, description)
	if len(suggestions) == 0 {
		_, err := fmt.Fprintln(out, "No suggestions")
		return err
	}

	for i, s := range suggestions {
		if _, err := fmt.Fprintf(out, "%d. %s (%.1f%%)\n", i+1, s.Category, s.Confidence); err != nil {
			return err
		}
	}
	return nil
}
