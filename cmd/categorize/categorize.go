// Package categorize handles single-transaction categorization
package categorize

import (
	"context"
	"fmt"
	"io"

	"fjacquet/txn-categorizer/cmd/root"
	"fjacquet/txn-categorizer/internal/categorizer"
	"fjacquet/txn-categorizer/internal/models"

	"github.com/spf13/cobra"
)

var (
	merchant    string
	description string
	detail      bool
	noRules     bool
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction",
	Long: `Categorize a single transaction from its merchant name and description.

User rules from the rules file are applied first, then the built-in patterns.

Example:
  txn-categorizer categorize -m "UPI-SWIGGY INSTAMART" -d "order 1234" --detail`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&merchant, "merchant", "m", "", "Merchant name")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description")
	Cmd.Flags().BoolVar(&detail, "detail", false, "Show source, confidence and matched pattern")
	Cmd.Flags().BoolVar(&noRules, "no-rules", false, "Ignore user rules")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	if merchant == "" && description == "" {
		return fmt.Errorf("merchant or description is required")
	}

	var rules []models.Rule
	if !noRules {
		rules = c.GetRules()
	}

	in := models.Input{Merchant: merchant, Description: description}
	return Categorize(cmd.Context(), cmd.OutOrStdout(), c.GetCategorizer(), in, rules, detail)
}

// Categorize categorizes one input and writes the category, or the full
// result when withDetail is set, to out.
func Categorize(ctx context.Context, out io.Writer, cat *categorizer.Categorizer, in models.Input, rules []models.Rule, withDetail bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return printResult(out, cat.CategorizeDetailed(ctx, in, rules), withDetail)
}

func printResult(out io.Writer, result models.Result, withDetail bool) error {
	if !withDetail {
		_, err := fmt.Fprintln(out, result.Category)
		return err
	}

	_, err := fmt.Fprintf(out, "Category:   %s\nSource:     %s\nConfidence: %.2f\nPattern:    %s\n",
		result.Category, result.Source, result.Confidence, result.Pattern)
	return err
}
