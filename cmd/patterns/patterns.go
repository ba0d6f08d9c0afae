// Package patterns inspects and extends the merchant pattern index
package patterns

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/txn-categorizer/cmd/root"
	"fjacquet/txn-categorizer/internal/categorizer"
	"fjacquet/txn-categorizer/internal/models"

	"github.com/spf13/cobra"
)

var categoryFilter string

// Cmd represents the patterns command group
var Cmd = &cobra.Command{
	Use:   "patterns",
	Short: "Inspect and extend the merchant patterns",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List patterns in lookup order",
	Long: `List every pattern in the order lookups try them: longest first, ties in
category order. The first pattern that matches a transaction decides its category.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		if c == nil {
			return fmt.Errorf("container not initialized")
		}
		return List(cmd.OutOrStdout(), c.GetCategorizer(), categoryFilter)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <category> <pattern>",
	Short: "Add a custom pattern and save it to the patterns file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		if c == nil {
			return fmt.Errorf("container not initialized")
		}

		added, err := Add(cmd.OutOrStdout(), c.GetCategorizer(), args[0], args[1])
		if err != nil {
			return err
		}
		if !added {
			return nil
		}
		if err := c.SaveCustomPatterns(); err != nil {
			return fmt.Errorf("failed to save custom patterns: %w", err)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&categoryFilter, "category", "c", "", "Only list patterns of this category")
	Cmd.AddCommand(listCmd, addCmd)
}

// List writes the index entries, optionally restricted to one category.
func List(out io.Writer, cat *categorizer.Categorizer, category string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "SPECIFICITY\tCATEGORY\tPATTERN"); err != nil {
		return err
	}
	for _, e := range cat.IndexEntries() {
		if category != "" && e.Category != category {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", e.Specificity, e.Category, e.Pattern); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Add registers pattern under an existing category and reports whether it
// was new. Unknown categories are rejected with the list of valid names.
func Add(out io.Writer, cat *categorizer.Categorizer, category, pattern string) (bool, error) {
	added, err := cat.AddPattern(category, pattern)
	if err != nil {
		return false, fmt.Errorf("%w; valid categories: %s", err, strings.Join(validCategories(cat), ", "))
	}
	if added {
		_, _ = fmt.Fprintf(out, "Added %q to %s\n", pattern, category)
		return true, nil
	}
	_, _ = fmt.Fprintf(out, "Pattern %q is already known or empty\n", pattern)
	return false, nil
}

func validCategories(cat *categorizer.Categorizer) []string {
	names := make([]string, 0, len(cat.Vocabulary()))
	for _, name := range cat.Vocabulary() {
		if name != models.CategoryUncategorized {
			names = append(names, name)
		}
	}
	return names
}
