// Package batch categorizes every transaction of a CSV statement
package batch

import (
	"context"
	"fmt"
	"io"

	"fjacquet/txn-categorizer/cmd/root"
	"fjacquet/txn-categorizer/internal/categorizer"
	"fjacquet/txn-categorizer/internal/common"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Categorize every transaction of a CSV statement",
	Long: `Categorize every transaction of a CSV statement and write the result to a new CSV file.

Transactions that no rule or pattern resolves are sent to the AI model in
batches when AI is enabled in the configuration. A failed batch leaves its
transactions uncategorized.

Example:
  txn-categorizer batch -i statement.csv -o categorized.csv`,
	RunE: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) error {
	inputFile := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output
	if err := validation.ValidateInputFile(inputFile); err != nil {
		return err
	}
	if err := validation.ValidateOutputPath(outputFile, inputFile); err != nil {
		return err
	}

	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}

	stats, err := Run(cmd.Context(), c.GetCSVHandler(), c.GetCategorizer(), c.GetRules(), inputFile, outputFile)
	if err != nil {
		return err
	}

	stats.LogSummary(c.GetLogger(), inputFile)
	return PrintSummary(cmd.OutOrStdout(), stats)
}

// Run reads inputFile, categorizes its transactions and writes outputFile.
func Run(ctx context.Context, h *common.CSVHandler, cat *categorizer.Categorizer, rules []models.Rule, inputFile, outputFile string) (models.CategorizationStats, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	txns, err := h.ReadTransactions(inputFile)
	if err != nil {
		return models.CategorizationStats{}, fmt.Errorf("failed to read transactions: %w", err)
	}

	results, stats, err := cat.CategorizeAll(ctx, txns, rules)
	if err != nil {
		return stats, fmt.Errorf("failed to categorize transactions: %w", err)
	}

	if err := h.WriteCategorized(outputFile, txns, results); err != nil {
		return stats, fmt.Errorf("failed to write categorized transactions: %w", err)
	}
	return stats, nil
}

// PrintSummary writes a one-line summary of stats.
func PrintSummary(out io.Writer, stats models.CategorizationStats) error {
	_, err := fmt.Fprintf(out,
		"Categorized %d of %d transactions (%.1f%%): %d by rule, %d by pattern, %d by AI, %d uncategorized",
		stats.Total-stats.Uncategorized, stats.Total, stats.GetSuccessRate(),
		stats.ByRule, stats.ByPattern, stats.ByAI, stats.Uncategorized)
	if err != nil {
		return err
	}
	if stats.FailedBatches > 0 {
		_, err = fmt.Fprintf(out, ", %d AI batches failed", stats.FailedBatches)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out)
	return err
}
