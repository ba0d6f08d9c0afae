package categorizer

import (
	"context"
	"fmt"

	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/parsererror"
)

// CategorizeAll categorizes txns locally and, when a generator is configured,
// sends the uncategorized residue to the AI fallback in batches. AI answers
// are merged back by position: every residue item is sent as "row-<n>" (1-based
// index into txns), so duplicate or missing transaction ids cannot mix up
// answers. A failed batch leaves its transactions uncategorized and is counted
// in the stats; remaining batches still run.
//
// The returned results are index-aligned with txns. On context cancellation
// the results gathered so far are returned along with the context error.
func (c *Categorizer) CategorizeAll(ctx context.Context, txns []models.TxnContext, rules []models.Rule) ([]models.Result, models.CategorizationStats, error) {
	results := make([]models.Result, len(txns))
	positions := make(map[string]int)
	var residue []models.TxnContext

	for i, txn := range txns {
		if err := ctx.Err(); err != nil {
			return results, summarize(results[:i]), err
		}
		results[i] = c.CategorizeDetailed(ctx, txn.Input(), rules)
		if results[i].IsCategorized() {
			continue
		}
		txn.ID = fmt.Sprintf("row-%d", i+1)
		positions[txn.ID] = i
		residue = append(residue, txn)
	}

	failed := 0
	if c.generator != nil && len(residue) > 0 {
		batches := ChunkTransactions(residue, c.opts.BatchSize)
		c.logger.Info("Sending uncategorized transactions to AI",
			logging.Field{Key: logging.FieldCount, Value: len(residue)},
			logging.Field{Key: "batches", Value: len(batches)})

		for bi, batch := range batches {
			if err := ctx.Err(); err != nil {
				stats := summarize(results)
				stats.FailedBatches = failed
				return results, stats, err
			}

			answers, err := c.AICategorizeBatch(ctx, batch)
			if err != nil {
				failed++
				err = &parsererror.CategorizationError{Transaction: fmt.Sprintf("batch %d", bi+1), Strategy: "AI", Err: err}
				c.logger.WithError(err).Warn("AI batch failed, leaving transactions uncategorized",
					logging.Field{Key: logging.FieldBatchIndex, Value: bi},
					logging.Field{Key: logging.FieldBatchSize, Value: len(batch)})
				continue
			}
			applyAIResults(results, positions, answers)
		}
	}

	stats := summarize(results)
	stats.FailedBatches = failed
	return results, stats, nil
}

// applyAIResults fills results from answers. Unknown ids are ignored and only
// the first answer for a row is used.
func applyAIResults(results []models.Result, positions map[string]int, answers []models.AIResult) {
	for _, a := range answers {
		if a.Category == models.CategoryUncategorized {
			continue
		}
		i, ok := positions[a.ID]
		if !ok || results[i].Source != models.SourceDefault {
			continue
		}
		results[i] = models.Result{Category: a.Category, Confidence: a.Confidence, Source: models.SourceAI}
	}
}

func summarize(results []models.Result) models.CategorizationStats {
	var stats models.CategorizationStats
	for _, r := range results {
		stats.Record(r)
	}
	return stats
}
