package models

import (
	"fjacquet/txn-categorizer/internal/logging"
)

// CategorizationStats tracks statistics for transaction categorization
type CategorizationStats struct {
	Total         int // Total number of transactions processed
	ByRule        int // Resolved by a user rule
	ByPattern     int // Resolved by an exact or fuzzy built-in pattern
	ByAI          int // Resolved by the AI fallback
	Uncategorized int // Left uncategorized
	FailedBatches int // AI batches that returned an error
}

// Record counts one result.
func (cs *CategorizationStats) Record(r Result) {
	cs.Total++
	switch r.Source {
	case SourceRule:
		cs.ByRule++
	case SourcePattern, SourceFuzzy:
		cs.ByPattern++
	case SourceAI:
		cs.ByAI++
	default:
		cs.Uncategorized++
	}
}

// GetSuccessRate calculates the success rate as a percentage
func (cs CategorizationStats) GetSuccessRate() float64 {
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.Total-cs.Uncategorized) / float64(cs.Total) * 100.0
}

// LogSummary logs a summary of categorization statistics
func (cs CategorizationStats) LogSummary(logger logging.Logger, source string) {
	if logger == nil {
		return
	}

	logger.Info("Categorization summary",
		logging.Field{Key: "source_file", Value: source},
		logging.Field{Key: "total_transactions", Value: cs.Total},
		logging.Field{Key: "by_rule", Value: cs.ByRule},
		logging.Field{Key: "by_pattern", Value: cs.ByPattern},
		logging.Field{Key: "by_ai", Value: cs.ByAI},
		logging.Field{Key: "uncategorized", Value: cs.Uncategorized},
		logging.Field{Key: "failed_batches", Value: cs.FailedBatches},
		logging.Field{Key: "success_rate", Value: cs.GetSuccessRate()},
	)
}
