package categorizer

import (
	"fmt"
	"strings"

	"fjacquet/txn-categorizer/internal/models"
)

// StrategyResult records one strategy attempt.
type StrategyResult struct {
	Strategy string
	Result   models.Result
	Found    bool
	Error    error
}

// StrategyResults aggregates the attempts made for one input.
type StrategyResults struct {
	Results []StrategyResult
}

// GetBestResult returns the first successful result.
func (sr StrategyResults) GetBestResult() (models.Result, bool) {
	for _, r := range sr.Results {
		if r.Found && r.Error == nil {
			return r.Result, true
		}
	}
	return uncategorized(), false
}

// GetErrors returns all errors encountered during strategy execution
func (sr StrategyResults) GetErrors() []error {
	var errs []error
	for _, r := range sr.Results {
		if r.Error != nil {
			errs = append(errs, fmt.Errorf("%s strategy: %w", r.Strategy, r.Error))
		}
	}
	return errs
}

// Summary returns a human-readable summary of all strategy attempts
func (sr StrategyResults) Summary() string {
	parts := make([]string, 0, len(sr.Results))
	for _, r := range sr.Results {
		status := "failed"
		if r.Found {
			status = "success"
		} else if r.Error == nil {
			status = "no_match"
		}
		parts = append(parts, fmt.Sprintf("%s:%s", r.Strategy, status))
	}
	return strings.Join(parts, ", ")
}
