package categorizer

import (
	"context"

	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/rules"
)

// CategorizationStrategy is one layer of the categorization chain.
type CategorizationStrategy interface {
	// Categorize returns the result and whether this strategy resolved the input.
	Categorize(ctx context.Context, in models.Input) (models.Result, bool, error)

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}

// RuleStrategy resolves inputs with user override rules.
type RuleStrategy struct {
	rules []models.Rule
}

// NewRuleStrategy creates a RuleStrategy over an ordered rule list.
func NewRuleStrategy(r []models.Rule) *RuleStrategy {
	return &RuleStrategy{rules: r}
}

// Name returns the strategy name.
func (s *RuleStrategy) Name() string {
	return "Rule"
}

// Categorize returns the category of the first enabled matching rule.
func (s *RuleStrategy) Categorize(_ context.Context, in models.Input) (models.Result, bool, error) {
	rule, ok := rules.Match(in.Merchant, in.Description, s.rules)
	if !ok {
		return models.Result{}, false, nil
	}
	return models.Result{Category: rule.Category, Confidence: 1, Source: models.SourceRule, Pattern: rule.Pattern}, true, nil
}

// PatternStrategy resolves inputs with the categorizer's pattern index.
type PatternStrategy struct {
	categorizer *Categorizer
}

// NewPatternStrategy creates a PatternStrategy backed by c.
func NewPatternStrategy(c *Categorizer) *PatternStrategy {
	return &PatternStrategy{categorizer: c}
}

// Name returns the strategy name.
func (s *PatternStrategy) Name() string {
	return "Pattern"
}

// Categorize walks the index and returns the first exact or fuzzy match.
func (s *PatternStrategy) Categorize(ctx context.Context, in models.Input) (models.Result, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Result{}, false, err
	}
	res := s.categorizer.matchPatterns(in.Merchant, in.Description)
	return res, res.IsCategorized(), nil
}
