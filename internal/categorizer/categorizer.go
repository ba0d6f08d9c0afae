// Package categorizer assigns spending categories to bank transactions. User
// rules are consulted first, then the specificity-ordered pattern index with
// fuzzy matching, and finally an optional batched AI fallback for the residue.
package categorizer

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/matcher"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/parsererror"
	"fjacquet/txn-categorizer/internal/patterns"
)

// maxSuggestions bounds the length of Suggestions results.
const maxSuggestions = 3

// Options holds the matching and AI tunables.
type Options struct {
	FuzzyThreshold   float64
	MinFuzzyLength   int
	SimilarMinLength int
	BatchSize        int
	Generate         GenerateOptions
}

// DefaultOptions returns the tunables used when no configuration is supplied.
func DefaultOptions() Options {
	return Options{
		FuzzyThreshold:   matcher.DefaultThreshold,
		MinFuzzyLength:   matcher.DefaultMinLength,
		SimilarMinLength: matcher.DefaultSimilarMinLength,
		BatchSize:        MaxBatchSize,
		Generate:         DefaultGenerateOptions(),
	}
}

// Categorizer owns a pattern database and the index derived from it.
// All methods are safe for concurrent use; pattern additions take the write
// lock and drop the index, which the next lookup rebuilds.
type Categorizer struct {
	mu     sync.RWMutex
	db     *patterns.Database
	custom *patterns.Database
	index  *patterns.Index

	matcher   *matcher.Matcher
	generator TextGenerator
	logger    logging.Logger
	opts      Options
}

// NewCategorizer creates a Categorizer over db. A nil db uses the built-in
// patterns; a nil generator disables the AI fallback.
func NewCategorizer(db *patterns.Database, generator TextGenerator, logger logging.Logger, opts Options) *Categorizer {
	if db == nil {
		db = patterns.DefaultDatabase()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if opts.SimilarMinLength <= 0 {
		opts.SimilarMinLength = matcher.DefaultSimilarMinLength
	}
	if opts.BatchSize <= 0 || opts.BatchSize > MaxBatchSize {
		opts.BatchSize = MaxBatchSize
	}

	return &Categorizer{
		db:        db,
		custom:    patterns.NewDatabase(nil),
		matcher:   matcher.New(opts.FuzzyThreshold, opts.MinFuzzyLength),
		generator: generator,
		logger:    logger,
		opts:      opts,
	}
}

// Categorize returns the category of the first index entry whose pattern
// matches merchant and description, or Uncategorized.
func (c *Categorizer) Categorize(merchant, description string) string {
	return c.matchPatterns(merchant, description).Category
}

// CategorizeWithRules applies rules before the pattern index.
func (c *Categorizer) CategorizeWithRules(merchant, description string, rules []models.Rule) string {
	return c.CategorizeDetailed(context.Background(), models.Input{Merchant: merchant, Description: description}, rules).Category
}

// CategorizeDetailed runs the rule and pattern strategies in order and reports
// which one resolved the input.
func (c *Categorizer) CategorizeDetailed(ctx context.Context, in models.Input, rules []models.Rule) models.Result {
	strategies := []CategorizationStrategy{
		NewRuleStrategy(rules),
		NewPatternStrategy(c),
	}

	var results StrategyResults
	for _, s := range strategies {
		res, found, err := s.Categorize(ctx, in)
		if err != nil {
			err = &parsererror.CategorizationError{Transaction: in.Merchant, Strategy: s.Name(), Err: err}
		}
		results.Results = append(results.Results, StrategyResult{Strategy: s.Name(), Result: res, Found: found, Error: err})
		if found && err == nil {
			break
		}
	}

	for _, err := range results.GetErrors() {
		c.logger.WithError(err).Warn("Categorization strategy failed",
			logging.Field{Key: logging.FieldMerchant, Value: in.Merchant})
	}

	res, ok := results.GetBestResult()
	if ok {
		c.logger.Debug("Transaction categorized",
			logging.Field{Key: logging.FieldMerchant, Value: in.Merchant},
			logging.Field{Key: logging.FieldCategory, Value: res.Category},
			logging.Field{Key: logging.FieldSource, Value: res.Source},
			logging.Field{Key: logging.FieldConfidence, Value: res.Confidence},
			logging.Field{Key: logging.FieldPattern, Value: res.Pattern})
	} else {
		c.logger.Debug("No strategy matched",
			logging.Field{Key: logging.FieldMerchant, Value: in.Merchant},
			logging.Field{Key: logging.FieldStrategy, Value: results.Summary()})
	}
	return res
}

// BulkCategorize categorizes each item, preserving order and length.
func (c *Categorizer) BulkCategorize(items []models.Input) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = c.Categorize(item.Merchant, item.Description)
	}
	return out
}

// Suggestions ranks categories by the share of their patterns that match the
// text, on a 0-100 scale. At most three categories are returned, highest
// first; categories without any matching pattern are left out.
func (c *Categorizer) Suggestions(merchant, description string) []models.Suggestion {
	text := searchText(merchant, description)

	var out []models.Suggestion
	for _, entry := range c.Entries() {
		if len(entry.Patterns) == 0 {
			continue
		}
		matched := 0
		for _, p := range entry.Patterns {
			if c.matcher.Matches(text, p) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		confidence := min(float64(matched)/float64(len(entry.Patterns))*100, 100)
		out = append(out, models.Suggestion{Category: entry.Category, Confidence: confidence})
	}

	slices.SortStableFunc(out, func(a, b models.Suggestion) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		default:
			return 0
		}
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// MerchantMatchesCategory reports whether any pattern of category matches the
// merchant text alone.
func (c *Categorizer) MerchantMatchesCategory(merchant, category string) bool {
	c.mu.RLock()
	candidates := c.db.Patterns(category)
	c.mu.RUnlock()

	for _, p := range candidates {
		if c.matcher.Matches(merchant, p) {
			return true
		}
	}
	return false
}

// AddCustomPattern registers pattern for category unless already present and
// invalidates the index. It reports whether the pattern was new.
func (c *Categorizer) AddCustomPattern(category, pattern string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.db.Add(category, pattern) {
		return false
	}
	c.custom.Add(category, pattern)
	c.index = nil

	c.logger.Debug("Added custom pattern",
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldPattern, Value: pattern})
	return true
}

// AddPattern is AddCustomPattern restricted to the current vocabulary: the
// category must be a built-in or already known category other than
// Uncategorized, otherwise ErrUnknownCategory is returned.
func (c *Categorizer) AddPattern(category, pattern string) (bool, error) {
	if category == models.CategoryUncategorized || !c.HasCategory(category) {
		return false, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return c.AddCustomPattern(category, pattern), nil
}

// HasCategory reports whether name is a built-in category or one present in
// the pattern database.
func (c *Categorizer) HasCategory(name string) bool {
	return models.IsValidCategory(name, models.DefaultCategories()) ||
		models.IsValidCategory(name, c.Vocabulary())
}

// AddCustomPatterns registers every pattern of entries and returns how many were new.
func (c *Categorizer) AddCustomPatterns(entries []patterns.CategoryPatterns) int {
	added := 0
	for _, e := range entries {
		for _, p := range e.Patterns {
			if c.AddCustomPattern(e.Category, p) {
				added++
			}
		}
	}
	return added
}

// IsSimilarMerchant reports whether a and b plausibly name the same merchant.
// A minLength of zero or less uses the configured default.
func (c *Categorizer) IsSimilarMerchant(a, b string, minLength int) bool {
	if minLength <= 0 {
		minLength = c.opts.SimilarMinLength
	}
	return c.matcher.Similar(a, b, minLength)
}

// Entries returns a snapshot of the full pattern database.
func (c *Categorizer) Entries() []patterns.CategoryPatterns {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db.Entries()
}

// IndexEntries returns a copy of the pattern index in lookup order.
func (c *Categorizer) IndexEntries() []patterns.Entry {
	return slices.Clone(c.currentIndex().Entries())
}

// CustomPatterns returns a snapshot of the patterns added at runtime.
func (c *Categorizer) CustomPatterns() []patterns.CategoryPatterns {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.custom.Entries()
}

// Vocabulary returns the valid category names, always ending with
// Uncategorized when the database does not list it.
func (c *Categorizer) Vocabulary() []string {
	c.mu.RLock()
	names := c.db.Categories()
	c.mu.RUnlock()

	if !slices.Contains(names, models.CategoryUncategorized) {
		names = append(names, models.CategoryUncategorized)
	}
	return names
}

// currentIndex returns the index, rebuilding it if a pattern was added since
// the last lookup.
func (c *Categorizer) currentIndex() *patterns.Index {
	c.mu.RLock()
	idx := c.index
	c.mu.RUnlock()
	if idx != nil {
		return idx
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		c.index = patterns.BuildIndex(c.db)
		c.logger.Debug("Built pattern index", logging.Field{Key: logging.FieldCount, Value: c.index.Len()})
	}
	return c.index
}

func (c *Categorizer) matchPatterns(merchant, description string) models.Result {
	text := searchText(merchant, description)
	for _, e := range c.currentIndex().Entries() {
		m := c.matcher.Match(text, e.Pattern)
		if !m.Matched() {
			continue
		}
		source := models.SourcePattern
		if m.Kind == matcher.Fuzzy {
			source = models.SourceFuzzy
		}
		return models.Result{Category: e.Category, Confidence: m.Score, Source: source, Pattern: e.Pattern}
	}
	return uncategorized()
}

func searchText(merchant, description string) string {
	return merchant + " " + description
}

func uncategorized() models.Result {
	return models.Result{Category: models.CategoryUncategorized, Source: models.SourceDefault}
}
