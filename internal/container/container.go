// Package container provides dependency injection for the txn-categorizer application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"

	"fjacquet/txn-categorizer/internal/categorizer"
	"fjacquet/txn-categorizer/internal/common"
	"fjacquet/txn-categorizer/internal/config"
	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation; dependencies are only reachable through getters.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       store.Store
	generator   categorizer.TextGenerator
	categorizer *categorizer.Categorizer
	csv         *common.CSVHandler
	rules       []models.Rule
}

// NewContainer creates and wires all application dependencies: the logger,
// the YAML store, the AI generator for the configured provider (when enabled)
// and a categorizer seeded with the stored custom patterns.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	patternStore := store.NewPatternStore(cfg.Data.PatternsFile, cfg.Data.RulesFile, logger)

	var generator categorizer.TextGenerator
	if cfg.AI.Enabled {
		gen, err := newGenerator(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		generator = gen
		logger.Info("AI categorization enabled",
			logging.Field{Key: logging.FieldProvider, Value: cfg.AI.Provider},
			logging.Field{Key: logging.FieldModel, Value: cfg.AI.Model})
	} else {
		logger.Debug("AI categorization disabled")
	}

	return newContainer(cfg, logger, patternStore, generator)
}

// newContainer wires the remaining dependencies around an existing store and
// generator. Tests use it to inject fakes.
func newContainer(cfg *config.Config, logger logging.Logger, st store.Store, generator categorizer.TextGenerator) (*Container, error) {
	custom, err := st.LoadCustomPatterns()
	if err != nil {
		return nil, fmt.Errorf("failed to load custom patterns: %w", err)
	}

	rules, err := st.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	cat := categorizer.NewCategorizer(nil, generator, logger, optionsFromConfig(cfg))
	added := cat.AddCustomPatterns(custom)

	logger.Debug("Container initialized",
		logging.Field{Key: "custom_patterns", Value: added},
		logging.Field{Key: "rules", Value: len(rules)},
		logging.Field{Key: "ai_enabled", Value: generator != nil})

	return &Container{
		logger:      logger,
		config:      cfg,
		store:       st,
		generator:   generator,
		categorizer: cat,
		csv:         common.NewCSVHandler(cfg.Delimiter(), logger),
		rules:       rules,
	}, nil
}

func newGenerator(ctx context.Context, cfg *config.Config, logger logging.Logger) (categorizer.TextGenerator, error) {
	switch cfg.AI.Provider {
	case config.ProviderGenAI:
		return categorizer.NewGenAIClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
	case config.ProviderGemini, "":
		return categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.AI.Provider)
	}
}

func optionsFromConfig(cfg *config.Config) categorizer.Options {
	opts := categorizer.DefaultOptions()
	opts.FuzzyThreshold = cfg.Categorization.FuzzyThreshold
	opts.MinFuzzyLength = cfg.Categorization.MinFuzzyLength
	opts.SimilarMinLength = cfg.Categorization.SimilarMinLength
	opts.BatchSize = cfg.AI.BatchSize
	if cfg.AI.MaxTokens > 0 {
		opts.Generate.MaxTokens = cfg.AI.MaxTokens
	}
	opts.Generate.Temperature = cfg.AI.Temperature
	if cfg.AI.TimeoutSeconds > 0 {
		opts.Generate.Timeout = cfg.Timeout()
	}
	return opts
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetStore returns the container's pattern store.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetGenerator returns the AI text generator, or nil when AI is disabled.
func (c *Container) GetGenerator() categorizer.TextGenerator {
	return c.generator
}

// GetCSVHandler returns the CSV reader/writer configured with the CSV delimiter.
func (c *Container) GetCSVHandler() *common.CSVHandler {
	return c.csv
}

// GetRules returns a copy of the user rules loaded at startup.
func (c *Container) GetRules() []models.Rule {
	out := make([]models.Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// SaveCustomPatterns persists every pattern added to the categorizer at runtime,
// including the ones loaded from the store.
func (c *Container) SaveCustomPatterns() error {
	return c.store.SaveCustomPatterns(c.categorizer.CustomPatterns())
}

// Close releases the AI client, if any.
func (c *Container) Close() error {
	if closer, ok := c.generator.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close AI client: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
