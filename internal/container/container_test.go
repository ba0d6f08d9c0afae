package container

import (
	"context"
	"errors"
	"testing"

	"fjacquet/txn-categorizer/internal/categorizer"
	"fjacquet/txn-categorizer/internal/config"
	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/patterns"
	"fjacquet/txn-categorizer/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ";"
	cfg.AI.Provider = config.ProviderGemini
	cfg.AI.Model = "gemini-2.0-flash"
	cfg.AI.MaxTokens = 2048
	cfg.AI.Temperature = 0.2
	cfg.AI.TimeoutSeconds = 10
	cfg.AI.BatchSize = 20
	cfg.Categorization.FuzzyThreshold = 0.88
	cfg.Categorization.MinFuzzyLength = 4
	cfg.Categorization.SimilarMinLength = 3
	cfg.Data.PatternsFile = "patterns.yaml"
	cfg.Data.RulesFile = "rules.yaml"
	return cfg
}

type stubGenerator struct{}

func (stubGenerator) Complete(context.Context, string, string, categorizer.GenerateOptions) (string, error) {
	return "[]", nil
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*config.Config) *config.Config
		expectError bool
		errorMsg    string
		expectAI    bool
	}{
		{
			name:        "nil config",
			modify:      func(*config.Config) *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "valid config without AI",
			modify: func(c *config.Config) *config.Config { return c },
		},
		{
			name: "AI enabled with gemini provider",
			modify: func(c *config.Config) *config.Config {
				c.AI.Enabled = true
				c.AI.APIKey = "test-key"
				return c
			},
			expectAI: true,
		},
		{
			name: "AI enabled with genai provider",
			modify: func(c *config.Config) *config.Config {
				c.AI.Enabled = true
				c.AI.Provider = config.ProviderGenAI
				c.AI.APIKey = "test-key"
				return c
			},
			expectAI: true,
		},
		{
			name: "AI enabled without key",
			modify: func(c *config.Config) *config.Config {
				c.AI.Enabled = true
				return c
			},
			expectError: true,
			errorMsg:    "API key is required",
		},
		{
			name: "unknown provider",
			modify: func(c *config.Config) *config.Config {
				c.AI.Enabled = true
				c.AI.Provider = "openai"
				c.AI.APIKey = "test-key"
				return c
			},
			expectError: true,
			errorMsg:    "unknown AI provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.modify(testConfig(t))

			c, err := NewContainer(context.Background(), cfg)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
			defer func() { assert.NoError(t, c.Close()) }()

			assert.NotNil(t, c.GetLogger())
			assert.Same(t, cfg, c.GetConfig())
			assert.NotNil(t, c.GetCategorizer())
			assert.NotNil(t, c.GetStore())
			assert.Equal(t, ';', c.GetCSVHandler().Delimiter)
			assert.Empty(t, c.GetRules())
			assert.Equal(t, tt.expectAI, c.GetGenerator() != nil)
		})
	}
}

func TestNewContainer_LoadsStoredPatternsAndRules(t *testing.T) {
	cfg := testConfig(t)
	st := &store.MockStore{
		Patterns: []patterns.CategoryPatterns{
			{Category: models.CategoryPets, Patterns: []string{"pawsome"}},
		},
		Rules: []models.Rule{
			{Pattern: "acme", MatchField: models.MatchFieldAny, Category: models.CategorySalary, Enabled: true},
		},
	}

	c, err := newContainer(cfg, logging.NewMockLogger(), st, stubGenerator{})
	require.NoError(t, err)

	cat := c.GetCategorizer()
	assert.Equal(t, models.CategoryPets, cat.Categorize("Pawsome Pals", ""))
	assert.Equal(t, models.CategoryUncategorized, cat.Categorize("Acme Widgets", ""))
	assert.Equal(t, models.CategorySalary, cat.CategorizeWithRules("Acme Widgets", "", c.GetRules()))
	assert.NotNil(t, c.GetGenerator())

	rules := c.GetRules()
	rules[0].Category = "changed"
	assert.Equal(t, models.CategorySalary, c.GetRules()[0].Category)
}

func TestContainer_SaveCustomPatterns(t *testing.T) {
	st := &store.MockStore{
		Patterns: []patterns.CategoryPatterns{
			{Category: models.CategoryPets, Patterns: []string{"pawsome"}},
		},
	}
	c, err := newContainer(testConfig(t), logging.NewMockLogger(), st, nil)
	require.NoError(t, err)

	assert.True(t, c.GetCategorizer().AddCustomPattern(models.CategoryFitness, "ironforge gym"))
	require.NoError(t, c.SaveCustomPatterns())

	require.Len(t, st.Saved, 1)
	assert.Equal(t, []patterns.CategoryPatterns{
		{Category: models.CategoryPets, Patterns: []string{"pawsome"}},
		{Category: models.CategoryFitness, Patterns: []string{"ironforge gym"}},
	}, st.Saved[0])
}

func TestNewContainer_StoreErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := newContainer(testConfig(t), logging.NewMockLogger(), &store.MockStore{LoadPatternsError: boom}, nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to load custom patterns")

	_, err = newContainer(testConfig(t), logging.NewMockLogger(), &store.MockStore{LoadRulesError: boom}, nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to load rules")
}
