// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// AI providers
const (
	ProviderGemini = "gemini"
	ProviderGenAI  = "genai"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	AI struct {
		Enabled        bool    `mapstructure:"enabled" yaml:"enabled"`
		Provider       string  `mapstructure:"provider" yaml:"provider"`
		Model          string  `mapstructure:"model" yaml:"model"`
		MaxTokens      int     `mapstructure:"max_tokens" yaml:"max_tokens"`
		Temperature    float64 `mapstructure:"temperature" yaml:"temperature"`
		TimeoutSeconds int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		BatchSize      int     `mapstructure:"batch_size" yaml:"batch_size"`
		APIKey         string  `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Categorization struct {
		FuzzyThreshold   float64 `mapstructure:"fuzzy_threshold" yaml:"fuzzy_threshold"`
		MinFuzzyLength   int     `mapstructure:"min_fuzzy_length" yaml:"min_fuzzy_length"`
		SimilarMinLength int     `mapstructure:"similar_min_length" yaml:"similar_min_length"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Data struct {
		PatternsFile string `mapstructure:"patterns_file" yaml:"patterns_file"`
		RulesFile    string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"data" yaml:"data"`
}

// Timeout returns the per-batch AI timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.txn-categorizer")
	v.AddConfigPath(".txn-categorizer")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("TXNCAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. API key comes from the unprefixed variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.provider", ProviderGemini)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.max_tokens", 4096)
	v.SetDefault("ai.temperature", 0.1)
	v.SetDefault("ai.timeout_seconds", 60)
	v.SetDefault("ai.batch_size", 50)

	v.SetDefault("categorization.fuzzy_threshold", 0.88)
	v.SetDefault("categorization.min_fuzzy_length", 4)
	v.SetDefault("categorization.similar_min_length", 3)

	v.SetDefault("data.patterns_file", "patterns.yaml")
	v.SetDefault("data.rules_file", "rules.yaml")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}

	if config.Categorization.FuzzyThreshold <= 0.0 || config.Categorization.FuzzyThreshold > 1.0 {
		return fmt.Errorf("categorization.fuzzy_threshold must be in (0, 1], got: %f", config.Categorization.FuzzyThreshold)
	}

	if config.Categorization.MinFuzzyLength < 1 {
		return fmt.Errorf("categorization.min_fuzzy_length must be positive, got: %d", config.Categorization.MinFuzzyLength)
	}

	if config.AI.BatchSize < 1 || config.AI.BatchSize > 50 {
		return fmt.Errorf("ai.batch_size must be between 1 and 50, got: %d", config.AI.BatchSize)
	}

	if config.AI.Provider != ProviderGemini && config.AI.Provider != ProviderGenAI {
		return fmt.Errorf("invalid ai.provider: %s (must be '%s' or '%s')", config.AI.Provider, ProviderGemini, ProviderGenAI)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}

		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}

		if config.AI.MaxTokens < 1 {
			return fmt.Errorf("ai.max_tokens must be positive, got: %d", config.AI.MaxTokens)
		}
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
