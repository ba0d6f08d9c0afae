// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"

	"fjacquet/txn-categorizer/internal/config"
	"fjacquet/txn-categorizer/internal/container"
	"fjacquet/txn-categorizer/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	LogLevel  string
	LogFormat string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the configuration loaded before any subcommand runs
	AppConfig *config.Config

	// AppContainer holds the wired dependencies for subcommands
	AppContainer *container.Container

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "txn-categorizer",
		Short: "Categorize bank transactions into spending categories.",
		Long: `txn-categorizer assigns spending categories to bank transactions.

User rules are applied first, then built-in merchant patterns with fuzzy
matching for spellings mangled by payment rails. Transactions that remain
uncategorized can be sent in batches to a Gemini model.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			Teardown()
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (overrides configuration)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format: text or json (overrides configuration)")
}

// Setup loads the environment and configuration, configures logging and
// builds the application container.
func Setup(cmd *cobra.Command) error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfig()
	if err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	Log = config.ConfigureLoggingFromConfig(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	return nil
}

// Teardown releases the container resources.
func Teardown() {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		Log.Warnf("Failed to close container: %v", err)
	}
}

// GetContainer returns the application container, or nil before Setup ran.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the loaded configuration, or nil before Setup ran.
func GetConfig() *config.Config {
	return AppConfig
}

// GetLogrusAdapter wraps the shared logrus logger in the logging interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
