package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hitekdb/deeplink/internal/config"
	"github.com/hitekdb/deeplink/internal/database"
	"github.com/hitekdb/deeplink/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and check dataset reachability",
	Long: `Validate checks the configuration file and confirms the dataset can
be opened with the configured pragmas.

Checks performed:
  - Configuration syntax and required fields
  - Value ranges (retry attempts, depth, result limits)
  - Dataset file reachability and read-only session setup

Example:
  deeplink validate --config deeplink.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.MaxResults, overrides.MaxDepth)

	cmd.Printf("=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", configFile)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}
	cmd.Printf("Configuration OK\n\n")

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := database.SetupSignalHandler()

	// Open read-only dataset session
	session := database.NewSession(cfg.Database, cfg.Retry, log)
	if err := session.Open(ctx); err != nil {
		return fmt.Errorf("dataset unreachable: %w", err)
	}
	defer session.Close()

	cmd.Printf("Dataset: %s\n", cfg.Database.Path)
	cmd.Printf("Session opened read-only (WAL, query_only)\n\n")
	cmd.Println("=== Validation Complete ===")
	return nil
}
