package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hitekdb/deeplink/internal/config"
	"github.com/hitekdb/deeplink/internal/database"
	"github.com/hitekdb/deeplink/internal/logger"
	"github.com/hitekdb/deeplink/internal/render"
	"github.com/hitekdb/deeplink/internal/search"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <mobile>",
	Short: "Exact-match lookup for a single mobile number",
	Long: `Lookup runs a single indexed exact-match query against the dataset
and prints every matching record. No traversal is performed; use
"resolve" to follow linked alternate numbers.

Example:
  deeplink lookup 9876543210`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	mobile, ok := search.NormalizeNumber(args[0])
	if !ok {
		return fmt.Errorf("'%s' is not a valid phone number", args[0])
	}

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

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := database.SetupSignalHandler()

	// Open read-only dataset session
	session := database.NewSession(cfg.Database, cfg.Retry, log)
	if err := session.Open(ctx); err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer session.Close()

	svc, err := search.NewService(session, cfg.Search, log)
	if err != nil {
		return fmt.Errorf("failed to create search service: %w", err)
	}

	start := time.Now()
	records, err := svc.ByMobile(ctx, mobile)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	cmd.Println(render.RecordList(records, mobile, "mobile", time.Since(start)))
	return nil
}
