package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hitekdb/deeplink/internal/config"
	"github.com/hitekdb/deeplink/internal/database"
	"github.com/hitekdb/deeplink/internal/logger"
	"github.com/hitekdb/deeplink/internal/render"
	"github.com/hitekdb/deeplink/internal/search"
)

var dbstatsCmd = &cobra.Command{
	Use:   "dbstats",
	Short: "Show dataset statistics",
	Long: `Dbstats reports the row count and on-disk size of the dataset.

The row count is taken from MAX(rowid), which is instant on any table
size but counts deleted rowids; on an append-only dataset it matches
the true count.

Example:
  deeplink dbstats --config deeplink.yaml`,
	RunE: runDbstats,
}

func init() {
	rootCmd.AddCommand(dbstatsCmd)
}

func runDbstats(cmd *cobra.Command, args []string) error {
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

	rowCount, err := svc.RowCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to read row count: %w", err)
	}

	size, err := svc.DatabaseSize(ctx)
	if err != nil {
		return fmt.Errorf("failed to read database size: %w", err)
	}

	cmd.Println(render.DatasetInfo(cfg.Database.Path, rowCount, size))
	return nil
}
