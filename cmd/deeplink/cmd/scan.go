package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hitekdb/deeplink/internal/config"
	"github.com/hitekdb/deeplink/internal/database"
	"github.com/hitekdb/deeplink/internal/logger"
	"github.com/hitekdb/deeplink/internal/render"
	"github.com/hitekdb/deeplink/internal/search"
)

var scanField string

var scanCmd = &cobra.Command{
	Use:   "scan <term>",
	Short: "Substring scan over a text field",
	Long: `Scan runs a substring match over one of the dataset's text fields.
Unlike lookup and resolve this is a full scan, not an indexed probe,
so expect it to be slow on large datasets.

Example:
  deeplink scan --field name "RAVI KUMAR"`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanField, "field", "f", "name",
		fmt.Sprintf("Field to scan (%s)", strings.Join(search.ScanFields(), ", ")))

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	term := strings.TrimSpace(args[0])

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

	log.Infow("Starting field scan", "field", scanField, "term", term)

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
	records, err := svc.Scan(ctx, scanField, term)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	cmd.Println(render.RecordList(records, term, "scan:"+scanField, time.Since(start)))
	return nil
}
