package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hitekdb/deeplink/internal/config"
	"github.com/hitekdb/deeplink/internal/database"
	"github.com/hitekdb/deeplink/internal/logger"
	"github.com/hitekdb/deeplink/internal/render"
	"github.com/hitekdb/deeplink/internal/search"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <mobile>",
	Short: "Deep search: resolve an identity across linked numbers",
	Long: `Resolve runs a breadth-first traversal starting from the given mobile
number. Every record found is inspected for a linked alternate number,
and each newly discovered number is looked up in turn, down to the
configured depth limit.

The result is a single consolidated profile: every phone, name, father
name, email, address, circle and operator seen across all discovered
records, deduplicated in first-seen order.

Example:
  deeplink resolve 9876543210 --depth 3`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false,
		"Emit the consolidated profile as JSON")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	seed, ok := search.NormalizeNumber(args[0])
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

	log.Infow("Starting deep search",
		"seed", seed,
		"depth", cfg.Search.MaxDepth,
		"config", configFile,
	)

	// Setup context with signal handling so an in-flight traversal
	// stops at the next hop on SIGTERM/SIGINT
	ctx := database.SetupSignalHandlerWithCallback(func(sig os.Signal) {
		log.Warnw("Received shutdown signal - aborting traversal", "signal", sig.String())
	})

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

	profile, stats, err := svc.DeepSearch(ctx, seed)
	if err != nil {
		return fmt.Errorf("deep search failed: %w", err)
	}

	if resolveJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	cmd.Println(render.ProfileReport(profile, stats))
	return nil
}
