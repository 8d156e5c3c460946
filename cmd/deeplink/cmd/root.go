package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile    string
	logLevel   string
	logFormat  string
	maxResults int
	maxDepth   int
)

var rootCmd = &cobra.Command{
	Use:   "deeplink",
	Short: "Phone number identity resolution over an indexed SQLite dataset",
	Long: `A CLI tool for resolving phone number identities against a large
read-only SQLite dataset using exact-match indexed lookups.

Features:
  - Exact-match mobile lookup with retry on lock contention
  - Deep search: breadth-first traversal across linked alternate numbers
  - Consolidated identity profiles with first-seen ordering
  - Substring scans over name, father name, email and address
  - Read-only sessions (WAL, query_only) safe for shared datasets`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "deeplink.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Search overrides
	rootCmd.PersistentFlags().IntVar(&maxResults, "max-results", 0,
		"Override maximum rows returned per query")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "depth", 0,
		"Override maximum deep search traversal depth")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel   string
	LogFormat  string
	MaxResults int
	MaxDepth   int
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		MaxResults: maxResults,
		MaxDepth:   maxDepth,
	}
}
