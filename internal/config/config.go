// Package config provides configuration structures and loading for deeplink.
package config

// Config represents the complete application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Retry    RetryConfig    `yaml:"retry" mapstructure:"retry"`
	Search   SearchConfig   `yaml:"search" mapstructure:"search"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// DatabaseConfig represents the SQLite dataset connection configuration.
// The tuning values exist for sustained concurrent reads against a table in
// the order of a billion rows; the defaults match the production dataset.
type DatabaseConfig struct {
	Path          string `yaml:"path" mapstructure:"path"`
	BusyTimeoutMS int    `yaml:"busy_timeout_ms" mapstructure:"busy_timeout_ms"`
	CacheSizeKB   int    `yaml:"cache_size_kb" mapstructure:"cache_size_kb"`
	MmapSize      int64  `yaml:"mmap_size" mapstructure:"mmap_size"`
}

// RetryConfig represents the transient-contention retry policy settings.
type RetryConfig struct {
	Attempts         int     `yaml:"attempts" mapstructure:"attempts"`
	BaseDelaySeconds float64 `yaml:"base_delay_seconds" mapstructure:"base_delay_seconds"` // doubles each retry
}

// SearchConfig represents lookup and traversal limits.
type SearchConfig struct {
	MaxResults    int `yaml:"max_results" mapstructure:"max_results"`       // per-query result cap
	MaxDepth      int `yaml:"max_depth" mapstructure:"max_depth"`           // BFS hop limit
	MinScanLength int `yaml:"min_scan_length" mapstructure:"min_scan_length"` // minimum term length for LIKE scans
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:          "/data/users.db",
			BusyTimeoutMS: 10000,
			CacheSizeKB:   64000,
			MmapSize:      2147483648, // 2 GiB window
		},
		Retry: RetryConfig{
			Attempts:         3,
			BaseDelaySeconds: 0.5,
		},
		Search: SearchConfig{
			MaxResults:    25,
			MaxDepth:      3,
			MinScanLength: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, maxResults, maxDepth int) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if maxResults > 0 {
		c.Search.MaxResults = maxResults
	}
	if maxDepth > 0 {
		c.Search.MaxDepth = maxDepth
	}
}
