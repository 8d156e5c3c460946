package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if c.Database.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "database.path",
			Message: "dataset path is required",
		})
	}
	if c.Database.BusyTimeoutMS < 0 {
		errors = append(errors, ValidationError{
			Field:   "database.busy_timeout_ms",
			Message: "must not be negative",
		})
	}
	if c.Database.MmapSize < 0 {
		errors = append(errors, ValidationError{
			Field:   "database.mmap_size",
			Message: "must not be negative",
		})
	}

	if c.Retry.Attempts < 1 {
		errors = append(errors, ValidationError{
			Field:   "retry.attempts",
			Message: "must be at least 1",
		})
	}
	if c.Retry.BaseDelaySeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "retry.base_delay_seconds",
			Message: "must be greater than 0",
		})
	}

	if c.Search.MaxResults < 1 {
		errors = append(errors, ValidationError{
			Field:   "search.max_results",
			Message: "must be at least 1",
		})
	}
	if c.Search.MaxDepth < 1 {
		errors = append(errors, ValidationError{
			Field:   "search.max_depth",
			Message: "must be at least 1",
		})
	}
	if c.Search.MinScanLength < 1 {
		errors = append(errors, ValidationError{
			Field:   "search.min_scan_length",
			Message: "must be at least 1",
		})
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q (expected debug, info, warn, or error)", c.Logging.Level),
		})
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q (expected json or text)", c.Logging.Format),
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
