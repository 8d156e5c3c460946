// Package database provides the SQLite storage session for deeplink.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/hitekdb/deeplink/internal/config"
	"github.com/hitekdb/deeplink/internal/logger"
	"github.com/hitekdb/deeplink/internal/types"
)

// Session owns the single live connection to the users dataset.
// The connection is tuned for sustained concurrent reads against a table in
// the order of a billion rows and is enforced read-only (PRAGMA query_only).
// A Session is process-scoped: opened once at startup, closed at shutdown.
type Session struct {
	db     *sql.DB
	cfg    config.DatabaseConfig
	retry  Policy
	logger *logger.Logger
}

// NewSession creates an unopened session from configuration.
func NewSession(cfg config.DatabaseConfig, retryCfg config.RetryConfig, log *logger.Logger) *Session {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Session{
		cfg: cfg,
		retry: Policy{
			MaxAttempts: retryCfg.Attempts,
			BaseDelay:   time.Duration(retryCfg.BaseDelaySeconds * float64(time.Second)),
			Retryable:   IsTransient,
			Logger:      log,
		},
		logger: log,
	}
}

// NewSessionWithDB wraps an existing database handle.
// Used by tests to inject a mocked connection; Open must not be called on the
// returned session.
func NewSessionWithDB(db *sql.DB, retryCfg config.RetryConfig, log *logger.Logger) *Session {
	s := NewSession(config.DatabaseConfig{}, retryCfg, log)
	s.db = db
	return s
}

// Open establishes the connection and applies the performance PRAGMAs.
// WAL journaling keeps readers unblocked during writer checkpoints on the
// shared file; busy_timeout bounds in-driver waiting before a contention
// error surfaces to the retry policy.
func (s *Session) Open(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite3", s.cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to open dataset %s: %w", s.cfg.Path, err)
	}

	// One underlying connection: PRAGMA state is per-connection, and
	// overlapping statements must never share a handle. database/sql
	// queues concurrent callers on the single pooled connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to reach dataset %s: %w", s.cfg.Path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", s.cfg.BusyTimeoutMS),
		fmt.Sprintf("PRAGMA cache_size = -%d", s.cfg.CacheSizeKB),
		fmt.Sprintf("PRAGMA mmap_size = %d", s.cfg.MmapSize),
		"PRAGMA temp_store = MEMORY",
		"PRAGMA query_only = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	s.db = db
	s.logger.Infow("Dataset opened",
		"path", s.cfg.Path,
		"journal_mode", "WAL",
		"busy_timeout_ms", s.cfg.BusyTimeoutMS,
		"cache_size_kb", s.cfg.CacheSizeKB,
		"mmap_size", s.cfg.MmapSize,
		"read_only", true,
	)
	return nil
}

// Close releases the connection. Idempotent; safe to call if never opened.
func (s *Session) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("failed to close dataset: %w", err)
	}
	s.logger.Info("Dataset connection closed")
	return nil
}

// Query issues a single parameterized read statement and returns the matching
// rows materialized as column name -> value mappings. Transient contention
// (locked/busy) is retried per the session's policy; any other error
// propagates immediately.
func (s *Session) Query(ctx context.Context, query string, args ...any) ([]types.Row, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}

	var result []types.Row
	err := s.retry.Do(ctx, func() error {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result, err = materializeRows(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// materializeRows scans every row into a column name -> value mapping.
func materializeRows(rows *sql.Rows) ([]types.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var result []types.Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(types.Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}
	return result, nil
}
