// Package search provides the record-resolution engine for deeplink:
// indexed exact-match lookup, bounded deep-link traversal, and profile
// consolidation over the users dataset.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/hitekdb/deeplink/internal/config"
	"github.com/hitekdb/deeplink/internal/database"
	"github.com/hitekdb/deeplink/internal/logger"
	"github.com/hitekdb/deeplink/internal/types"
)

// Service executes searches against the users dataset through a storage
// session. All methods are read-only.
type Service struct {
	session *database.Session
	cfg     config.SearchConfig
	logger  *logger.Logger
}

// NewService creates a search service over an opened session.
func NewService(session *database.Session, cfg config.SearchConfig, log *logger.Logger) (*Service, error) {
	if session == nil {
		return nil, fmt.Errorf("session is nil")
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 25
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 3
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Service{
		session: session,
		cfg:     cfg,
		logger:  log,
	}, nil
}

// ByMobile returns every record whose mobile column equals the given number,
// capped at the configured result limit. The mobile column is indexed, so
// each call is a single O(log n) probe. Input is assumed already normalized;
// an unmatched number yields an empty slice, not an error.
func (s *Service) ByMobile(ctx context.Context, mobile string) ([]types.Record, error) {
	rows, err := s.session.Query(ctx,
		"SELECT * FROM users WHERE mobile = ? LIMIT ?",
		mobile, s.cfg.MaxResults,
	)
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, types.RecordFromRow(row))
	}
	return records, nil
}

// NormalizeNumber strips dialing noise from user input: spaces, dashes and a
// leading "+". Values longer than 10 digits keep their last 10 (drops the
// country code). Returns the cleaned number and whether the input looks like
// a phone number at all.
func NormalizeNumber(raw string) (string, bool) {
	clean := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(strings.TrimSpace(raw))
	if clean == "" {
		return "", false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	if len(clean) < 7 || len(clean) > 15 {
		return "", false
	}
	if len(clean) > 10 {
		clean = clean[len(clean)-10:]
	}
	return clean, true
}
