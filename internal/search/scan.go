package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hitekdb/deeplink/internal/types"
)

// scanColumns whitelists the columns a LIKE scan may touch. None of these
// are indexed: a scan walks the whole table and exists only for occasional
// investigative use, never for traversal.
var scanColumns = map[string]bool{
	"name":    true,
	"fname":   true,
	"email":   true,
	"address": true,
}

// ScanFields returns the allowed scan field names, sorted.
func ScanFields() []string {
	fields := make([]string, 0, len(scanColumns))
	for f := range scanColumns {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Scan performs a substring match over a whitelisted unindexed column,
// capped at the configured result limit. The term must meet the minimum
// length to keep full-table scans from degenerating into dumps.
func (s *Service) Scan(ctx context.Context, field, term string) ([]types.Record, error) {
	if !scanColumns[field] {
		return nil, fmt.Errorf("unknown scan field %q (expected one of: %s)", field, strings.Join(ScanFields(), ", "))
	}

	term = strings.TrimSpace(term)
	minLen := s.cfg.MinScanLength
	if minLen <= 0 {
		minLen = 3
	}
	if len(term) < minLen {
		return nil, fmt.Errorf("scan term must be at least %d characters", minLen)
	}

	s.logger.Infow("Starting unindexed scan", "field", field, "term_length", len(term))

	// field is whitelisted above, never raw user input
	query := fmt.Sprintf("SELECT * FROM users WHERE %s LIKE ? LIMIT ?", field)
	rows, err := s.session.Query(ctx, query, "%"+term+"%", s.cfg.MaxResults)
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, types.RecordFromRow(row))
	}
	return records, nil
}

// RowCount returns the approximate row count of the dataset. MAX(rowid) is
// an O(1) index probe, unlike COUNT(*) which would walk a billion rows.
func (s *Service) RowCount(ctx context.Context) (int64, error) {
	rows, err := s.session.Query(ctx, "SELECT MAX(rowid) AS max_rowid FROM users")
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return types.ToInt64(rows[0]["max_rowid"]), nil
}

// DatabaseSize returns the dataset file size in bytes (page_count * page_size).
func (s *Service) DatabaseSize(ctx context.Context) (int64, error) {
	pageCount, err := s.session.Query(ctx, "PRAGMA page_count")
	if err != nil {
		return 0, err
	}
	pageSize, err := s.session.Query(ctx, "PRAGMA page_size")
	if err != nil {
		return 0, err
	}
	if len(pageCount) == 0 || len(pageSize) == 0 {
		return 0, nil
	}
	return types.ToInt64(pageCount[0]["page_count"]) * types.ToInt64(pageSize[0]["page_size"]), nil
}
