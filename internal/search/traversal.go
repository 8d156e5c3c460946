package search

import (
	"context"
	"fmt"
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/hitekdb/deeplink/internal/types"
)

// DeepSearch resolves a seed number to a consolidated profile by bounded
// breadth-first traversal over the indexed mobile column.
//
// Per level, every not-yet-visited frontier number is looked up; returned
// records are deduplicated by content fingerprint, and each record's
// alt_mobile may contribute one candidate to the next level's frontier.
// Traversal never falls back to an unindexed scan, so each hop stays
// logarithmic against the mobile index; the depth limit and per-query result
// cap jointly bound total work.
//
// All traversal state is created fresh per call. A lookup failure at any hop
// (after the session's retries are exhausted) aborts the whole resolution;
// no partial profile is returned.
func (s *Service) DeepSearch(ctx context.Context, seed string) (*types.Profile, types.SearchStats, error) {
	startTime := time.Now()

	visited := make(map[string]bool)
	frontier := []string{seed}
	var records []types.Record
	seen := make(map[types.Fingerprint]bool)

	s.logger.Infow("Starting deep search", "seed", seed, "max_depth", s.cfg.MaxDepth)

	level := 0
	for len(frontier) > 0 && level < s.cfg.MaxDepth {
		// The next frontier is built as a fresh ordered set; the slice being
		// iterated is never mutated mid-level.
		next := orderedmap.NewOrderedMap[string, struct{}]()

		for _, number := range frontier {
			if visited[number] {
				continue
			}
			visited[number] = true

			recs, err := s.ByMobile(ctx, number)
			if err != nil {
				return nil, types.SearchStats{}, fmt.Errorf("deep search aborted at depth %d for %s: %w", level, number, err)
			}

			for _, rec := range recs {
				fp := rec.Fingerprint()
				if seen[fp] {
					continue
				}
				seen[fp] = true
				records = append(records, rec)

				if candidate, ok := ExtractAltNumber(rec); ok && !visited[candidate] {
					next.Set(candidate, struct{}{})
				}
			}
		}

		s.logger.Debugw("Deep search level complete",
			"level", level,
			"queried", len(frontier),
			"records", len(records),
			"next_frontier", next.Len(),
		)

		frontier = next.Keys()
		level++
	}

	stats := types.SearchStats{
		QueriesRun:   len(visited),
		RecordsFound: len(records),
		Levels:       level,
		Duration:     time.Since(startTime),
	}

	s.logger.Infow("Deep search complete",
		"seed", seed,
		"queries", stats.QueriesRun,
		"records", stats.RecordsFound,
		"levels", stats.Levels,
		"duration", stats.Duration,
	)

	return BuildProfile(seed, records), stats, nil
}
