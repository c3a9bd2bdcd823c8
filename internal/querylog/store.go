package querylog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/ww2site/internal/db"
)

// Store persists the search queries answered by the site.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a new query log store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Normalize folds a query to the form used for aggregation.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Record stores one answered query.
func (s *Store) Record(ctx context.Context, query string, resultCount int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO search_queries (id, query, normalized, result_count, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), query, Normalize(query), resultCount, s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting query: %w", err)
	}
	return nil
}

// Recent returns the most recently recorded queries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Query, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, normalized, result_count, created_at
		 FROM search_queries
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing recent queries: %w", err)
	}
	defer rows.Close()

	var out []Query
	for rows.Next() {
		var q Query
		var created int64
		if err := rows.Scan(&q.ID, &q.Query, &q.Normalized, &q.ResultCount, &created); err != nil {
			return nil, fmt.Errorf("scanning query: %w", err)
		}
		q.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, q)
	}
	return out, rows.Err()
}

// Top returns the most frequent normalized queries, most frequent first.
func (s *Store) Top(ctx context.Context, limit int) ([]KeywordStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT normalized,
		        COUNT(*) AS hits,
		        SUM(CASE WHEN result_count = 0 THEN 1 ELSE 0 END) AS misses,
		        MAX(created_at) AS last_seen
		 FROM search_queries
		 GROUP BY normalized
		 ORDER BY hits DESC, normalized ASC
		 LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("aggregating queries: %w", err)
	}
	defer rows.Close()

	var out []KeywordStat
	for rows.Next() {
		var st KeywordStat
		var lastSeen int64
		if err := rows.Scan(&st.Keyword, &st.Count, &st.Misses, &lastSeen); err != nil {
			return nil, fmt.Errorf("scanning keyword stat: %w", err)
		}
		st.LastSeenAt = time.UnixMilli(lastSeen).UTC()
		out = append(out, st)
	}
	return out, rows.Err()
}

// Count returns the number of recorded queries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM search_queries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting queries: %w", err)
	}
	return n, nil
}
