package querylog

import "time"

// Query is one search request answered by the site.
type Query struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	Normalized  string    `json:"normalized"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// KeywordStat aggregates every query that normalizes to the same keyword.
type KeywordStat struct {
	Keyword    string    `json:"keyword"`
	Count      int64     `json:"count"`
	Misses     int64     `json:"misses"` // queries that matched no page
	LastSeenAt time.Time `json:"last_seen_at"`
}

const (
	defaultLimit = 20
	maxLimit     = 200
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
