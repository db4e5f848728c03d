package domain

import "time"

// SearchHistoryEntry is a query the user ran.
type SearchHistoryEntry struct {
	ID         string
	Query      string
	SearchedAt time.Time
}
