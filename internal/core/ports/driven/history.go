package driven

import (
	"context"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// SearchHistoryStore persists recently run queries.
type SearchHistoryStore interface {
	// Add stores an entry.
	Add(ctx context.Context, entry domain.SearchHistoryEntry) error

	// List returns up to limit entries, most recent first. A limit of 0 returns all.
	List(ctx context.Context, limit int) ([]domain.SearchHistoryEntry, error)

	// DeleteQuery removes every entry with exactly this query.
	DeleteQuery(ctx context.Context, query string) error

	// Trim keeps only the keep most recent entries.
	Trim(ctx context.Context, keep int) error

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
