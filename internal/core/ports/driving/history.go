package driving

import (
	"context"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// SearchHistoryService tracks recently run queries.
// Persistence failures are logged and never returned from Record.
type SearchHistoryService interface {
	// Record adds query as the most recent entry. Blank queries are ignored.
	Record(ctx context.Context, query string)

	// Recent returns entries, most recent first.
	Recent(ctx context.Context) ([]domain.SearchHistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
