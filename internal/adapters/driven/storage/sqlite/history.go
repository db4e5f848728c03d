package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driven"
)

// Ensure historyStore implements the interface.
var _ driven.SearchHistoryStore = (*historyStore)(nil)

// historyStore persists search history in the search_history table.
// Timestamps are stored as Unix nanoseconds so ordering is exact.
type historyStore struct {
	db *sql.DB
}

func (s *historyStore) Add(ctx context.Context, entry domain.SearchHistoryEntry) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO search_history (id, query, searched_at) VALUES (?, ?, ?)",
		entry.ID, entry.Query, entry.SearchedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

func (s *historyStore) List(ctx context.Context, limit int) ([]domain.SearchHistoryEntry, error) {
	query := "SELECT id, query, searched_at FROM search_history ORDER BY searched_at DESC, rowid DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.SearchHistoryEntry, 0)
	for rows.Next() {
		var e domain.SearchHistoryEntry
		var nanos int64
		if err := rows.Scan(&e.ID, &e.Query, &nanos); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.SearchedAt = time.Unix(0, nanos).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *historyStore) DeleteQuery(ctx context.Context, query string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM search_history WHERE query = ?", query); err != nil {
		return fmt.Errorf("deleting history query: %w", err)
	}
	return nil
}

func (s *historyStore) Trim(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM search_history WHERE id NOT IN (
			SELECT id FROM search_history ORDER BY searched_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("trimming history: %w", err)
	}
	return nil
}

func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM search_history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
