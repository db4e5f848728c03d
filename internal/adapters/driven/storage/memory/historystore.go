package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.SearchHistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.SearchHistoryStore.
// Entries are kept newest first.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.SearchHistoryEntry
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Add stores an entry, keeping entries ordered newest first.
func (s *HistoryStore) Add(_ context.Context, entry domain.SearchHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].SearchedAt.After(s.entries[j].SearchedAt)
	})
	return nil
}

// List returns up to limit entries, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.SearchHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.SearchHistoryEntry, n)
	copy(out, s.entries[:n])
	return out, nil
}

// DeleteQuery removes every entry with exactly this query.
func (s *HistoryStore) DeleteQuery(_ context.Context, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Query != query {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return nil
}

// Trim keeps only the keep most recent entries.
func (s *HistoryStore) Trim(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if keep < 0 {
		keep = 0
	}
	if len(s.entries) > keep {
		s.entries = s.entries[:keep]
	}
	return nil
}

// Clear removes all entries.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
