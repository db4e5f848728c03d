package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driven"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// Ensure SearchHistoryService implements the interface.
var _ driving.SearchHistoryService = (*SearchHistoryService)(nil)

// SearchHistoryService keeps the most recent distinct queries.
type SearchHistoryService struct {
	store   driven.SearchHistoryStore
	enabled bool
	size    int
	now     func() time.Time
}

// NewSearchHistoryService creates a history service over store.
// A non-positive size falls back to the default.
func NewSearchHistoryService(store driven.SearchHistoryStore, settings domain.HistorySettings) *SearchHistoryService {
	size := settings.Size
	if size <= 0 {
		size = domain.DefaultHistorySize
	}
	return &SearchHistoryService{
		store:   store,
		enabled: settings.Enabled,
		size:    size,
		now:     time.Now,
	}
}

// Record moves query to the front of the history. Storage failures are
// logged and dropped so they never affect searching.
func (s *SearchHistoryService) Record(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" || !s.enabled || s.store == nil {
		return
	}

	if err := s.store.DeleteQuery(ctx, query); err != nil {
		logger.Warn("search history: remove duplicate %q: %v", query, err)
		return
	}
	entry := domain.SearchHistoryEntry{
		ID:         uuid.New().String(),
		Query:      query,
		SearchedAt: s.now().UTC(),
	}
	if err := s.store.Add(ctx, entry); err != nil {
		logger.Warn("search history: add %q: %v", query, err)
		return
	}
	if err := s.store.Trim(ctx, s.size); err != nil {
		logger.Warn("search history: trim to %d: %v", s.size, err)
	}
}

// Recent returns the stored queries, most recent first.
func (s *SearchHistoryService) Recent(ctx context.Context) ([]domain.SearchHistoryEntry, error) {
	if !s.enabled || s.store == nil {
		return []domain.SearchHistoryEntry{}, nil
	}
	entries, err := s.store.List(ctx, s.size)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	return entries, nil
}

// Clear removes every stored query.
func (s *SearchHistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear search history: %w", err)
	}
	return nil
}
