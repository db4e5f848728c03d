package services

import (
	"strings"
	"sync"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// Ensure FilterState implements the interface.
var _ driving.FilterState = (*FilterState)(nil)

// FilterState holds active facet selections and the search query.
// Clearing filters leaves the query untouched.
type FilterState struct {
	mu       sync.RWMutex
	filters  domain.FilterMap
	query    string
	revision uint64
}

// NewFilterState creates an empty filter state.
func NewFilterState() *FilterState {
	return &FilterState{filters: make(domain.FilterMap)}
}

// ActiveFilters returns a copy of the current selections.
func (s *FilterState) ActiveFilters() domain.FilterMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Clone()
}

// SearchQuery returns the current query.
func (s *FilterState) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// SetFilters replaces all selections. Unselected values and empty
// categories are dropped.
func (s *FilterState) SetFilters(filters domain.FilterMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters.Normalize()
	s.revision++
}

// SetSearchQuery replaces the query.
func (s *FilterState) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.revision++
}

// RemoveFilter deselects value and deletes the category once it has no
// values left.
func (s *FilterState) RemoveFilter(category domain.FacetCategory, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(category, value)
	s.revision++
}

func (s *FilterState) remove(category domain.FacetCategory, value string) {
	values, ok := s.filters[category]
	if !ok {
		return
	}
	delete(values, value)
	if len(values) == 0 {
		delete(s.filters, category)
	}
}

// ClearFilters removes every selection.
func (s *FilterState) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = make(domain.FilterMap)
	s.revision++
}

// SetFilterByAttribute selects value in the category mapped from field.
// Unknown fields leave the state unchanged.
func (s *FilterState) SetFilterByAttribute(field, value string) {
	category, ok := domain.CategoryForAttribute(field)
	if !ok || strings.TrimSpace(value) == "" {
		logger.Debug("Ignoring filter on unmapped attribute %q", field)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(category, value)
	s.revision++
}

func (s *FilterState) add(category domain.FacetCategory, value string) {
	if s.filters[category] == nil {
		s.filters[category] = make(map[string]bool)
	}
	s.filters[category][value] = true
}

// ToggleFilter selects value if it is not selected and removes it otherwise.
func (s *FilterState) ToggleFilter(category domain.FacetCategory, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters[category][value] {
		s.remove(category, value)
	} else {
		s.add(category, value)
	}
	s.revision++
}

// SetCategoryAll selects every option of category, or removes the category
// when selected is false.
func (s *FilterState) SetCategoryAll(category domain.FacetCategory, options []string, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !selected || len(options) == 0 {
		delete(s.filters, category)
	} else {
		values := make(map[string]bool, len(options))
		for _, opt := range options {
			values[opt] = true
		}
		s.filters[category] = values
	}
	s.revision++
}

// ActiveFilterList returns the selections ordered by category then value.
func (s *FilterState) ActiveFilterList() []domain.ActiveFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Active()
}

// ActiveCount returns the number of selected values.
func (s *FilterState) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.ActiveCount()
}

// Snapshot returns filters, query and revision read under one lock.
func (s *FilterState) Snapshot() domain.FilterSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FilterSnapshot{
		Filters:  s.filters.Clone(),
		Query:    s.query,
		Revision: s.revision,
	}
}
