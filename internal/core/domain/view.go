package domain

import (
	"fmt"
	"strings"
)

// ViewMode selects how results are presented.
type ViewMode string

// Available view modes.
const (
	ViewModeGrid   ViewMode = "grid"
	ViewModeList   ViewMode = "list"
	ViewModeDetail ViewMode = "detail"
)

// AllViewModes returns the view modes in cycling order.
func AllViewModes() []ViewMode {
	return []ViewMode{ViewModeGrid, ViewModeList, ViewModeDetail}
}

// IsValid returns true if the view mode is recognised.
func (m ViewMode) IsValid() bool {
	switch m {
	case ViewModeGrid, ViewModeList, ViewModeDetail:
		return true
	default:
		return false
	}
}

// Next returns the following mode, wrapping around.
func (m ViewMode) Next() ViewMode {
	modes := AllViewModes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return ViewModeGrid
}

// String returns the string representation.
func (m ViewMode) String() string {
	return string(m)
}

// ParseViewMode parses a view mode name case-insensitively.
func ParseViewMode(s string) (ViewMode, error) {
	m := ViewMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidViewMode, s)
	}
	return m, nil
}

// SortOrder selects how results are ordered.
type SortOrder string

// Available sort orders.
const (
	SortByRelevance SortOrder = "relevance"
	SortByDate      SortOrder = "date"
	SortByName      SortOrder = "name"
)

// AllSortOrders returns the sort orders in cycling order.
func AllSortOrders() []SortOrder {
	return []SortOrder{SortByRelevance, SortByDate, SortByName}
}

// IsValid returns true if the sort order is recognised.
func (o SortOrder) IsValid() bool {
	switch o {
	case SortByRelevance, SortByDate, SortByName:
		return true
	default:
		return false
	}
}

// Next returns the following order, wrapping around.
func (o SortOrder) Next() SortOrder {
	orders := AllSortOrders()
	for i, order := range orders {
		if order == o {
			return orders[(i+1)%len(orders)]
		}
	}
	return SortByRelevance
}

// String returns the string representation.
func (o SortOrder) String() string {
	return string(o)
}

// Description returns a human-readable label.
func (o SortOrder) Description() string {
	switch o {
	case SortByRelevance:
		return "Relevance"
	case SortByDate:
		return "Last updated"
	case SortByName:
		return "Name"
	default:
		return unknownDescription
	}
}

// ParseSortOrder parses a sort order name case-insensitively.
func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if !o.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
	return o, nil
}
