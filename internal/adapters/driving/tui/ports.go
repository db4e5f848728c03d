// Package tui provides an interactive terminal user interface for hdcat.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog answers search and browse queries.
	Catalog driving.CatalogService

	// Filters holds the session's facet selections and query.
	Filters driving.FilterState

	// View holds the session's view mode, sort order and selection.
	View driving.ViewState

	// Commits receives delayed selection commits from View. Optional; without
	// it the selection is read back immediately, which suits a zero delay.
	Commits <-chan domain.ViewSnapshot

	// History records and lists recent searches. Optional.
	History driving.SearchHistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Filters == nil {
		return ErrMissingFilterState
	}
	if p.View == nil {
		return ErrMissingViewState
	}
	return nil
}
