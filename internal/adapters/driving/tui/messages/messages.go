// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewHome is the landing view with search box and featured datasets.
	ViewHome ViewType = iota
	// ViewResults lists search results with filters.
	ViewResults
	// ViewDetail shows a single dataset.
	ViewDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewResults:
		return "results"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// SearchRequested asks the app to run the current query and filters.
type SearchRequested struct {
	// Submitted is set when the user entered the query, which records it
	// in search history.
	Submitted bool
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Query       string
	Results     []domain.SearchResult
	Suggestions []string
	Facets      []domain.FacetSummary
	Revision    uint64
}

// DatasetChosen is sent when the user picks a dataset to open.
type DatasetChosen struct {
	Dataset domain.Dataset
}

// ViewCommitted carries a delayed view-state commit.
type ViewCommitted struct {
	Snapshot domain.ViewSnapshot
}

// HistoryLoaded carries recent searches.
type HistoryLoaded struct {
	Entries []domain.SearchHistoryEntry
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
