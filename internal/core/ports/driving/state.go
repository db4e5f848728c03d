package driving

import "github.com/custodia-labs/hdcat/internal/core/domain"

// FilterState holds the active facet selections and the free-text query.
type FilterState interface {
	// ActiveFilters returns a copy of the current selections.
	ActiveFilters() domain.FilterMap

	// SearchQuery returns the current query. Empty means no text search.
	SearchQuery() string

	// SetFilters replaces all selections.
	SetFilters(filters domain.FilterMap)

	// SetSearchQuery replaces the query.
	SetSearchQuery(query string)

	// RemoveFilter deselects one value, dropping the category once empty.
	RemoveFilter(category domain.FacetCategory, value string)

	// ClearFilters removes every selection. The query is kept.
	ClearFilters()

	// SetFilterByAttribute selects value in the category mapped from a raw
	// dataset attribute, merging with existing selections.
	SetFilterByAttribute(field, value string)

	// ToggleFilter flips a single value.
	ToggleFilter(category domain.FacetCategory, value string)

	// SetCategoryAll selects or deselects every option of a category.
	SetCategoryAll(category domain.FacetCategory, options []string, selected bool)

	// ActiveFilterList returns the selections as an ordered list.
	ActiveFilterList() []domain.ActiveFilter

	// Snapshot returns filters, query and revision read together.
	Snapshot() domain.FilterSnapshot
}

// ViewState holds display concerns independent of filtering.
type ViewState interface {
	ViewMode() domain.ViewMode
	SortBy() domain.SortOrder
	SelectedDataset() (domain.Dataset, bool)
	IsTransitioning() bool

	// SetViewMode and SetSortBy apply immediately.
	SetViewMode(mode domain.ViewMode) error
	SetSortBy(order domain.SortOrder) error

	// SelectDataset and ClearSelectedDataset start a transition whose
	// commit is delayed. A newer call supersedes a pending one.
	SelectDataset(dataset domain.Dataset)
	ClearSelectedDataset()

	// Snapshot returns the current state read together.
	Snapshot() domain.ViewSnapshot
}
