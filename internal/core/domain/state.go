package domain

// FilterSnapshot is a consistent copy of filter state.
type FilterSnapshot struct {
	Filters FilterMap
	Query   string

	// Revision increases with every mutation.
	Revision uint64
}

// ViewSnapshot is a consistent copy of view state.
type ViewSnapshot struct {
	Mode            ViewMode
	Sort            SortOrder
	Selected        *Dataset
	IsTransitioning bool
}
