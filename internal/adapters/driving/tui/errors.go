package tui

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingFilterState is returned when the filter state is not provided.
var ErrMissingFilterState = errors.New("tui: filter state is required")

// ErrMissingViewState is returned when the view state is not provided.
var ErrMissingViewState = errors.New("tui: view state is required")
