package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID indicates two datasets share the same identifier.
	ErrDuplicateID = errors.New("duplicate dataset id")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a catalog file format that cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidViewMode indicates a view mode outside grid, list and detail.
	ErrInvalidViewMode = errors.New("invalid view mode")

	// ErrInvalidSortOrder indicates a sort order outside relevance, date and name.
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrInvalidFilter indicates a filter expression that cannot be parsed.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrCatalogUnavailable indicates no catalog has been loaded yet.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
