// Package domain defines the core business entities for hdcat.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Dataset: An immutable catalog record
//   - SearchResult: A dataset annotated with relevance information
//   - FilterMap: Active facet selections keyed by FacetCategory
//   - ViewMode and SortOrder: Display concerns of the presentation layer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
