package driving

import "github.com/custodia-labs/hdcat/internal/core/domain"

// CatalogService queries the in-memory dataset catalog.
// All operations are synchronous and free of side effects.
type CatalogService interface {
	// Search matches query against name, description, community action area,
	// source and topic, then applies filters. A blank query returns the
	// filtered datasets without relevance information.
	Search(query string, filters domain.FilterMap) []domain.SearchResult

	// FilteredDatasets returns every dataset passing filters, in storage order.
	FilteredDatasets(filters domain.FilterMap) []domain.Dataset

	// DatasetByID looks up a dataset. The boolean is false for unknown ids.
	DatasetByID(id string) (domain.Dataset, bool)

	// FeaturedDatasets returns up to four datasets, one per community action area.
	FeaturedDatasets() []domain.Dataset

	// SuggestedCategories tallies community action areas across the results
	// of query and returns the five most frequent.
	SuggestedCategories(query string) []domain.CategorySuggestion

	// Suggestions returns the names of the suggested categories.
	Suggestions(query string) []string

	// Datasets returns the full collection in storage order.
	Datasets() []domain.Dataset

	// Count returns the number of datasets.
	Count() int

	// GroupByArea groups datasets by community action area.
	GroupByArea(datasets []domain.Dataset) []domain.DatasetGroup

	// FacetCounts counts facet values across datasets for every category.
	FacetCounts(datasets []domain.Dataset) []domain.FacetSummary

	// AttributeDetail describes a facet value and lists the datasets carrying it.
	AttributeDetail(field, value string) (domain.AttributeInfo, []domain.Dataset)

	// Sort returns results reordered by order. The input is not modified.
	Sort(results []domain.SearchResult, order domain.SortOrder) []domain.SearchResult
}
