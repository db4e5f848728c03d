package services

import (
	"fmt"
	"sync/atomic"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// Ensure LiveCatalog implements the interface.
var _ driving.CatalogService = (*LiveCatalog)(nil)

// LiveCatalog serves queries from the most recently loaded collection.
// Each reload builds a fresh CatalogService, so the id lookup always
// matches the datasets it was built from.
type LiveCatalog struct {
	current atomic.Pointer[CatalogService]
	reloads atomic.Uint64
}

// NewLiveCatalog builds the initial catalog.
func NewLiveCatalog(datasets []domain.Dataset) (*LiveCatalog, error) {
	c := &LiveCatalog{}
	if err := c.Reload(datasets); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload swaps in a catalog built from datasets. On error the previous
// catalog stays in service.
func (c *LiveCatalog) Reload(datasets []domain.Dataset) error {
	svc, err := NewCatalogService(datasets)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	c.current.Store(svc)
	n := c.reloads.Add(1)
	logger.Info("Catalog loaded (%d datasets, generation %d)", svc.Count(), n)
	return nil
}

// Generation returns how many times the catalog has been loaded.
func (c *LiveCatalog) Generation() uint64 {
	return c.reloads.Load()
}

func (c *LiveCatalog) svc() *CatalogService {
	return c.current.Load()
}

// Search delegates to the current catalog.
func (c *LiveCatalog) Search(query string, filters domain.FilterMap) []domain.SearchResult {
	return c.svc().Search(query, filters)
}

// FilteredDatasets delegates to the current catalog.
func (c *LiveCatalog) FilteredDatasets(filters domain.FilterMap) []domain.Dataset {
	return c.svc().FilteredDatasets(filters)
}

// DatasetByID delegates to the current catalog.
func (c *LiveCatalog) DatasetByID(id string) (domain.Dataset, bool) {
	return c.svc().DatasetByID(id)
}

// FeaturedDatasets delegates to the current catalog.
func (c *LiveCatalog) FeaturedDatasets() []domain.Dataset {
	return c.svc().FeaturedDatasets()
}

// SuggestedCategories delegates to the current catalog.
func (c *LiveCatalog) SuggestedCategories(query string) []domain.CategorySuggestion {
	return c.svc().SuggestedCategories(query)
}

// Suggestions delegates to the current catalog.
func (c *LiveCatalog) Suggestions(query string) []string {
	return c.svc().Suggestions(query)
}

// Datasets delegates to the current catalog.
func (c *LiveCatalog) Datasets() []domain.Dataset {
	return c.svc().Datasets()
}

// Count delegates to the current catalog.
func (c *LiveCatalog) Count() int {
	return c.svc().Count()
}

// GroupByArea delegates to the current catalog.
func (c *LiveCatalog) GroupByArea(datasets []domain.Dataset) []domain.DatasetGroup {
	return c.svc().GroupByArea(datasets)
}

// FacetCounts delegates to the current catalog.
func (c *LiveCatalog) FacetCounts(datasets []domain.Dataset) []domain.FacetSummary {
	return c.svc().FacetCounts(datasets)
}

// AttributeDetail delegates to the current catalog.
func (c *LiveCatalog) AttributeDetail(field, value string) (domain.AttributeInfo, []domain.Dataset) {
	return c.svc().AttributeDetail(field, value)
}

// Sort delegates to the current catalog.
func (c *LiveCatalog) Sort(results []domain.SearchResult, order domain.SortOrder) []domain.SearchResult {
	return c.svc().Sort(results, order)
}
