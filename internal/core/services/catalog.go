package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

const (
	maxFeatured    = 4
	maxSuggestions = 5
)

// CatalogService answers queries over an immutable dataset collection.
type CatalogService struct {
	datasets []domain.Dataset
	byID     map[string]int
}

// NewCatalogService builds the id lookup for datasets. Empty or duplicate
// ids are rejected.
func NewCatalogService(datasets []domain.Dataset) (*CatalogService, error) {
	s := &CatalogService{
		datasets: make([]domain.Dataset, len(datasets)),
		byID:     make(map[string]int, len(datasets)),
	}
	copy(s.datasets, datasets)

	for i, d := range s.datasets {
		if d.ID == "" {
			return nil, fmt.Errorf("dataset at position %d has no id: %w", i, domain.ErrInvalidInput)
		}
		if prev, ok := s.byID[d.ID]; ok {
			return nil, fmt.Errorf("id %q at positions %d and %d: %w", d.ID, prev, i, domain.ErrDuplicateID)
		}
		s.byID[d.ID] = i
	}

	logger.Debug("Catalog built with %d datasets", len(s.datasets))
	return s, nil
}

// Datasets returns the full collection in storage order.
func (s *CatalogService) Datasets() []domain.Dataset {
	out := make([]domain.Dataset, len(s.datasets))
	copy(out, s.datasets)
	return out
}

// Count returns the number of datasets.
func (s *CatalogService) Count() int {
	return len(s.datasets)
}

// FilteredDatasets returns every dataset passing filters.
func (s *CatalogService) FilteredDatasets(filters domain.FilterMap) []domain.Dataset {
	return ApplyFilters(s.datasets, filters)
}

// DatasetByID looks up a dataset by id.
func (s *CatalogService) DatasetByID(id string) (domain.Dataset, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Dataset{}, false
	}
	return s.datasets[i], true
}

// FeaturedDatasets picks the first dataset of each community action area in
// storage order until four are collected. Datasets without an area are skipped.
func (s *CatalogService) FeaturedDatasets() []domain.Dataset {
	seen := make(map[string]bool)
	out := make([]domain.Dataset, 0, maxFeatured)
	for _, d := range s.datasets {
		if len(out) == maxFeatured {
			break
		}
		area := d.CommunityActionArea
		if area == "" || seen[area] {
			continue
		}
		seen[area] = true
		out = append(out, d)
	}
	return out
}

// SuggestedCategories tallies community action areas over the unfiltered
// results of query. Ties keep first-encountered order.
func (s *CatalogService) SuggestedCategories(query string) []domain.CategorySuggestion {
	if strings.TrimSpace(query) == "" {
		return []domain.CategorySuggestion{}
	}

	tally := make([]domain.CategorySuggestion, 0)
	index := make(map[string]int)
	for _, r := range s.Search(query, nil) {
		area := r.Dataset.CommunityActionArea
		if area == "" {
			continue
		}
		if i, ok := index[area]; ok {
			tally[i].Count++
			continue
		}
		index[area] = len(tally)
		tally = append(tally, domain.CategorySuggestion{Name: area, Count: 1})
	}

	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].Count > tally[j].Count
	})
	if len(tally) > maxSuggestions {
		tally = tally[:maxSuggestions]
	}
	return tally
}

// Suggestions returns the names of SuggestedCategories.
func (s *CatalogService) Suggestions(query string) []string {
	cats := s.SuggestedCategories(query)
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}

// GroupByArea groups datasets by community action area in order of first
// occurrence. Datasets without an area go to the "Other" group.
func (s *CatalogService) GroupByArea(datasets []domain.Dataset) []domain.DatasetGroup {
	var groups []domain.DatasetGroup
	index := make(map[string]int)
	for _, d := range datasets {
		area := d.CommunityActionArea
		if area == "" {
			area = domain.OtherArea
		}
		i, ok := index[area]
		if !ok {
			i = len(groups)
			index[area] = i
			groups = append(groups, domain.DatasetGroup{Area: area})
		}
		groups[i].Datasets = append(groups[i].Datasets, d)
	}
	return groups
}

// FacetCounts counts how many of datasets carry each value of every known
// category. Defined options are listed first, including those with a zero
// count, followed by other observed values in order of first occurrence.
func (s *CatalogService) FacetCounts(datasets []domain.Dataset) []domain.FacetSummary {
	defs := domain.DefaultFacetDefinitions()
	out := make([]domain.FacetSummary, 0, len(defs))

	for _, def := range defs {
		attr := def.Category.Attribute()
		counts := make(map[string]int)
		var extra []string
		defined := make(map[string]bool, len(def.Options))
		for _, opt := range def.Options {
			defined[opt] = true
		}

		for _, d := range datasets {
			v, ok := d.Attribute(attr)
			if !ok {
				continue
			}
			if !defined[v] && counts[v] == 0 {
				extra = append(extra, v)
			}
			counts[v]++
		}

		summary := domain.FacetSummary{Category: def.Category, Tooltip: def.Tooltip}
		for _, opt := range def.Options {
			summary.Counts = append(summary.Counts, domain.FacetCount{Value: opt, Count: counts[opt]})
		}
		for _, v := range extra {
			summary.Counts = append(summary.Counts, domain.FacetCount{Value: v, Count: counts[v]})
		}
		out = append(out, summary)
	}
	return out
}

// AttributeDetail describes a facet value and lists the datasets carrying it.
func (s *CatalogService) AttributeDetail(field, value string) (domain.AttributeInfo, []domain.Dataset) {
	info := domain.LookupAttribute(field, value)
	var matches []domain.Dataset
	for _, d := range s.datasets {
		if v, ok := d.Attribute(field); ok && v == value {
			matches = append(matches, d)
		}
	}
	return info, matches
}

// Sort orders results with SortResults.
func (s *CatalogService) Sort(results []domain.SearchResult, order domain.SortOrder) []domain.SearchResult {
	return SortResults(results, order)
}
