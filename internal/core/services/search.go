package services

import (
	"strings"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// Search matches query case-insensitively against the searchable fields of
// every dataset and applies filters to the matches. A blank query returns
// the filtered datasets without relevance information.
func (s *CatalogService) Search(query string, filters domain.FilterMap) []domain.SearchResult {
	logger.Section("Search Execution")
	logger.Debug("Query: %q, active filters: %d", query, filters.ActiveCount())

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		logger.Debug("Empty query, returning filtered datasets")
		filtered := s.FilteredDatasets(filters)
		results := make([]domain.SearchResult, len(filtered))
		for i, d := range filtered {
			results[i] = domain.SearchResult{Dataset: d}
		}
		return results
	}

	results := make([]domain.SearchResult, 0)
	matches := 0
	for _, d := range s.datasets {
		fields := matchFields(d, needle)
		if len(fields) == 0 {
			continue
		}
		matches++
		if !PassesFilters(d, filters) {
			continue
		}
		results = append(results, scoreResult(d, fields))
	}

	logger.Debug("Matched %d datasets, %d after filtering", matches, len(results))
	return results
}

// matchFields returns the fields of d containing needle, in priority order.
// needle must already be lower-cased.
func matchFields(d domain.Dataset, needle string) []domain.MatchedField {
	var fields []domain.MatchedField
	for _, f := range domain.AllMatchedFields() {
		v := f.Value(d)
		if v == "" {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			fields = append(fields, f)
		}
	}
	return fields
}

func scoreResult(d domain.Dataset, fields []domain.MatchedField) domain.SearchResult {
	score := float64(len(fields)) / domain.SearchableFieldCount
	normalized := score
	if normalized > 1 {
		normalized = 1
	}
	return domain.SearchResult{
		Dataset:         d,
		RelevanceScore:  score,
		NormalizedScore: normalized,
		MatchedFields:   fields,
	}
}
