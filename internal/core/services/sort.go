package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// SortResults returns a sorted copy of results. All orders are stable, so
// equal keys keep their input order.
//
//   - name: locale-aware comparison of dataset names
//   - date: most recently updated first; missing dates last
//   - relevance: highest score first; unscored results after scored ones
func SortResults(results []domain.SearchResult, order domain.SortOrder) []domain.SearchResult {
	out := make([]domain.SearchResult, len(results))
	copy(out, results)

	switch order {
	case domain.SortByName:
		// Collators keep internal buffers and must not be shared.
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Dataset.Name, out[j].Dataset.Name) < 0
		})
	case domain.SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Dataset.UpdatedAt().After(out[j].Dataset.UpdatedAt())
		})
	case domain.SortByRelevance:
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := out[i].HasRelevance(), out[j].HasRelevance()
			if ri != rj {
				return ri
			}
			return out[i].RelevanceScore > out[j].RelevanceScore
		})
	}
	return out
}

// SortDatasets sorts plain datasets. Relevance keeps storage order.
func SortDatasets(datasets []domain.Dataset, order domain.SortOrder) []domain.Dataset {
	results := make([]domain.SearchResult, len(datasets))
	for i, d := range datasets {
		results[i] = domain.SearchResult{Dataset: d}
	}
	sorted := SortResults(results, order)
	out := make([]domain.Dataset, len(sorted))
	for i, r := range sorted {
		out[i] = r.Dataset
	}
	return out
}
