package services

import "github.com/custodia-labs/hdcat/internal/core/domain"

// MatchesFacet reports whether the dataset attribute mapped from category
// equals value. Unknown categories and missing attributes never match.
func MatchesFacet(d domain.Dataset, category domain.FacetCategory, value string) bool {
	attr := category.Attribute()
	if attr == "" {
		return false
	}
	got, ok := d.Attribute(attr)
	if !ok {
		return false
	}
	return got == value
}

// PassesFilters reports whether d matches at least one selected value of
// every category that has a selection. Categories without selections are
// ignored, so a nil or empty map admits everything.
func PassesFilters(d domain.Dataset, filters domain.FilterMap) bool {
	for category, values := range filters {
		active := false
		matched := false
		for value, on := range values {
			if !on {
				continue
			}
			active = true
			if MatchesFacet(d, category, value) {
				matched = true
				break
			}
		}
		if active && !matched {
			return false
		}
	}
	return true
}

// ApplyFilters returns the datasets passing filters, preserving order.
func ApplyFilters(datasets []domain.Dataset, filters domain.FilterMap) []domain.Dataset {
	out := make([]domain.Dataset, 0, len(datasets))
	for _, d := range datasets {
		if PassesFilters(d, filters) {
			out = append(out, d)
		}
	}
	return out
}
