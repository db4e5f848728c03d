package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FacetCategory is a named dimension of filtering.
type FacetCategory string

// Facet categories understood by the filter evaluator.
const (
	CategoryCommunityActionArea FacetCategory = "Community Action Areas"
	CategorySource              FacetCategory = "Source"
	CategoryType                FacetCategory = "Categories"
	CategoryDataFormat          FacetCategory = "Data Type"
	CategoryDataTopic           FacetCategory = "Data Topic"
)

// AllFacetCategories returns the known categories in display order.
func AllFacetCategories() []FacetCategory {
	return []FacetCategory{
		CategoryCommunityActionArea,
		CategorySource,
		CategoryType,
		CategoryDataFormat,
		CategoryDataTopic,
	}
}

// Attribute returns the dataset attribute the category compares against.
// Unknown categories return an empty string.
func (c FacetCategory) Attribute() string {
	switch c {
	case CategoryCommunityActionArea:
		return AttrCommunityActionArea
	case CategoryType:
		return AttrType
	case CategoryDataFormat:
		return AttrDataFormat
	case CategorySource:
		return AttrSource
	case CategoryDataTopic:
		return AttrDataTopic
	default:
		return ""
	}
}

// IsValid returns true if the category is recognised.
func (c FacetCategory) IsValid() bool {
	return c.Attribute() != ""
}

// String returns the string representation.
func (c FacetCategory) String() string {
	return string(c)
}

// order returns the display position; unknown categories sort last.
func (c FacetCategory) order() int {
	for i, known := range AllFacetCategories() {
		if known == c {
			return i
		}
	}
	return len(AllFacetCategories())
}

// CategoryForAttribute maps a raw dataset attribute name to its category.
func CategoryForAttribute(field string) (FacetCategory, bool) {
	for _, c := range AllFacetCategories() {
		if c.Attribute() == field {
			return c, true
		}
	}
	return "", false
}

// FacetDefinition describes the options offered for one category.
type FacetDefinition struct {
	Category FacetCategory
	Options  []string
	Order    int
	Tooltip  string
}

// DefaultFacetDefinitions returns the filter sidebar structure.
// Data Topic has no fixed options; its values come from the catalog.
func DefaultFacetDefinitions() []FacetDefinition {
	return []FacetDefinition{
		{
			Category: CategoryCommunityActionArea,
			Options: []string{
				AreaHealthyChildDevelopment,
				AreaYouthCivicEngagement,
				AreaProtectiveEnvironments,
				AreaEconomicSupports,
				AreaSafeStableHousing,
				AreaDemographicData,
			},
			Order:   1,
			Tooltip: "Filter by ACT Community Action Areas",
		},
		{
			Category: CategorySource,
			Options: []string{
				"PolicyMap",
				"ACS and Census Data",
				"California Department of Social Services",
				"California Department of Education",
				"CAASPP Research Files",
				"CA Open Data",
				"CalEnviroScreen 2.0",
				"2023 Kids Count Data Book",
				"California Current Employment Statistics",
				"Local Area Unemployment Statistics CA",
				"U.S. Household Pulse Survey",
			},
			Order:   2,
			Tooltip: "Filter by the source or provider of the dataset",
		},
		{
			Category: CategoryType,
			Options: []string{
				"Medical Records",
				"Community",
				"Educational Records",
				"Clinical Trials",
				"Public Health",
			},
			Order:   3,
			Tooltip: "Filter by category",
		},
		{
			Category: CategoryDataFormat,
			Options:  []string{"KML Collection", "CSV Collection"},
			Order:    4,
			Tooltip:  "Filter by data format type",
		},
		{
			Category: CategoryDataTopic,
			Order:    5,
			Tooltip:  "Filter by data topic",
		},
	}
}

// FacetDefinitionFor returns the default definition of a category.
func FacetDefinitionFor(c FacetCategory) (FacetDefinition, bool) {
	for _, def := range DefaultFacetDefinitions() {
		if def.Category == c {
			return def, true
		}
	}
	return FacetDefinition{}, false
}

// FacetCount is the number of datasets carrying a facet value.
type FacetCount struct {
	Value string
	Count int
}

// FacetSummary holds the counts for every value of one category.
type FacetSummary struct {
	Category FacetCategory
	Tooltip  string
	Counts   []FacetCount
}

// ActiveFilter is a single selected facet value.
type ActiveFilter struct {
	Category FacetCategory
	Value    string
}

// String renders the filter as "Category: Value".
func (f ActiveFilter) String() string {
	return fmt.Sprintf("%s: %s", f.Category, f.Value)
}

// FilterMap maps a facet category to its values and their selection state.
// A category without a true value imposes no constraint.
type FilterMap map[FacetCategory]map[string]bool

// Clone returns a deep copy.
func (m FilterMap) Clone() FilterMap {
	out := make(FilterMap, len(m))
	for cat, values := range m {
		inner := make(map[string]bool, len(values))
		for v, on := range values {
			inner[v] = on
		}
		out[cat] = inner
	}
	return out
}

// ActiveValues returns the selected values of a category, sorted.
func (m FilterMap) ActiveValues(c FacetCategory) []string {
	var out []string
	for v, on := range m[c] {
		if on {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// IsActive reports whether a single value is selected.
func (m FilterMap) IsActive(c FacetCategory, value string) bool {
	return m[c][value]
}

// Active lists every selected value ordered by category then value.
func (m FilterMap) Active() []ActiveFilter {
	cats := make([]FacetCategory, 0, len(m))
	for c := range m {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		oi, oj := cats[i].order(), cats[j].order()
		if oi != oj {
			return oi < oj
		}
		return cats[i] < cats[j]
	})

	var out []ActiveFilter
	for _, c := range cats {
		for _, v := range m.ActiveValues(c) {
			out = append(out, ActiveFilter{Category: c, Value: v})
		}
	}
	return out
}

// ActiveCount returns the number of selected values across all categories.
func (m FilterMap) ActiveCount() int {
	n := 0
	for _, values := range m {
		for _, on := range values {
			if on {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether no value is selected.
func (m FilterMap) IsEmpty() bool {
	return m.ActiveCount() == 0
}

// Normalize returns a copy without unselected values or empty categories.
func (m FilterMap) Normalize() FilterMap {
	out := make(FilterMap)
	for cat, values := range m {
		inner := make(map[string]bool)
		for v, on := range values {
			if on {
				inner[v] = true
			}
		}
		if len(inner) > 0 {
			out[cat] = inner
		}
	}
	return out
}

// CoerceFilterMap converts externally supplied filter state, such as
// decoded JSON or URL parameters, using truthiness rather than rejecting
// non-boolean values.
func CoerceFilterMap(raw map[string]map[string]any) FilterMap {
	out := make(FilterMap, len(raw))
	for cat, values := range raw {
		inner := make(map[string]bool, len(values))
		for v, on := range values {
			inner[v] = truthy(on)
		}
		out[FacetCategory(cat)] = inner
	}
	return out
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		s := strings.TrimSpace(strings.ToLower(x))
		return s != "" && s != "false" && s != "0"
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case float32:
		return x != 0
	default:
		return true
	}
}

// ParseFilterExpr parses a "Category=Value" expression.
func ParseFilterExpr(expr string) (ActiveFilter, error) {
	cat, value, ok := strings.Cut(expr, "=")
	cat = strings.TrimSpace(cat)
	value = strings.TrimSpace(value)
	if !ok || cat == "" || value == "" {
		return ActiveFilter{}, fmt.Errorf("%w: %q (want Category=Value)", ErrInvalidFilter, expr)
	}
	return ActiveFilter{Category: FacetCategory(cat), Value: value}, nil
}

// FilterMapFromExprs builds a FilterMap from "Category=Value" expressions.
// Values repeated within a category are OR-ed together.
func FilterMapFromExprs(exprs []string) (FilterMap, error) {
	out := make(FilterMap)
	for _, expr := range exprs {
		f, err := ParseFilterExpr(expr)
		if err != nil {
			return nil, err
		}
		if out[f.Category] == nil {
			out[f.Category] = make(map[string]bool)
		}
		out[f.Category][f.Value] = true
	}
	return out, nil
}
