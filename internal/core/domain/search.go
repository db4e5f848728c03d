package domain

// MatchedField names a dataset field that contained the search query.
type MatchedField string

// Matched fields in priority order.
const (
	MatchedTitle       MatchedField = "title"
	MatchedDescription MatchedField = "description"
	MatchedCategory    MatchedField = "category"
	MatchedSource      MatchedField = "source"
	MatchedTopic       MatchedField = "topic"
)

// SearchableFieldCount is the number of fields a query is matched against.
const SearchableFieldCount = 5

// AllMatchedFields returns the searchable fields in priority order.
func AllMatchedFields() []MatchedField {
	return []MatchedField{
		MatchedTitle,
		MatchedDescription,
		MatchedCategory,
		MatchedSource,
		MatchedTopic,
	}
}

// Value returns the dataset text searched for this field.
func (f MatchedField) Value(d Dataset) string {
	switch f {
	case MatchedTitle:
		return d.Name
	case MatchedDescription:
		return d.Description
	case MatchedCategory:
		return d.CommunityActionArea
	case MatchedSource:
		return d.Source
	case MatchedTopic:
		return d.DataTopic
	default:
		return ""
	}
}

// String returns the string representation.
func (f MatchedField) String() string {
	return string(f)
}

// SearchResult is a dataset extended with relevance information.
// Results produced without a query carry no matched fields and zero scores.
type SearchResult struct {
	// Dataset is the matched record.
	Dataset Dataset

	// RelevanceScore is the number of matched fields divided by SearchableFieldCount.
	RelevanceScore float64

	// NormalizedScore is RelevanceScore clamped to 1.
	NormalizedScore float64

	// MatchedFields lists fields containing the query, in priority order.
	MatchedFields []MatchedField
}

// HasRelevance reports whether the result was scored against a query.
func (r SearchResult) HasRelevance() bool {
	return len(r.MatchedFields) > 0
}

// CategorySuggestion is a community action area tallied across search results.
type CategorySuggestion struct {
	Name  string
	Count int
}

// DatasetGroup is a run of datasets sharing a community action area.
type DatasetGroup struct {
	Area     string
	Datasets []Dataset
}

// OtherArea groups datasets without a community action area.
const OtherArea = "Other"
