package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

const defaultSearchLimit = 10

// DatasetOutput is a dataset as returned by tools.
type DatasetOutput struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	Source              string `json:"source,omitempty"`
	Type                string `json:"type,omitempty"`
	CommunityActionArea string `json:"communityActionArea,omitempty"`
	DataTopic           string `json:"dataTopic,omitempty"`
	DataFormat          string `json:"dataFormat,omitempty"`
	DateCreated         string `json:"dateCreated,omitempty"`
	DateUpdated         string `json:"dateUpdated,omitempty"`
	PageURL             string `json:"pageUrl,omitempty"`
}

// SearchInput is the input schema for the search_datasets tool.
type SearchInput struct {
	Query   string              `json:"query,omitempty" jsonschema:"text to match against title, description, area, source and topic; empty lists every dataset passing the filters"`
	Filters map[string][]string `json:"filters,omitempty" jsonschema:"facet category to accepted values; values within a category are OR-ed and categories are AND-ed"`
	Sort    string              `json:"sort,omitempty" jsonschema:"relevance, date or name (default relevance)"`
	Limit   int                 `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_datasets tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
	Total   int                  `json:"total"`
	Related []string             `json:"related,omitempty"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Dataset        DatasetOutput `json:"dataset"`
	RelevanceScore float64       `json:"relevanceScore"`
	MatchedFields  []string      `json:"matchedFields,omitempty"`
}

// GetDatasetInput is the input schema for the get_dataset tool.
type GetDatasetInput struct {
	ID string `json:"id" jsonschema:"dataset identifier"`
}

// GetDatasetOutput is the output schema for the get_dataset tool.
type GetDatasetOutput struct {
	Dataset DatasetOutput `json:"dataset"`
}

// FeaturedInput is the input schema for the featured_datasets tool.
type FeaturedInput struct{}

// DatasetListOutput wraps a list of datasets.
type DatasetListOutput struct {
	Datasets []DatasetOutput `json:"datasets"`
}

// SuggestInput is the input schema for the suggest_categories tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"search text to tally community action areas for"`
}

// SuggestOutput is the output schema for the suggest_categories tool.
type SuggestOutput struct {
	Suggestions []SuggestionOutput `json:"suggestions"`
}

// SuggestionOutput is a community action area with its match count.
type SuggestionOutput struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FacetsInput is the input schema for the list_facets tool.
type FacetsInput struct {
	Query   string              `json:"query,omitempty" jsonschema:"optional search text restricting the counted datasets"`
	Filters map[string][]string `json:"filters,omitempty" jsonschema:"optional facet filters restricting the counted datasets"`
}

// FacetsOutput is the output schema for the list_facets tool.
type FacetsOutput struct {
	Facets []FacetOutput `json:"facets"`
}

// FacetOutput lists the value counts of one category.
type FacetOutput struct {
	Category string             `json:"category"`
	Tooltip  string             `json:"tooltip,omitempty"`
	Values   []FacetCountOutput `json:"values"`
}

// FacetCountOutput is a facet value with its dataset count.
type FacetCountOutput struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_datasets",
		Description: "Search the dataset catalog by keyword and facet filters",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_dataset",
		Description: "Get a single dataset by id",
	}, s.handleGetDataset)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "featured_datasets",
		Description: "List featured datasets, one per community action area",
	}, s.handleFeatured)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_categories",
		Description: "Suggest community action areas most common among datasets matching a query",
	}, s.handleSuggest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_facets",
		Description: "List facet categories with value counts, optionally within a search",
	}, s.handleListFacets)
}

// handleSearch handles the search_datasets tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	order := domain.SortByRelevance
	if input.Sort != "" {
		o, err := domain.ParseSortOrder(input.Sort)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		order = o
	}

	filters, err := toFilterMap(input.Filters)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	catalog := s.ports.Catalog
	results := catalog.Sort(catalog.Search(input.Query, filters), order)
	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	if s.ports.History != nil && strings.TrimSpace(input.Query) != "" {
		s.ports.History.Record(ctx, input.Query)
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
		Total:   total,
		Related: catalog.Suggestions(input.Query),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			Dataset:        toDatasetOutput(results[i].Dataset),
			RelevanceScore: results[i].RelevanceScore,
		}
		for _, f := range results[i].MatchedFields {
			output.Results[i].MatchedFields = append(output.Results[i].MatchedFields, f.String())
		}
	}

	return nil, output, nil
}

// handleGetDataset handles the get_dataset tool invocation.
func (s *Server) handleGetDataset(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetDatasetInput,
) (*mcp.CallToolResult, GetDatasetOutput, error) {
	d, ok := s.ports.Catalog.DatasetByID(input.ID)
	if !ok {
		return nil, GetDatasetOutput{}, fmt.Errorf("%w: dataset %q", domain.ErrNotFound, input.ID)
	}
	return nil, GetDatasetOutput{Dataset: toDatasetOutput(d)}, nil
}

// handleFeatured handles the featured_datasets tool invocation.
func (s *Server) handleFeatured(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ FeaturedInput,
) (*mcp.CallToolResult, DatasetListOutput, error) {
	return nil, DatasetListOutput{Datasets: toDatasetOutputs(s.ports.Catalog.FeaturedDatasets())}, nil
}

// handleSuggest handles the suggest_categories tool invocation.
func (s *Server) handleSuggest(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	suggestions := s.ports.Catalog.SuggestedCategories(input.Query)
	output := SuggestOutput{Suggestions: make([]SuggestionOutput, len(suggestions))}
	for i, sg := range suggestions {
		output.Suggestions[i] = SuggestionOutput{Name: sg.Name, Count: sg.Count}
	}
	return nil, output, nil
}

// handleListFacets handles the list_facets tool invocation.
func (s *Server) handleListFacets(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FacetsInput,
) (*mcp.CallToolResult, FacetsOutput, error) {
	filters, err := toFilterMap(input.Filters)
	if err != nil {
		return nil, FacetsOutput{}, err
	}

	catalog := s.ports.Catalog
	datasets := catalog.Datasets()
	if strings.TrimSpace(input.Query) != "" || !filters.IsEmpty() {
		results := catalog.Search(input.Query, filters)
		datasets = make([]domain.Dataset, len(results))
		for i := range results {
			datasets[i] = results[i].Dataset
		}
	}

	return nil, FacetsOutput{Facets: toFacetOutputs(catalog.FacetCounts(datasets))}, nil
}

// toFilterMap converts tool filter input, rejecting unknown categories.
func toFilterMap(in map[string][]string) (domain.FilterMap, error) {
	filters := make(domain.FilterMap, len(in))
	for name, values := range in {
		cat := domain.FacetCategory(name)
		if !cat.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidFilter, name)
		}
		for _, v := range values {
			if v == "" {
				continue
			}
			if filters[cat] == nil {
				filters[cat] = make(map[string]bool)
			}
			filters[cat][v] = true
		}
	}
	return filters, nil
}

func toDatasetOutput(d domain.Dataset) DatasetOutput {
	return DatasetOutput{
		ID:                  d.ID,
		Name:                d.Name,
		Description:         d.Description,
		Source:              d.Source,
		Type:                d.Type,
		CommunityActionArea: d.CommunityActionArea,
		DataTopic:           d.DataTopic,
		DataFormat:          d.DataFormat,
		DateCreated:         d.DateCreated,
		DateUpdated:         d.DateUpdated,
		PageURL:             d.PageURL,
	}
}

func toDatasetOutputs(datasets []domain.Dataset) []DatasetOutput {
	out := make([]DatasetOutput, len(datasets))
	for i := range datasets {
		out[i] = toDatasetOutput(datasets[i])
	}
	return out
}

func toFacetOutputs(summaries []domain.FacetSummary) []FacetOutput {
	out := make([]FacetOutput, len(summaries))
	for i, s := range summaries {
		f := FacetOutput{
			Category: string(s.Category),
			Tooltip:  s.Tooltip,
			Values:   make([]FacetCountOutput, len(s.Counts)),
		}
		for j, c := range s.Counts {
			f.Values[j] = FacetCountOutput{Value: c.Value, Count: c.Count}
		}
		out[i] = f
	}
	return out
}
