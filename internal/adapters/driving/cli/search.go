package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

var (
	searchFilters []string
	searchSort    string
	searchLimit   int
	searchJSON    bool
	searchGroup   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the dataset catalog",
	Long: `Searches dataset titles, descriptions, community action areas, sources
and topics for the query (case-insensitive substring match).

Results are narrowed with facet filters. Values within one category are
OR-ed together; categories are AND-ed. Categories may be given by display
name ("Source") or by attribute name ("source").

Examples:
  hdcat search housing
  hdcat search --filter "Source=PolicyMap" --filter "Source=CA Open Data"
  hdcat search census -f "Community Action Areas=Demographic Data" --sort name`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchFilters, "filter", "f", nil, "facet filter as Category=Value (repeatable)")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "sort order: relevance, date or name (default from settings)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results (0 for all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchGroup, "group", false, "group results by community action area")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	filters, err := resolveFilters(searchFilters)
	if err != nil {
		return err
	}
	order, err := resolveSortOrder(searchSort)
	if err != nil {
		return err
	}

	results := catalogService.Sort(catalogService.Search(query, filters), order)
	total := len(results)
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if historyService != nil && strings.TrimSpace(query) != "" {
		historyService.Record(commandContext(cmd), query)
	}

	if searchJSON {
		out := make([]resultOutput, 0, len(results))
		for i := range results {
			out = append(out, toResultOutput(results[i]))
		}
		return writeJSON(cmd, out)
	}

	if searchGroup {
		return outputSearchGroups(cmd, results)
	}
	return outputSearchTable(cmd, query, results, total)
}

func outputSearchTable(cmd *cobra.Command, query string, results []domain.SearchResult, total int) error {
	if len(results) == 0 {
		cmd.Println("No datasets found.")
		return nil
	}

	cmd.Printf("Showing %d of %d datasets\n\n", len(results), total)
	for i := range results {
		printDatasetLine(cmd, i+1, results[i].Dataset, matchedSuffix(results[i]))
	}

	if related := catalogService.Suggestions(query); len(related) > 0 {
		cmd.Println()
		cmd.Printf("Related: %s\n", strings.Join(related, ", "))
	}
	return nil
}

func outputSearchGroups(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No datasets found.")
		return nil
	}

	datasets := make([]domain.Dataset, len(results))
	for i := range results {
		datasets[i] = results[i].Dataset
	}

	n := 0
	for _, group := range catalogService.GroupByArea(datasets) {
		cmd.Printf("%s (%d)\n", group.Area, len(group.Datasets))
		for _, d := range group.Datasets {
			n++
			cmd.Printf("  [%d] %s\n", n, displayName(d))
		}
		cmd.Println()
	}
	return nil
}

// resolveFilters parses Category=Value expressions. Categories match a
// display name case-insensitively or a raw attribute name.
func resolveFilters(exprs []string) (domain.FilterMap, error) {
	filters := make(domain.FilterMap)
	for _, expr := range exprs {
		f, err := domain.ParseFilterExpr(expr)
		if err != nil {
			return nil, err
		}
		cat, ok := resolveCategory(string(f.Category))
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidFilter, f.Category)
		}
		if filters[cat] == nil {
			filters[cat] = make(map[string]bool)
		}
		filters[cat][f.Value] = true
	}
	return filters, nil
}

func resolveCategory(name string) (domain.FacetCategory, bool) {
	for _, c := range domain.AllFacetCategories() {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	for _, c := range domain.AllFacetCategories() {
		if strings.EqualFold(c.Attribute(), name) {
			return c, true
		}
	}
	return "", false
}

func resolveSortOrder(s string) (domain.SortOrder, error) {
	if s != "" {
		return domain.ParseSortOrder(s)
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.View.Sort, nil
		}
	}
	return domain.SortByRelevance, nil
}
