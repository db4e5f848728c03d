package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

var browseJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a dataset's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "List featured datasets",
	Long:  `Lists up to four datasets, one from each of the first community action areas in the catalog.`,
	Args:  cobra.NoArgs,
	RunE:  runFeatured,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Suggest community action areas for a query",
	Long:  `Tallies the community action areas of datasets matching the query and lists the most common.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

var facetsCmd = &cobra.Command{
	Use:   "facets [query]",
	Short: "List facet values and dataset counts",
	Long:  `Counts datasets per facet value across the catalog, or across the matches of query when given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFacets,
}

var attributeCmd = &cobra.Command{
	Use:   "attribute [field] [value]",
	Short: "Describe an attribute value and list datasets carrying it",
	Long: `Describes an attribute value such as a community action area or source,
and lists the datasets that carry it.

Example:
  hdcat attribute communityActionArea "Demographic Data"`,
	Args: cobra.ExactArgs(2),
	RunE: runAttribute,
}

func init() {
	for _, c := range []*cobra.Command{showCmd, featuredCmd, suggestCmd, facetsCmd, attributeCmd} {
		c.Flags().BoolVar(&browseJSON, "json", false, "output as JSON")
		rootCmd.AddCommand(c)
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}

	d, ok := catalogService.DatasetByID(args[0])
	if !ok {
		return fmt.Errorf("%w: dataset %q", domain.ErrNotFound, args[0])
	}
	if browseJSON {
		return writeJSON(cmd, toDatasetOutput(d))
	}

	cmd.Println(displayName(d))
	cmd.Println()
	if d.Description != "" {
		cmd.Println(d.Description)
		cmd.Println()
	}
	printField(cmd, "ID", d.ID)
	printField(cmd, "Community Action Area", d.CommunityActionArea)
	printField(cmd, "Source", d.Source)
	printField(cmd, "Category", d.Type)
	printField(cmd, "Data Type", d.DataFormat)
	printField(cmd, "Topic", d.DataTopic)
	printField(cmd, "Created", d.DateCreated)
	printField(cmd, "Last Updated", d.DateUpdated)
	printField(cmd, "Page", d.PageURL)
	return nil
}

func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		value = "-"
	}
	cmd.Printf("  %-22s %s\n", label+":", value)
}

func runFeatured(cmd *cobra.Command, _ []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}

	featured := catalogService.FeaturedDatasets()
	if browseJSON {
		return writeJSON(cmd, toDatasetOutputs(featured))
	}
	if len(featured) == 0 {
		cmd.Println("No featured datasets.")
		return nil
	}

	cmd.Println("Featured datasets:")
	cmd.Println()
	for i, d := range featured {
		printDatasetLine(cmd, i+1, d, "")
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}

	suggestions := catalogService.SuggestedCategories(args[0])
	if browseJSON {
		type suggestionOutput struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}
		out := make([]suggestionOutput, 0, len(suggestions))
		for _, s := range suggestions {
			out = append(out, suggestionOutput{Name: s.Name, Count: s.Count})
		}
		return writeJSON(cmd, out)
	}
	if len(suggestions) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}
	for _, s := range suggestions {
		cmd.Printf("  %-60s %d\n", s.Name, s.Count)
	}
	return nil
}

func runFacets(cmd *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}

	datasets := catalogService.Datasets()
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		results := catalogService.Search(args[0], nil)
		datasets = make([]domain.Dataset, len(results))
		for i := range results {
			datasets[i] = results[i].Dataset
		}
	}
	summaries := catalogService.FacetCounts(datasets)
	if browseJSON {
		type countOutput struct {
			Value string `json:"value"`
			Count int    `json:"count"`
		}
		type facetOutput struct {
			Category string        `json:"category"`
			Counts   []countOutput `json:"counts"`
		}
		out := make([]facetOutput, 0, len(summaries))
		for _, s := range summaries {
			f := facetOutput{Category: string(s.Category), Counts: []countOutput{}}
			for _, c := range s.Counts {
				f.Counts = append(f.Counts, countOutput{Value: c.Value, Count: c.Count})
			}
			out = append(out, f)
		}
		return writeJSON(cmd, out)
	}

	for _, s := range summaries {
		cmd.Printf("[%s]\n", s.Category)
		if len(s.Counts) == 0 {
			cmd.Println("  (no values)")
		}
		for _, c := range s.Counts {
			cmd.Printf("  %-60s %d\n", c.Value, c.Count)
		}
		cmd.Println()
	}
	return nil
}

func runAttribute(cmd *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}

	info, datasets := catalogService.AttributeDetail(args[0], args[1])
	if browseJSON {
		type attributeOutput struct {
			Field       string          `json:"field"`
			Name        string          `json:"name"`
			Description string          `json:"description"`
			Source      string          `json:"source"`
			SourceURL   string          `json:"sourceUrl"`
			Datasets    []datasetOutput `json:"datasets"`
		}
		return writeJSON(cmd, attributeOutput{
			Field:       info.Field,
			Name:        info.Name,
			Description: info.Description,
			Source:      info.Source,
			SourceURL:   info.SourceURL,
			Datasets:    toDatasetOutputs(datasets),
		})
	}

	cmd.Println(info.Name)
	cmd.Println()
	cmd.Println(info.Description)
	cmd.Println()
	printField(cmd, "Source", info.Source)
	printField(cmd, "Source URL", info.SourceURL)
	cmd.Println()
	cmd.Printf("Datasets (%d):\n", len(datasets))
	for i, d := range datasets {
		printDatasetLine(cmd, i+1, d, "")
	}
	return nil
}
