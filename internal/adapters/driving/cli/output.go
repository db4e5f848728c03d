package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// datasetOutput is the JSON shape of a dataset, matching catalog files.
type datasetOutput struct {
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

type resultOutput struct {
	datasetOutput
	RelevanceScore float64  `json:"relevanceScore,omitempty"`
	MatchedFields  []string `json:"matchedFields,omitempty"`
}

func toDatasetOutput(d domain.Dataset) datasetOutput {
	return datasetOutput{
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

func toResultOutput(r domain.SearchResult) resultOutput {
	out := resultOutput{
		datasetOutput:  toDatasetOutput(r.Dataset),
		RelevanceScore: r.RelevanceScore,
	}
	for _, f := range r.MatchedFields {
		out.MatchedFields = append(out.MatchedFields, f.String())
	}
	return out
}

func toDatasetOutputs(datasets []domain.Dataset) []datasetOutput {
	out := make([]datasetOutput, 0, len(datasets))
	for i := range datasets {
		out = append(out, toDatasetOutput(datasets[i]))
	}
	return out
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printDatasetLine prints a one-entry summary: "[N] Name" followed by an
// indented line of key attributes.
func printDatasetLine(cmd *cobra.Command, n int, d domain.Dataset, suffix string) {
	cmd.Printf("  [%d] %s%s\n", n, displayName(d), suffix)
	meta := joinNonEmpty(" | ", d.CommunityActionArea, d.Source, d.DateUpdated)
	if meta != "" {
		cmd.Printf("      %s\n", meta)
	}
}

func displayName(d domain.Dataset) string {
	if d.Name == "" {
		return d.ID
	}
	return d.Name
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func matchedSuffix(r domain.SearchResult) string {
	if !r.HasRelevance() {
		return ""
	}
	fields := make([]string, len(r.MatchedFields))
	for i, f := range r.MatchedFields {
		fields[i] = f.String()
	}
	return fmt.Sprintf(" (%.2f, matched %s)", r.RelevanceScore, strings.Join(fields, ", "))
}
