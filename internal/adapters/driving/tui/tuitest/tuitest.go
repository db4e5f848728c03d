// Package tuitest provides fixtures shared by the TUI tests.
package tuitest

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/services"
)

// Datasets returns six datasets across five community action areas.
// hdc-009, hdc-010 and hdc-011 match "housing".
func Datasets() []domain.Dataset {
	return []domain.Dataset{
		{
			ID:                  "hdc-001",
			Name:                "Early Childhood Education Enrollment",
			Description:         "Enrollment in state preschool and transitional kindergarten by county.",
			Source:              "California Department of Education",
			Type:                "Educational Records",
			CommunityActionArea: domain.AreaHealthyChildDevelopment,
			DataTopic:           "Early Learning",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2024-03-15",
		},
		{
			ID:                  "hdc-005",
			Name:                "Pollution Burden Scores",
			Description:         "Cumulative pollution burden by census tract.",
			Source:              "CalEnviroScreen 2.0",
			Type:                "Public Health",
			CommunityActionArea: domain.AreaProtectiveEnvironments,
			DataTopic:           "Environmental Health",
			DataFormat:          "KML Collection",
			DateUpdated:         "2022-06-30",
		},
		{
			ID:                  "hdc-007",
			Name:                "CalFresh Enrollment",
			Description:         "Monthly participation in the CalFresh food assistance program.",
			Source:              "California Department of Social Services",
			Type:                "Public Health",
			CommunityActionArea: domain.AreaEconomicSupports,
			DataTopic:           "Food Security",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2024-04-05",
		},
		{
			ID:                  "hdc-009",
			Name:                "Housing Cost Burden",
			Description:         "Households spending more than 30 percent of income on rent or mortgage.",
			Source:              "PolicyMap",
			Type:                "Community",
			CommunityActionArea: domain.AreaSafeStableHousing,
			DataTopic:           "Affordability",
			DataFormat:          "KML Collection",
			DateUpdated:         "2024-01-28",
		},
		{
			ID:                  "hdc-010",
			Name:                "Eviction Filings",
			Description:         "Unlawful detainer filings by county.",
			Source:              "CA Open Data",
			Type:                "Community",
			CommunityActionArea: domain.AreaSafeStableHousing,
			DataTopic:           "Tenant Stability",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2023-12-12",
		},
		{
			ID:                  "hdc-011",
			Name:                "Housing Characteristics",
			Description:         "Survey estimates of unit age, size and occupancy.",
			Source:              "U.S. Household Pulse Survey",
			Type:                "Community",
			CommunityActionArea: domain.AreaDemographicData,
			DataTopic:           "Housing Stock",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2023-08-30",
		},
	}
}

// Catalog builds a catalog service over Datasets.
func Catalog(t testing.TB) *services.CatalogService {
	t.Helper()
	c, err := services.NewCatalogService(Datasets())
	require.NoError(t, err)
	return c
}

// Session returns fresh filter and view state that commit selections
// synchronously.
func Session() (*services.FilterState, *services.ViewState) {
	return services.NewFilterState(), services.NewViewState(services.WithTransitionDelay(0))
}

// History is an in-memory driving.SearchHistoryService, most recent first.
type History struct {
	mu      sync.Mutex
	entries []domain.SearchHistoryEntry
	Err     error
}

// Record prepends query.
func (h *History) Record(_ context.Context, query string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]domain.SearchHistoryEntry{{Query: query}}, h.entries...)
}

// Recent returns recorded entries or Err.
func (h *History) Recent(_ context.Context) ([]domain.SearchHistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Err != nil {
		return nil, h.Err
	}
	return append([]domain.SearchHistoryEntry(nil), h.entries...), nil
}

// Clear drops every entry.
func (h *History) Clear(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	return nil
}

// Queries returns recorded queries, most recent first.
func (h *History) Queries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Query
	}
	return out
}

// Collect runs cmd and returns the messages it produces, expanding batches.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Collect(c)...)
	}
	return out
}

// Key builds a key message from its string form, e.g. "enter" or "a".
func Key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
