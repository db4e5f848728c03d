package mcp

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/services"
)

func testDatasets() []domain.Dataset {
	return []domain.Dataset{
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
		{
			ID:                  "hdc-012",
			Name:                "Census Demographics",
			Description:         "Population by age, race and ethnicity.",
			Source:              "ACS and Census Data",
			Type:                "Community",
			CommunityActionArea: domain.AreaDemographicData,
			DataTopic:           "Population",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2023-10-05",
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
	}
}

// recordingHistory is a driving.SearchHistoryService that remembers queries.
type recordingHistory struct {
	mu      sync.Mutex
	queries []string
}

func (h *recordingHistory) Record(_ context.Context, query string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queries = append(h.queries, query)
}

func (h *recordingHistory) Recent(_ context.Context) ([]domain.SearchHistoryEntry, error) {
	return nil, nil
}

func (h *recordingHistory) Clear(_ context.Context) error {
	return nil
}

func newTestServer(t *testing.T) (*Server, *recordingHistory) {
	t.Helper()
	catalog, err := services.NewCatalogService(testDatasets())
	require.NoError(t, err)

	history := &recordingHistory{}
	server, err := NewServer(&Ports{Catalog: catalog, History: history})
	require.NoError(t, err)
	return server, history
}
