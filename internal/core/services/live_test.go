package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

func TestLiveCatalog_Delegates(t *testing.T) {
	live, err := NewLiveCatalog(sampleDatasets())
	require.NoError(t, err)
	svc := newSampleCatalog(t)

	assert.Equal(t, uint64(1), live.Generation())
	assert.Equal(t, svc.Count(), live.Count())
	assert.Equal(t, svc.Search("housing", nil), live.Search("housing", nil))
	assert.Equal(t, svc.FeaturedDatasets(), live.FeaturedDatasets())
	assert.Equal(t, svc.SuggestedCategories("housing"), live.SuggestedCategories("housing"))
	assert.Equal(t, svc.Suggestions("housing"), live.Suggestions("housing"))
	assert.Equal(t, svc.FilteredDatasets(nil), live.FilteredDatasets(nil))
	assert.Equal(t, svc.Datasets(), live.Datasets())
	assert.Equal(t, svc.GroupByArea(svc.Datasets()), live.GroupByArea(live.Datasets()))
	assert.Equal(t, svc.FacetCounts(svc.Datasets()), live.FacetCounts(live.Datasets()))

	info, matches := live.AttributeDetail(domain.AttrSource, "PolicyMap")
	assert.Equal(t, "PolicyMap", info.Name)
	assert.Len(t, matches, 1)
}

func TestLiveCatalog_ReloadRebuildsLookup(t *testing.T) {
	live, err := NewLiveCatalog(sampleDatasets())
	require.NoError(t, err)

	require.NoError(t, live.Reload([]domain.Dataset{{ID: "new-1", Name: "Fresh"}}))

	_, ok := live.DatasetByID("hdc-001")
	assert.False(t, ok)
	got, ok := live.DatasetByID("new-1")
	require.True(t, ok)
	assert.Equal(t, "Fresh", got.Name)
	assert.Equal(t, uint64(2), live.Generation())
}

func TestLiveCatalog_ReloadErrorKeepsPrevious(t *testing.T) {
	live, err := NewLiveCatalog(sampleDatasets())
	require.NoError(t, err)

	err = live.Reload([]domain.Dataset{{ID: "dup"}, {ID: "dup"}})

	assert.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.Equal(t, 13, live.Count())
	assert.Equal(t, uint64(1), live.Generation())
}

func TestNewLiveCatalog_Error(t *testing.T) {
	_, err := NewLiveCatalog([]domain.Dataset{{ID: ""}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
