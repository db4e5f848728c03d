package facets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

func summaries() []domain.FacetSummary {
	return []domain.FacetSummary{
		{
			Category: domain.CategoryDataFormat,
			Tooltip:  "Filter by data format type",
			Counts: []domain.FacetCount{
				{Value: "KML Collection", Count: 2},
				{Value: "CSV Collection", Count: 0},
			},
		},
		{
			Category: domain.CategoryDataTopic,
			Tooltip:  "Filter by data topic",
			Counts: []domain.FacetCount{
				{Value: "Housing", Count: 1},
			},
		},
	}
}

func down(p *Panel, n int) {
	for i := 0; i < n; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
}

func TestPanel_Empty(t *testing.T) {
	p := NewPanel(nil)

	assert.Equal(t, Item{}, p.Current())
	assert.Contains(t, p.View(), "No filters available")
	assert.Nil(t, p.Init())
}

func TestPanel_SetFacets(t *testing.T) {
	p := NewPanel(nil)
	p.SetFacets(summaries(), domain.FilterMap{})

	items := p.Items()
	require.Len(t, items, 5)
	assert.True(t, items[0].IsHeader())
	assert.Equal(t, domain.CategoryDataFormat, items[0].Category)
	assert.Equal(t, Item{Category: domain.CategoryDataFormat, Value: "KML Collection", Count: 2}, items[1])
	assert.True(t, items[3].IsHeader())
	assert.Equal(t, "Filter by data topic", p.Tooltip(domain.CategoryDataTopic))
}

func TestPanel_KeepsSelectedValuesMissingFromCounts(t *testing.T) {
	p := NewPanel(nil)
	active := domain.FilterMap{domain.CategoryDataTopic: {"Employment": true}}

	p.SetFacets(summaries(), active)

	assert.Equal(t, []string{"Housing", "Employment"}, p.Options(domain.CategoryDataTopic))
}

func TestPanel_Navigation(t *testing.T) {
	p := NewPanel(nil)
	p.SetFacets(summaries(), domain.FilterMap{})

	down(p, 2)
	assert.Equal(t, "CSV Collection", p.Current().Value)

	down(p, 10)
	assert.Equal(t, 4, p.Cursor())

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, p.Cursor())

	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, p.Cursor())
}

func TestPanel_SetFacetsKeepsCursorOnSameItem(t *testing.T) {
	p := NewPanel(nil)
	p.SetFacets(summaries(), domain.FilterMap{})
	down(p, 4)
	require.Equal(t, "Housing", p.Current().Value)

	trimmed := summaries()[1:]
	p.SetFacets(trimmed, domain.FilterMap{})

	assert.Equal(t, "Housing", p.Current().Value)
}

func TestPanel_AllSelected(t *testing.T) {
	p := NewPanel(nil)
	p.SetFacets(summaries(), domain.FilterMap{
		domain.CategoryDataFormat: {"KML Collection": true, "CSV Collection": true},
		domain.CategoryDataTopic:  {"Housing": false},
	})

	assert.True(t, p.AllSelected(domain.CategoryDataFormat))
	assert.False(t, p.AllSelected(domain.CategoryDataTopic))
	assert.False(t, p.AllSelected(domain.CategorySource))
}

func TestPanel_View(t *testing.T) {
	p := NewPanel(nil)
	p.SetDimensions(50, 20)
	p.SetFacets(summaries(), domain.FilterMap{domain.CategoryDataFormat: {"KML Collection": true}})

	view := p.View()

	assert.Contains(t, view, "Data Type (1)")
	assert.Contains(t, view, "[x] KML Collection")
	assert.Contains(t, view, "[ ] CSV Collection")
	assert.Contains(t, view, "Data Topic (0)")
}
