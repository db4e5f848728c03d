package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/tuitest"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/views/home"
	"github.com/custodia-labs/hdcat/internal/core/domain"
)

func newTestApp(t *testing.T) (*App, *Ports, *tuitest.History) {
	t.Helper()
	ports := validPorts(t)
	history := &tuitest.History{}
	ports.History = history

	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app, ports, history
}

// drive feeds msg to the app, then every app message its commands produce.
func drive(app *App, msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]

		_, cmd := app.Update(m)
		for _, out := range tuitest.Collect(cmd) {
			switch out.(type) {
			case messages.SearchRequested, messages.SearchCompleted, messages.ViewChanged,
				messages.DatasetChosen, messages.HistoryLoaded, messages.ErrorOccurred:
				queue = append(queue, out)
			}
		}
	}
}

func searchFromHome(app *App, query string) {
	app.Update(tuitest.Key(query))
	drive(app, tuitest.Key("enter"))
}

func countFor(summaries []domain.FacetSummary, category domain.FacetCategory, value string) int {
	for _, s := range summaries {
		if s.Category != category {
			continue
		}
		for _, c := range s.Counts {
			if c.Value == value {
				return c.Count
			}
		}
	}
	return -1
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(validPorts(t))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewHome, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := validPorts(t)
	ports.Filters = nil

	app, err := NewApp(ports)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingFilterState)
}

func TestApp_Init(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.NotNil(t, app.Init())
}

func TestApp_ViewBeforeReady(t *testing.T) {
	app, err := NewApp(validPorts(t))
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(validPorts(t))
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Featured")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, cmd := app.Update(tuitest.Key("ctrl+c"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_SearchFromHome(t *testing.T) {
	app, ports, history := newTestApp(t)

	searchFromHome(app, "housing")

	assert.Equal(t, messages.ViewResults, app.CurrentView())
	assert.Len(t, app.resultsView.Results(), 3)
	assert.Equal(t, "housing", ports.Filters.SearchQuery())
	assert.Equal(t, []string{"housing"}, history.Queries())
	assert.Contains(t, app.View(), "Housing Cost Burden")
}

func TestApp_CategoryFromHomeIsNotRecorded(t *testing.T) {
	app, ports, history := newTestApp(t)
	drive(app, tuitest.Key("tab"))
	drive(app, tuitest.Key("tab"))
	require.Equal(t, home.SectionCategories, app.homeView.Section())

	drive(app, tuitest.Key("enter"))

	assert.Equal(t, messages.ViewResults, app.CurrentView())
	assert.Len(t, ports.Filters.ActiveFilterList(), 1)
	assert.Empty(t, history.Queries())
}

func TestApp_StaleResultsDropped(t *testing.T) {
	app, ports, _ := newTestApp(t)
	app.currentView = messages.ViewResults

	ports.Filters.SetSearchQuery("housing")
	cmd := app.search(false)

	app.Update(messages.SearchCompleted{Revision: 0, Results: []domain.SearchResult{{}}})
	assert.Empty(t, app.resultsView.Results())

	app.Update(cmd())
	assert.Len(t, app.resultsView.Results(), 3)
}

func TestApp_OpenDetailAndBack(t *testing.T) {
	app, ports, _ := newTestApp(t)
	searchFromHome(app, "housing")
	chosen := tuitest.Datasets()[3]

	drive(app, messages.DatasetChosen{Dataset: chosen})

	assert.Equal(t, messages.ViewDetail, app.CurrentView())
	selected, ok := ports.View.SelectedDataset()
	require.True(t, ok)
	assert.Equal(t, chosen.ID, selected.ID)
	assert.Contains(t, app.View(), chosen.Name)

	drive(app, tuitest.Key("esc"))

	assert.Equal(t, messages.ViewResults, app.CurrentView())
	_, ok = ports.View.SelectedDataset()
	assert.False(t, ok)
}

func TestApp_DetailFromHomeReturnsHome(t *testing.T) {
	app, _, _ := newTestApp(t)

	drive(app, messages.DatasetChosen{Dataset: tuitest.Datasets()[0]})
	drive(app, tuitest.Key("esc"))

	assert.Equal(t, messages.ViewHome, app.CurrentView())
}

func TestApp_DetailFilterByArea(t *testing.T) {
	app, ports, _ := newTestApp(t)
	searchFromHome(app, "housing")
	drive(app, messages.DatasetChosen{Dataset: tuitest.Datasets()[3]})

	drive(app, tuitest.Key("a"))

	assert.Equal(t, messages.ViewResults, app.CurrentView())
	assert.Equal(t, []domain.ActiveFilter{
		{Category: domain.CategoryCommunityActionArea, Value: domain.AreaSafeStableHousing},
	}, ports.Filters.ActiveFilterList())
	assert.Len(t, app.resultsView.Results(), 2)
}

func TestApp_ViewCommittedWithChannel(t *testing.T) {
	ports := validPorts(t)
	commits := make(chan domain.ViewSnapshot, 1)
	ports.Commits = commits
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 40)

	d := tuitest.Datasets()[1]
	app.Update(messages.ViewCommitted{Snapshot: domain.ViewSnapshot{Selected: &d}})
	assert.Equal(t, messages.ViewDetail, app.CurrentView())
	assert.Equal(t, messages.ViewHome, app.returnView)

	_, cmd := app.Update(messages.ViewCommitted{Snapshot: domain.ViewSnapshot{}})
	assert.Equal(t, messages.ViewHome, app.CurrentView())
	require.NotNil(t, cmd, "commit wait is re-armed")

	commits <- domain.ViewSnapshot{Selected: &d}
	msg := cmd()
	assert.Equal(t, messages.ViewCommitted{Snapshot: domain.ViewSnapshot{Selected: &d}}, msg)
}

func TestApp_ClearedSnapshotOutsideDetailIsIgnored(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.currentView = messages.ViewResults

	app.Update(messages.ViewCommitted{Snapshot: domain.ViewSnapshot{}})

	assert.Equal(t, messages.ViewResults, app.CurrentView())
}

func TestApp_HelpView(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.currentView = messages.ViewResults

	drive(app, messages.ViewChanged{View: messages.ViewHelp})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Help")

	drive(app, tuitest.Key("esc"))
	assert.Equal(t, messages.ViewResults, app.CurrentView())
}

func TestApp_HistoryLoaded(t *testing.T) {
	app, _, _ := newTestApp(t)

	app.Update(messages.HistoryLoaded{Entries: []domain.SearchHistoryEntry{{Query: "asthma"}}})

	assert.Contains(t, app.View(), "asthma")
}

func TestApp_HistoryLoadErrorIgnored(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, cmd := app.Update(messages.HistoryLoaded{Err: errors.New("disk")})

	assert.Nil(t, cmd)
	assert.NoError(t, app.Err())
}

func TestApp_ReturningHomeReloadsHistory(t *testing.T) {
	app, _, _ := newTestApp(t)
	searchFromHome(app, "housing")

	drive(app, messages.ViewChanged{View: messages.ViewHome})

	assert.Equal(t, messages.ViewHome, app.CurrentView())
	assert.Contains(t, app.View(), "housing")
}

func TestApp_ErrorOccurred(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.currentView = messages.ViewResults
	boom := errors.New("boom")

	app.Update(messages.ErrorOccurred{Err: boom})

	assert.ErrorIs(t, app.Err(), boom)
}

func TestRunSearch_GroupsBlankQuery(t *testing.T) {
	catalog := tuitest.Catalog(t)

	msg := RunSearch(catalog, domain.FilterSnapshot{}, domain.SortByName)

	require.Len(t, msg.Results, 6)
	seen := make(map[string]bool)
	prev := ""
	for _, r := range msg.Results {
		area := r.Dataset.CommunityActionArea
		if area == prev {
			continue
		}
		assert.False(t, seen[area], "area %q appears in two runs", area)
		seen[area] = true
		prev = area
	}
	assert.Equal(t, 2, countFor(msg.Facets, domain.CategoryCommunityActionArea, domain.AreaSafeStableHousing))
}

func TestRunSearch_FacetsIgnoreFilters(t *testing.T) {
	catalog := tuitest.Catalog(t)
	snap := domain.FilterSnapshot{
		Query: "housing",
		Filters: domain.FilterMap{
			domain.CategoryCommunityActionArea: {domain.AreaSafeStableHousing: true},
		},
		Revision: 4,
	}

	msg := RunSearch(catalog, snap, domain.SortByRelevance)

	assert.Len(t, msg.Results, 2)
	assert.Equal(t, uint64(4), msg.Revision)
	assert.Equal(t, "housing", msg.Query)
	assert.Equal(t, 1, countFor(msg.Facets, domain.CategoryCommunityActionArea, domain.AreaDemographicData))
	assert.NotEmpty(t, msg.Suggestions)
}
