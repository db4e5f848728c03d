package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/views/home"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/views/results"
	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	homeView    *home.View
	resultsView *results.View
	detailView  *detail.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// returnView is where the detail view goes back to.
	returnView messages.ViewType

	// helpReturn is where the help view goes back to.
	helpReturn messages.ViewType

	// revision is the newest filter revision searched for; older
	// completions are dropped.
	revision uint64

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        help.New(),
		homeView:    home.NewView(s, km, ports.Catalog, ports.Filters),
		resultsView: results.NewView(s, km, ports.Catalog, ports.Filters, ports.View),
		detailView:  detail.NewView(s, km, ports.Filters, ports.View),
		currentView: messages.ViewHome,
		returnView:  messages.ViewResults,
		helpReturn:  messages.ViewHome,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("hdcat - Healthcare Dataset Catalog"),
		a.homeView.Init(),
		a.loadHistory(),
		a.waitForCommit(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKeyMsg(msg)

	case messages.SearchRequested:
		return a, a.search(msg.Submitted)

	case messages.SearchCompleted:
		if msg.Revision < a.revision {
			logger.Debug("Dropping stale results for revision %d", msg.Revision)
			return a, nil
		}
		a.err = nil
		var cmd tea.Cmd
		a.resultsView, cmd = a.resultsView.Update(msg)
		return a, cmd

	case messages.DatasetChosen:
		if a.currentView != messages.ViewDetail {
			a.returnView = a.currentView
		}
		a.ports.View.SelectDataset(msg.Dataset)
		a.detailView.Begin(msg.Dataset)
		a.currentView = messages.ViewDetail
		a.pollView()
		return a, nil

	case messages.ViewCommitted:
		a.applySnapshot(msg.Snapshot)
		return a, a.waitForCommit()

	case messages.ViewChanged:
		return a, a.changeView(msg.View)

	case messages.HistoryLoaded:
		if msg.Err != nil {
			logger.Warn("Loading search history: %v", msg.Err)
			return a, nil
		}
		a.homeView.SetHistory(msg.Entries)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewHome:
		a.homeView, cmd = a.homeView.Update(msg)
	case messages.ViewResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
		a.pollView()
	case messages.ViewHelp:
		keyStr := msg.String()
		if keymap.Matches(keyStr, a.keymap.Back) || keymap.Matches(keyStr, a.keymap.Help) ||
			keymap.Matches(keyStr, a.keymap.Quit) {
			a.currentView = a.helpReturn
		}
	}
	return a, cmd
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewHome:
		a.homeView, cmd = a.homeView.Update(msg)
	case messages.ViewResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}
	return cmd
}

func (a *App) changeView(view messages.ViewType) tea.Cmd {
	switch view {
	case messages.ViewHome:
		a.homeView.Refresh()
		a.homeView.Reset()
		a.currentView = view
		return a.loadHistory()
	case messages.ViewResults:
		a.resultsView.Reset()
	case messages.ViewHelp:
		if a.currentView != messages.ViewHelp {
			a.helpReturn = a.currentView
		}
	case messages.ViewDetail:
		if _, ok := a.detailView.Dataset(); !ok {
			return nil
		}
	}
	a.currentView = view
	return nil
}

// applySnapshot follows a committed selection: a selected dataset opens the
// detail view and a cleared one returns to the view it was opened from.
func (a *App) applySnapshot(snap domain.ViewSnapshot) {
	if snap.Selected != nil {
		a.detailView.SetSnapshot(snap)
		if a.currentView != messages.ViewDetail {
			a.returnView = a.currentView
		}
		a.currentView = messages.ViewDetail
		return
	}

	if a.currentView != messages.ViewDetail {
		return
	}
	a.detailView.SetSnapshot(snap)
	if !snap.IsTransitioning {
		a.currentView = a.returnView
	}
}

// pollView reads view state back directly when no commit channel is wired.
func (a *App) pollView() {
	if a.ports.Commits == nil {
		a.applySnapshot(a.ports.View.Snapshot())
	}
}

func (a *App) waitForCommit() tea.Cmd {
	commits := a.ports.Commits
	if commits == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-commits
		if !ok {
			return nil
		}
		return messages.ViewCommitted{Snapshot: snap}
	}
}

func (a *App) loadHistory() tea.Cmd {
	history, ctx := a.ports.History, a.ctx
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := history.Recent(ctx)
		return messages.HistoryLoaded{Entries: entries, Err: err}
	}
}

// search snapshots filter and view state and runs the query in a command.
func (a *App) search(submitted bool) tea.Cmd {
	snap := a.ports.Filters.Snapshot()
	if snap.Revision > a.revision {
		a.revision = snap.Revision
	}
	order := a.ports.View.SortBy()
	catalog, history, ctx := a.ports.Catalog, a.ports.History, a.ctx

	return func() tea.Msg {
		if submitted && history != nil {
			history.Record(ctx, snap.Query)
		}
		return RunSearch(catalog, snap, order)
	}
}

// RunSearch builds the results message for a filter snapshot. Results are
// sorted by order and, without a query, grouped by community action area.
// Facet counts cover the query alone so every value stays selectable.
func RunSearch(catalog driving.CatalogService, snap domain.FilterSnapshot, order domain.SortOrder) messages.SearchCompleted {
	results := catalog.Sort(catalog.Search(snap.Query, snap.Filters), order)
	if strings.TrimSpace(snap.Query) == "" {
		results = groupResults(catalog, results)
	}

	base := catalog.Search(snap.Query, nil)
	datasets := make([]domain.Dataset, len(base))
	for i := range base {
		datasets[i] = base[i].Dataset
	}

	return messages.SearchCompleted{
		Query:       snap.Query,
		Results:     results,
		Suggestions: catalog.Suggestions(snap.Query),
		Facets:      catalog.FacetCounts(datasets),
		Revision:    snap.Revision,
	}
}

// groupResults reorders results into runs of the same area, keeping the
// sorted order inside each run.
func groupResults(catalog driving.CatalogService, results []domain.SearchResult) []domain.SearchResult {
	byID := make(map[string]domain.SearchResult, len(results))
	datasets := make([]domain.Dataset, len(results))
	for i, r := range results {
		byID[r.Dataset.ID] = r
		datasets[i] = r.Dataset
	}

	out := make([]domain.SearchResult, 0, len(results))
	for _, g := range catalog.GroupByArea(datasets) {
		for _, d := range g.Datasets {
			out = append(out, byID[d.ID])
		}
	}
	return out
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewResults:
		return a.resultsView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.homeView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Help"),
		"",
		a.help.FullHelpView(a.keymap.FullHelp()),
		"",
		a.styles.Help.Render("Home: tab cycles search, featured, categories and recent searches."),
		a.styles.Help.Render("Results: 1-9 apply a related category; f opens the filter panel."),
		"",
		a.styles.Muted.Render("[esc] back"),
	)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.homeView.SetDimensions(width, height)
	a.resultsView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}
