// Package results provides the search results view for the TUI.
package results

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/components/facets"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
)

// Focus identifies which part of the view receives keys.
type Focus int

const (
	FocusList Focus = iota
	FocusInput
	FocusPanel
)

const (
	panelWidth = 44

	// Lines used by everything except the result list.
	chromeHeight = 10
)

// View shows search results with the active filter bar, related
// categories and an optional filter panel.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	panel     *facets.Panel
	statusbar *status.Bar

	catalog driving.CatalogService
	filters driving.FilterState
	view    driving.ViewState

	query       string
	suggestions []string
	focus       Focus

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new results view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	filters driving.FilterState,
	view driving.ViewState,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s, input.WithCompact()),
		list:      list.NewResultList(s),
		panel:     facets.NewPanel(s),
		statusbar: status.NewBar(s, km),
		catalog:   catalog,
		filters:   filters,
		view:      view,
		width:     80,
		height:    24,
	}
	v.input.Blur()
	v.list.SetMode(view.ViewMode())
	v.statusbar.SetState(status.StateResults)
	v.updateInfo()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil
	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	if v.focus == FocusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.focus {
	case FocusInput:
		return v.handleInputKey(msg)
	case FocusPanel:
		return v.handlePanelKey(msg)
	default:
		return v.handleListKey(msg)
	}
}

func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		v.filters.SetSearchQuery(v.input.Query())
		v.setFocus(FocusList)
		return v, search(true)
	case tea.KeyEsc:
		v.input.SetValue(v.filters.SearchQuery())
		v.setFocus(FocusList)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(keyStr, v.keymap.Help):
		return v, changeView(messages.ViewHelp)
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, changeView(messages.ViewHome)
	case keymap.Matches(keyStr, v.keymap.Select):
		if r := v.list.SelectedResult(); r != nil {
			d := r.Dataset
			return v, func() tea.Msg { return messages.DatasetChosen{Dataset: d} }
		}
		return v, nil
	case keymap.Matches(keyStr, v.keymap.FocusSearch):
		v.setFocus(FocusInput)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Filters):
		v.setFocus(FocusPanel)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.ClearFilters):
		v.filters.ClearFilters()
		return v, search(false)
	case keymap.Matches(keyStr, v.keymap.ViewMode):
		return v, v.cycleViewMode()
	case keymap.Matches(keyStr, v.keymap.Sort):
		if err := v.view.SetSortBy(v.view.SortBy().Next()); err != nil {
			return v, errorCmd(err)
		}
		v.updateInfo()
		return v, search(false)
	}

	if n, err := strconv.Atoi(keyStr); err == nil && n >= 1 && n <= len(v.suggestions) {
		v.filters.SetFilterByAttribute(domain.AttrCommunityActionArea, v.suggestions[n-1])
		return v, search(false)
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

func (v *View) handlePanelKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Filters), keymap.Matches(keyStr, v.keymap.Back):
		v.setFocus(FocusList)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Toggle):
		item := v.panel.Current()
		if item.Category == "" {
			return v, nil
		}
		if item.IsHeader() {
			v.toggleCategory(item.Category)
		} else {
			v.filters.ToggleFilter(item.Category, item.Value)
		}
		return v, search(false)
	case keymap.Matches(keyStr, v.keymap.ToggleAll):
		item := v.panel.Current()
		if item.Category == "" {
			return v, nil
		}
		v.toggleCategory(item.Category)
		return v, search(false)
	case keymap.Matches(keyStr, v.keymap.ClearFilters):
		v.filters.ClearFilters()
		return v, search(false)
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	}

	v.panel, _ = v.panel.Update(msg)
	return v, nil
}

// toggleCategory selects every listed value, or clears them all when
// they are already selected.
func (v *View) toggleCategory(category domain.FacetCategory) {
	v.filters.SetCategoryAll(category, v.panel.Options(category), !v.panel.AllSelected(category))
}

func (v *View) cycleViewMode() tea.Cmd {
	mode := v.view.ViewMode().Next()
	if err := v.view.SetViewMode(mode); err != nil {
		return errorCmd(err)
	}
	v.list.SetMode(mode)
	v.updateInfo()
	return nil
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	v.err = nil
	v.query = msg.Query
	v.suggestions = msg.Suggestions
	if len(v.suggestions) > 9 {
		v.suggestions = v.suggestions[:9]
	}

	v.list.SetResults(msg.Results)
	v.list.SetGrouped(strings.TrimSpace(msg.Query) == "")
	v.list.SetMode(v.view.ViewMode())
	v.panel.SetFacets(msg.Facets, v.filters.ActiveFilters())

	if v.focus != FocusInput {
		v.input.SetValue(msg.Query)
	}

	total := len(msg.Results)
	if v.catalog != nil {
		total = v.catalog.Count()
	}
	if v.focus == FocusPanel {
		v.statusbar.SetState(status.StateFilters)
	} else {
		v.statusbar.SetState(status.StateResults)
	}
	v.statusbar.SetMessage(list.Summary(len(msg.Results), total))
	v.updateInfo()
}

func (v *View) setFocus(f Focus) {
	v.focus = f
	if f == FocusInput {
		v.input.Focus()
	} else {
		v.input.Blur()
	}

	if f == FocusPanel {
		v.statusbar.SetState(status.StateFilters)
	} else if v.statusbar.State() == status.StateFilters {
		v.statusbar.SetState(status.StateResults)
	}
	v.layout()
}

func (v *View) updateInfo() {
	v.statusbar.SetInfo(fmt.Sprintf("%s · %s", v.view.ViewMode(), v.view.SortBy().Description()))
}

func search(submitted bool) tea.Cmd {
	return func() tea.Msg { return messages.SearchRequested{Submitted: submitted} }
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
}

// View renders the results view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.input.View(),
		v.renderFilterBar(),
	}
	if related := v.renderRelated(); related != "" {
		sections = append(sections, related)
	}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	}
	sections = append(sections, "")

	body := v.list.View()
	if v.focus == FocusPanel {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", v.renderPanel())
	}
	sections = append(sections, body)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	gap := v.height - lipgloss.Height(content) - 1
	if gap < 1 {
		gap = 1
	}
	return content + strings.Repeat("\n", gap) + v.statusbar.View()
}

// renderFilterBar shows the search tag followed by one tag per selected value.
func (v *View) renderFilterBar() string {
	active := v.filters.ActiveFilterList()
	if v.query == "" && len(active) == 0 {
		return v.styles.Muted.Render("No active filters")
	}

	tags := make([]string, 0, len(active)+1)
	if v.query != "" {
		tags = append(tags, v.styles.Chip.Render(fmt.Sprintf("Search: %q", v.query)))
	}
	for _, f := range active {
		tags = append(tags, v.styles.Chip.Render(f.String()))
	}
	return strings.Join(tags, " ")
}

func (v *View) renderRelated() string {
	if len(v.suggestions) == 0 {
		return ""
	}
	chips := make([]string, len(v.suggestions))
	for i, s := range v.suggestions {
		chips[i] = v.styles.AreaAccent(s).Render(fmt.Sprintf("[%d] %s", i+1, s))
	}
	return v.styles.Muted.Render("Related: ") + strings.Join(chips, "  ")
}

func (v *View) renderPanel() string {
	header := v.styles.Subtitle.Render("Filters")
	if tip := v.panel.Tooltip(v.panel.Current().Category); tip != "" {
		header += "\n" + v.styles.Muted.Render(tip)
	}
	return v.styles.Border.Padding(0, 1).Render(header + "\n\n" + v.panel.View())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.layout()
}

// layout shares the width between the list and the open panel.
func (v *View) layout() {
	listWidth := v.width
	bodyHeight := v.height - chromeHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	if v.focus == FocusPanel {
		listWidth = v.width - panelWidth - 2
		v.panel.SetDimensions(panelWidth-4, bodyHeight-4)
	}
	v.list.SetDimensions(listWidth, bodyHeight)
}

// Focus returns the part of the view receiving keys.
func (v *View) Focus() Focus {
	return v.focus
}

// Results returns the displayed results.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// SelectedResult returns the highlighted result.
func (v *View) SelectedResult() *domain.SearchResult {
	return v.list.SelectedResult()
}

// Suggestions returns the related categories shown.
func (v *View) Suggestions() []string {
	return v.suggestions
}

// Mode returns the current layout.
func (v *View) Mode() domain.ViewMode {
	return v.list.Mode()
}

// Panel returns the filter panel.
func (v *View) Panel() *facets.Panel {
	return v.panel
}

// Err returns the last error shown.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view has been sized.
func (v *View) Ready() bool {
	return v.ready
}

// Reset returns focus to the result list.
func (v *View) Reset() {
	v.setFocus(FocusList)
	v.list.SetMode(v.view.ViewMode())
	v.updateInfo()
}
