// Package home provides the landing view for the TUI.
package home

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
)

// Section identifies a focusable part of the home view.
type Section int

const (
	SectionSearch Section = iota
	SectionFeatured
	SectionCategories
	SectionRecent
)

const (
	maxRecent = 5
	title     = "Healthcare Dataset Catalog"
	tagline   = "Search public health and community datasets"
)

// Category is a community action area offered as a shortcut.
type Category struct {
	Name  string
	Count int
}

// View is the landing view: search box, featured datasets, popular
// categories and recent searches.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	statusbar *status.Bar

	catalog driving.CatalogService
	filters driving.FilterState

	featured   []domain.Dataset
	categories []Category
	recent     []domain.SearchHistoryEntry

	section  Section
	selected map[Section]int

	width  int
	height int
	ready  bool
}

// NewView creates a new home view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	filters driving.FilterState,
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
		input:     input.NewSearchInput(s),
		statusbar: status.NewBar(s, km),
		catalog:   catalog,
		filters:   filters,
		selected:  make(map[Section]int),
		width:     80,
		height:    24,
	}
	v.Refresh()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Refresh reloads featured datasets and category counts from the catalog.
func (v *View) Refresh() {
	if v.catalog == nil {
		return
	}
	v.featured = v.catalog.FeaturedDatasets()

	v.categories = v.categories[:0]
	for _, summary := range v.catalog.FacetCounts(v.catalog.Datasets()) {
		if summary.Category != domain.CategoryCommunityActionArea {
			continue
		}
		for _, c := range summary.Counts {
			if c.Count > 0 {
				v.categories = append(v.categories, Category{Name: c.Value, Count: c.Count})
			}
		}
	}
	v.statusbar.SetResultCount(v.catalog.Count())
	v.clampSelection()
}

// SetHistory replaces the recent searches shown.
func (v *View) SetHistory(entries []domain.SearchHistoryEntry) {
	if len(entries) > maxRecent {
		entries = entries[:maxRecent]
	}
	v.recent = entries
	v.clampSelection()
}

// Update handles messages for the home view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	if v.section == SectionSearch {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.NextSection) {
		v.focus(v.nextSection())
		return v, nil
	}

	if v.section == SectionSearch {
		switch msg.Type {
		case tea.KeyEnter:
			return v, v.submit()
		case tea.KeyEsc:
			if v.input.Value() != "" {
				v.input.Reset()
			}
			return v, nil
		default:
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(keyStr, v.keymap.Help):
		return v, changeView(messages.ViewHelp)
	case keymap.Matches(keyStr, v.keymap.FocusSearch), keymap.Matches(keyStr, v.keymap.Back):
		v.focus(SectionSearch)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Up):
		v.move(-1)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Down):
		v.move(1)
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Select):
		return v, v.activate()
	}
	return v, nil
}

// submit runs the typed query with no facet filters.
func (v *View) submit() tea.Cmd {
	v.filters.ClearFilters()
	v.filters.SetSearchQuery(strings.TrimSpace(v.input.Value()))
	return search(true)
}

// activate opens the highlighted item of the focused section.
func (v *View) activate() tea.Cmd {
	i := v.selected[v.section]

	switch v.section {
	case SectionFeatured:
		if i < len(v.featured) {
			d := v.featured[i]
			return func() tea.Msg { return messages.DatasetChosen{Dataset: d} }
		}
	case SectionCategories:
		if i < len(v.categories) {
			v.filters.SetSearchQuery("")
			v.filters.SetFilters(domain.FilterMap{
				domain.CategoryCommunityActionArea: {v.categories[i].Name: true},
			})
			return search(false)
		}
	case SectionRecent:
		if i < len(v.recent) {
			v.filters.ClearFilters()
			v.filters.SetSearchQuery(v.recent[i].Query)
			v.input.SetValue(v.recent[i].Query)
			return search(true)
		}
	case SectionSearch:
		return v.submit()
	}
	return nil
}

func search(submitted bool) tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return messages.SearchRequested{Submitted: submitted} },
		changeView(messages.ViewResults),
	)
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

func (v *View) focus(section Section) {
	v.section = section
	if section == SectionSearch {
		v.input.Focus()
	} else {
		v.input.Blur()
	}
}

// nextSection returns the following section that has items.
func (v *View) nextSection() Section {
	next := v.section
	for range 4 {
		next = (next + 1) % 4
		if next == SectionSearch || v.sectionLen(next) > 0 {
			return next
		}
	}
	return SectionSearch
}

func (v *View) sectionLen(s Section) int {
	switch s {
	case SectionFeatured:
		return len(v.featured)
	case SectionCategories:
		return len(v.categories)
	case SectionRecent:
		return len(v.recent)
	default:
		return 0
	}
}

func (v *View) move(delta int) {
	n := v.sectionLen(v.section)
	i := v.selected[v.section] + delta
	if i >= 0 && i < n {
		v.selected[v.section] = i
	}
}

func (v *View) clampSelection() {
	for s, i := range v.selected {
		if n := v.sectionLen(s); i >= n {
			v.selected[s] = max(n-1, 0)
		}
	}
	if v.section != SectionSearch && v.sectionLen(v.section) == 0 {
		v.focus(SectionSearch)
	}
}

// View renders the home view.
func (v *View) View() string {
	sections := []string{
		v.styles.Title.Render(title),
		v.styles.Muted.Render(tagline),
		"",
		v.input.View(),
		"",
		v.renderFeatured(),
		"",
		v.renderCategories(),
	}
	if len(v.recent) > 0 {
		sections = append(sections, "", v.renderRecent())
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	gap := v.height - lipgloss.Height(body) - 1
	if gap < 1 {
		gap = 1
	}
	return body + strings.Repeat("\n", gap) + v.statusbar.View()
}

func (v *View) renderFeatured() string {
	lines := []string{v.sectionTitle(SectionFeatured, "Featured datasets")}
	if len(v.featured) == 0 {
		return strings.Join(append(lines, v.styles.Muted.Render("  No datasets loaded")), "\n")
	}
	for i, d := range v.featured {
		badge := v.styles.AreaBadge(d.CommunityActionArea).Render(d.CommunityActionArea)
		lines = append(lines, v.itemLine(SectionFeatured, i, d.Name)+" "+badge)
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderCategories() string {
	lines := []string{v.sectionTitle(SectionCategories, "Popular categories")}
	for i, c := range v.categories {
		marker := v.styles.AreaAccent(c.Name).Render("●")
		lines = append(lines, v.itemLine(SectionCategories, i, fmt.Sprintf("%s %s (%d)", marker, c.Name, c.Count)))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderRecent() string {
	lines := []string{v.sectionTitle(SectionRecent, "Recent searches")}
	for i, e := range v.recent {
		lines = append(lines, v.itemLine(SectionRecent, i, e.Query))
	}
	return strings.Join(lines, "\n")
}

func (v *View) sectionTitle(s Section, text string) string {
	if v.section == s {
		return v.styles.Title.Render("▸ " + text)
	}
	return v.styles.Subtitle.Render("  " + text)
}

func (v *View) itemLine(s Section, index int, text string) string {
	if v.section == s && v.selected[s] == index {
		return v.styles.Selected.Render("  > " + text)
	}
	return v.styles.Normal.Render("    " + text)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view has been sized.
func (v *View) Ready() bool {
	return v.ready
}

// Section returns the focused section.
func (v *View) Section() Section {
	return v.section
}

// SelectedIndex returns the highlighted item within a section.
func (v *View) SelectedIndex(s Section) int {
	return v.selected[s]
}

// Featured returns the featured datasets shown.
func (v *View) Featured() []domain.Dataset {
	return v.featured
}

// Categories returns the category shortcuts shown.
func (v *View) Categories() []Category {
	return v.categories
}

// Query returns the text in the search box.
func (v *View) Query() string {
	return v.input.Value()
}

// Reset focuses and clears the search box.
func (v *View) Reset() {
	v.input.Reset()
	v.focus(SectionSearch)
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}
