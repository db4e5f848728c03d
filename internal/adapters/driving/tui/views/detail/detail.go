// Package detail provides the single-dataset view for the TUI.
package detail

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
)

const labelWidth = 14

// field is a labelled dataset attribute shown in the detail view.
type field struct {
	label string
	attr  string
}

var fields = []field{
	{"Source", domain.AttrSource},
	{"Category", domain.AttrType},
	{"Data type", domain.AttrDataFormat},
	{"Topic", domain.AttrDataTopic},
	{"Created", domain.AttrDateCreated},
	{"Updated", domain.AttrDateUpdated},
	{"Page", domain.AttrPageURL},
}

// described lists attributes whose values have catalog descriptions.
var described = []string{
	domain.AttrCommunityActionArea,
	domain.AttrSource,
	domain.AttrType,
	domain.AttrDataFormat,
}

// View shows the selected dataset with attribute descriptions and
// shortcuts that filter results by its area or source.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	filters driving.FilterState
	view    driving.ViewState

	dataset       *domain.Dataset
	transitioning bool

	width  int
	height int
	ready  bool
}

// NewView creates a new detail view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	filters driving.FilterState,
	view driving.ViewState,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateDetail)

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: bar,
		filters:   filters,
		view:      view,
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Begin shows d while its selection commits.
func (v *View) Begin(d domain.Dataset) {
	v.SetSnapshot(domain.ViewSnapshot{Selected: &d, IsTransitioning: v.view.IsTransitioning()})
}

// SetSnapshot shows the committed selection of a view state snapshot.
// A snapshot without a selection keeps the previous dataset on screen
// until the view is left.
func (v *View) SetSnapshot(snap domain.ViewSnapshot) {
	v.transitioning = snap.IsTransitioning
	if snap.Selected != nil {
		d := *snap.Selected
		v.dataset = &d
	}
	if v.transitioning {
		v.statusbar.SetState(status.StateLoading)
	} else {
		v.statusbar.SetState(status.StateDetail)
	}
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		v.view.ClearSelectedDataset()
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(keyStr, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	}

	if v.dataset == nil || v.transitioning {
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.FilterArea):
		return v, v.filterBy(domain.AttrCommunityActionArea, v.dataset.CommunityActionArea)
	case keymap.Matches(keyStr, v.keymap.FilterSource):
		return v, v.filterBy(domain.AttrSource, v.dataset.Source)
	}
	return v, nil
}

// filterBy adds a filter for the dataset's attribute and returns to results.
func (v *View) filterBy(attr, value string) tea.Cmd {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v.filters.SetFilterByAttribute(attr, value)
	v.view.ClearSelectedDataset()
	return tea.Batch(
		func() tea.Msg { return messages.SearchRequested{} },
		func() tea.Msg { return messages.ViewChanged{View: messages.ViewResults} },
	)
}

// View renders the detail view.
func (v *View) View() string {
	if v.dataset == nil {
		if v.transitioning {
			return v.frame(v.styles.Muted.Render("Loading dataset..."))
		}
		return v.frame(v.styles.Muted.Render("No dataset selected"))
	}

	d := *v.dataset
	textWidth := v.width - 4
	if textWidth < 20 {
		textWidth = 20
	}

	sections := []string{v.styles.Title.Render(d.Name)}
	if d.CommunityActionArea != "" {
		sections = append(sections, v.styles.AreaBadge(d.CommunityActionArea).Render(d.CommunityActionArea))
	}
	if v.transitioning {
		sections = append(sections, v.styles.Warning.Render("Loading..."))
	}
	sections = append(sections, "")
	if d.Description != "" {
		sections = append(sections, v.styles.Normal.Width(textWidth).Render(d.Description), "")
	}

	for _, f := range fields {
		value, ok := d.Attribute(f.attr)
		if !ok {
			continue
		}
		label := v.styles.Label.Width(labelWidth).Render(f.label)
		sections = append(sections, label+v.styles.Normal.Render(value))
	}

	if about := v.renderAbout(d, textWidth); about != "" {
		sections = append(sections, "", v.styles.Subtitle.Render("About"), about)
	}

	return v.frame(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (v *View) renderAbout(d domain.Dataset, width int) string {
	var blocks []string
	for _, attr := range described {
		value, ok := d.Attribute(attr)
		if !ok {
			continue
		}
		info := domain.LookupAttribute(attr, value)
		name := v.styles.Normal.Bold(true).Render(info.Name)
		if info.Color != "" {
			name = v.styles.AreaAccent(value).Bold(true).Render(info.Name)
		}
		credit := info.Source
		if info.SourceURL != "" && info.SourceURL != "#" {
			credit += " (" + info.SourceURL + ")"
		}
		blocks = append(blocks,
			name+"\n"+
				v.styles.Normal.Width(width).Render(info.Description)+"\n"+
				v.styles.Muted.Render(credit))
	}
	return strings.Join(blocks, "\n\n")
}

func (v *View) frame(body string) string {
	gap := v.height - lipgloss.Height(body) - 1
	if gap < 1 {
		gap = 1
	}
	return body + strings.Repeat("\n", gap) + v.statusbar.View()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Dataset returns the dataset on screen.
func (v *View) Dataset() (domain.Dataset, bool) {
	if v.dataset == nil {
		return domain.Dataset{}, false
	}
	return *v.dataset, true
}

// Transitioning reports whether a selection is waiting to commit.
func (v *View) Transitioning() bool {
	return v.transitioning
}

// Ready returns whether the view has been sized.
func (v *View) Ready() bool {
	return v.ready
}
