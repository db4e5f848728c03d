// Package facets provides the filter panel component for the TUI.
package facets

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// Item is one row of the panel: a category header or one of its values.
type Item struct {
	Category domain.FacetCategory
	Value    string
	Count    int
}

// IsHeader reports whether the item is a category header.
func (i Item) IsHeader() bool {
	return i.Value == ""
}

// Panel lists facet categories and their values with counts and selection
// marks. It only tracks the cursor; callers apply toggles to filter state.
type Panel struct {
	styles  *styles.Styles
	items   []Item
	active  domain.FilterMap
	tooltip map[domain.FacetCategory]string
	cursor  int
	width   int
	height  int
}

// NewPanel creates an empty filter panel.
func NewPanel(s *styles.Styles) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Panel{
		styles:  s,
		active:  domain.FilterMap{},
		tooltip: make(map[domain.FacetCategory]string),
		width:   40,
		height:  20,
	}
}

// SetFacets replaces the rows. Selected values missing from summaries are
// kept with a zero count so they can still be deselected.
func (p *Panel) SetFacets(summaries []domain.FacetSummary, active domain.FilterMap) {
	current := p.Current()

	p.active = active.Clone()
	p.items = p.items[:0]
	for _, s := range summaries {
		p.tooltip[s.Category] = s.Tooltip
		p.items = append(p.items, Item{Category: s.Category})

		seen := make(map[string]bool, len(s.Counts))
		for _, c := range s.Counts {
			seen[c.Value] = true
			p.items = append(p.items, Item{Category: s.Category, Value: c.Value, Count: c.Count})
		}
		for _, v := range active.ActiveValues(s.Category) {
			if !seen[v] {
				p.items = append(p.items, Item{Category: s.Category, Value: v})
			}
		}
	}

	p.cursor = 0
	for i, it := range p.items {
		if it.Category == current.Category && it.Value == current.Value {
			p.cursor = i
			break
		}
	}
}

// Init initialises the panel.
func (p *Panel) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement.
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case "home", "g":
		p.cursor = 0
	case "end", "G":
		if len(p.items) > 0 {
			p.cursor = len(p.items) - 1
		}
	}
	return p, nil
}

// View renders the panel.
func (p *Panel) View() string {
	if len(p.items) == 0 {
		return p.styles.Muted.Render("No filters available")
	}

	start, end := p.window()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, p.renderItem(i, p.items[i]))
	}
	return strings.Join(lines, "\n")
}

func (p *Panel) renderItem(index int, it Item) string {
	selected := index == p.cursor

	if it.IsHeader() {
		label := fmt.Sprintf("%s (%d)", it.Category, len(p.active.ActiveValues(it.Category)))
		if selected {
			return p.styles.Selected.Render(p.fit(label))
		}
		return p.styles.Subtitle.Render(p.fit(label))
	}

	box := "[ ]"
	if p.active.IsActive(it.Category, it.Value) {
		box = "[x]"
	}
	count := fmt.Sprintf("%d", it.Count)
	nameWidth := p.width - len(box) - len(count) - 4
	label := fmt.Sprintf("  %s %s %s", box, runewidth.FillRight(truncate(it.Value, nameWidth), nameWidth), count)

	switch {
	case selected:
		return p.styles.Selected.Render(label)
	case it.Count == 0 && !p.active.IsActive(it.Category, it.Value):
		return p.styles.Muted.Render(label)
	default:
		return p.styles.Normal.Render(label)
	}
}

func (p *Panel) fit(s string) string {
	return runewidth.FillRight(truncate(s, p.width), p.width)
}

func (p *Panel) window() (int, int) {
	visible := p.height
	if visible < 1 {
		visible = 1
	}
	start := 0
	if p.cursor >= visible {
		start = p.cursor - visible + 1
	}
	end := start + visible
	if end > len(p.items) {
		end = len(p.items)
	}
	return start, end
}

// Current returns the row under the cursor. The zero Item means the panel is empty.
func (p *Panel) Current() Item {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return Item{}
	}
	return p.items[p.cursor]
}

// Options returns the values listed under category.
func (p *Panel) Options(category domain.FacetCategory) []string {
	var out []string
	for _, it := range p.items {
		if it.Category == category && !it.IsHeader() {
			out = append(out, it.Value)
		}
	}
	return out
}

// AllSelected reports whether every listed value of category is selected.
func (p *Panel) AllSelected(category domain.FacetCategory) bool {
	options := p.Options(category)
	if len(options) == 0 {
		return false
	}
	for _, v := range options {
		if !p.active.IsActive(category, v) {
			return false
		}
	}
	return true
}

// Tooltip returns the description shown for category.
func (p *Panel) Tooltip(category domain.FacetCategory) string {
	return p.tooltip[category]
}

// Items returns the rows.
func (p *Panel) Items() []Item {
	return p.items
}

// Cursor returns the cursor position.
func (p *Panel) Cursor() int {
	return p.cursor
}

// SetDimensions sets the component dimensions.
func (p *Panel) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
