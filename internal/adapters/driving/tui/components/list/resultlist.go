// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hdcat/internal/core/domain"
)

const (
	// CardWidth is the outer width of a grid card, borders included.
	CardWidth = 36

	// MaxColumns caps the number of grid columns.
	MaxColumns = 3

	cardHeight   = 6
	detailHeight = 4
	ellipsis     = "…"
)

// ResultList displays search results in grid, list or detail layout.
type ResultList struct {
	results  []domain.SearchResult
	mode     domain.ViewMode
	grouped  bool
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		mode:   domain.ViewModeGrid,
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
// In grid layout up and down move by a whole row.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	step := 1
	if r.mode == domain.ViewModeGrid {
		step = r.Columns()
	}

	switch keyMsg.String() {
	case "up", "k":
		r.move(-step)
	case "down", "j":
		r.move(step)
	case "left", "h":
		if r.mode == domain.ViewModeGrid {
			r.move(-1)
		}
	case "right", "l":
		if r.mode == domain.ViewModeGrid {
			r.move(1)
		}
	case "home", "g":
		r.selected = 0
	case "end", "G":
		if len(r.results) > 0 {
			r.selected = len(r.results) - 1
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No datasets match your search and filters.")
	}

	switch r.mode {
	case domain.ViewModeList:
		return r.renderRows(1, r.renderListRow)
	case domain.ViewModeDetail:
		return r.renderRows(detailHeight, r.renderDetailRow)
	default:
		return r.renderGrid()
	}
}

// renderRows renders one entry per row, inserting area headers when grouped.
func (r *ResultList) renderRows(rowHeight int, render func(int, domain.Dataset) string) string {
	start, end := r.window(r.selected, len(r.results), rowHeight)

	lines := make([]string, 0, end-start)
	prevArea := ""
	for i := start; i < end; i++ {
		d := r.results[i].Dataset
		if r.grouped && (i == start || areaLabel(d) != prevArea) {
			lines = append(lines, r.renderGroupHeader(areaLabel(d)))
		}
		prevArea = areaLabel(d)
		lines = append(lines, render(i, d))
	}
	return strings.Join(lines, "\n")
}

func (r *ResultList) renderGroupHeader(area string) string {
	return r.styles.AreaAccent(area).Bold(true).Render("▍" + area)
}

func (r *ResultList) renderListRow(index int, d domain.Dataset) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	dateWidth := 12
	nameWidth := r.width - dateWidth - 6
	if nameWidth < 16 {
		nameWidth = 16
	}

	name := runewidth.FillRight(truncate(displayName(d), nameWidth), nameWidth)
	marker := r.styles.AreaAccent(d.CommunityActionArea).Render("●")
	date := r.styles.Muted.Render(d.DateUpdated)

	if index == r.selected {
		return r.styles.Selected.Render(indicator+name) + " " + marker + " " + date
	}
	return r.styles.Normal.Render(indicator+name) + " " + marker + " " + date
}

func (r *ResultList) renderDetailRow(index int, d domain.Dataset) string {
	indicator := "  "
	title := r.styles.Title
	if index == r.selected {
		indicator = "> "
		title = r.styles.Selected
	}

	inner := r.width - 4
	if inner < 20 {
		inner = 20
	}

	meta := joinNonEmpty(" · ", d.Source, d.Type, d.DataFormat)
	if d.DateUpdated != "" {
		meta = joinNonEmpty(" · ", meta, "updated "+d.DateUpdated)
	}

	return strings.Join([]string{
		title.Render(indicator + truncate(displayName(d), inner)),
		"    " + r.styles.AreaBadge(d.CommunityActionArea).Render(truncate(areaLabel(d), inner)),
		"    " + r.styles.Normal.Render(truncate(d.Description, inner)),
		"    " + r.styles.Muted.Render(truncate(meta, inner)),
	}, "\n")
}

// renderGrid renders cards in rows of Columns.
func (r *ResultList) renderGrid() string {
	cols := r.Columns()
	rows := (len(r.results) + cols - 1) / cols
	start, end := r.window(r.selected/cols, rows, cardHeight)

	lines := make([]string, 0, end-start)
	for row := start; row < end; row++ {
		cards := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(r.results) {
				break
			}
			cards = append(cards, r.renderCard(i, r.results[i].Dataset))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(lines, "\n")
}

func (r *ResultList) renderCard(index int, d domain.Dataset) string {
	inner := CardWidth - 4

	card := r.styles.Card.Width(CardWidth - 2)
	title := r.styles.Title
	if index == r.selected {
		card = card.BorderForeground(r.styles.Theme().Primary)
		title = r.styles.Selected
	}

	body := strings.Join([]string{
		title.Render(truncate(displayName(d), inner)),
		r.styles.AreaBadge(d.CommunityActionArea).Render(truncate(areaLabel(d), inner-2)),
		r.styles.Normal.Render(truncate(d.Description, inner)),
		r.styles.Muted.Render(truncate(joinNonEmpty(" · ", d.Source, d.DateUpdated), inner)),
	}, "\n")
	return card.Render(body)
}

// window returns the visible range of rows around the selected row.
func (r *ResultList) window(selectedRow, rows, rowHeight int) (int, int) {
	visible := r.height / rowHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if selectedRow >= visible {
		start = selectedRow - visible + 1
	}
	end := start + visible
	if end > rows {
		end = rows
	}
	return start, end
}

func (r *ResultList) move(delta int) {
	next := r.selected + delta
	if next < 0 || next >= len(r.results) {
		return
	}
	r.selected = next
}

// Columns returns the grid column count for the current width.
func (r *ResultList) Columns() int {
	cols := r.width / CardWidth
	if cols < 1 {
		return 1
	}
	if cols > MaxColumns {
		return MaxColumns
	}
	return cols
}

// SetResults updates the result list and resets the selection.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// SetMode sets the layout.
func (r *ResultList) SetMode(mode domain.ViewMode) {
	r.mode = mode
}

// Mode returns the layout.
func (r *ResultList) Mode() domain.ViewMode {
	return r.mode
}

// SetGrouped enables community action area headers in list and detail layouts.
// Results must already be ordered by group.
func (r *ResultList) SetGrouped(grouped bool) {
	r.grouped = grouped
}

// Grouped reports whether area headers are shown.
func (r *ResultList) Grouped() bool {
	return r.grouped
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	r.move(-1)
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	r.move(1)
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}

func displayName(d domain.Dataset) string {
	if d.Name == "" {
		return "(Untitled)"
	}
	return d.Name
}

func areaLabel(d domain.Dataset) string {
	if d.CommunityActionArea == "" {
		return domain.OtherArea
	}
	return d.CommunityActionArea
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// Summary describes the visible range, e.g. "Showing 4 of 13 datasets".
func Summary(shown, total int) string {
	noun := "datasets"
	if total == 1 {
		noun = "dataset"
	}
	return fmt.Sprintf("Showing %d of %d %s", shown, total, noun)
}
