// Package input provides the dataset search box.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/styles"
)

// Placeholder is shown while the search box is empty.
const Placeholder = "Search datasets..."

const (
	minInputWidth = 20
	maxQueryLen   = 256

	// labelWidth covers the label plus the field border and padding.
	labelWidth = 14
)

// Option configures a SearchInput.
type Option func(*SearchInput)

// WithCompact renders a single-line box without the border, used above
// result lists.
func WithCompact() Option {
	return func(s *SearchInput) {
		s.compact = true
	}
}

// SearchInput is the query box shared by the home and results views.
type SearchInput struct {
	field   textinput.Model
	styles  *styles.Styles
	width   int
	compact bool
}

// NewSearchInput creates a focused search box.
func NewSearchInput(s *styles.Styles, opts ...Option) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = Placeholder
	field.CharLimit = maxQueryLen
	field.Focus()

	in := &SearchInput{field: field, styles: s}
	for _, opt := range opts {
		opt(in)
	}
	in.SetWidth(64)
	return in
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text field.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	return s, cmd
}

// View renders the label and field.
func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Search: ")
	if s.compact {
		return label + s.field.View()
	}

	box := s.styles.InputField
	if s.Focused() {
		box = box.BorderForeground(s.styles.Theme().Primary)
	}
	//nolint:misspell // lipgloss.Center is the library constant
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box.Render(s.field.View()))
}

// Value returns the raw text.
func (s *SearchInput) Value() string {
	return s.field.Value()
}

// Query returns the text with surrounding whitespace removed.
func (s *SearchInput) Query() string {
	return strings.TrimSpace(s.field.Value())
}

// SetValue replaces the text and moves the cursor to the end.
func (s *SearchInput) SetValue(value string) {
	s.field.SetValue(value)
	s.field.CursorEnd()
}

// Focus gives the field keyboard focus.
func (s *SearchInput) Focus() tea.Cmd {
	return s.field.Focus()
}

// Blur removes keyboard focus.
func (s *SearchInput) Blur() {
	s.field.Blur()
}

// Focused reports whether the field has keyboard focus.
func (s *SearchInput) Focused() bool {
	return s.field.Focused()
}

// Compact reports whether the borderless layout is used.
func (s *SearchInput) Compact() bool {
	return s.compact
}

// SetWidth sets the outer width. The field never shrinks below
// minInputWidth.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	inner := width - labelWidth
	if inner < minInputWidth {
		inner = minInputWidth
	}
	s.field.Width = inner
}

// Width returns the outer width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the text.
func (s *SearchInput) Reset() {
	s.field.Reset()
}
