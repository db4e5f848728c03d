// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Search submits the query.
	Search key.Binding

	// FocusSearch moves focus to the search box.
	FocusSearch key.Binding

	// NextSection moves focus between sections of a view.
	NextSection key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Toggle flips a filter value.
	Toggle key.Binding

	// ToggleAll selects or clears every value of a filter category.
	ToggleAll key.Binding

	// Filters opens or closes the filter panel.
	Filters key.Binding

	// ClearFilters removes every filter.
	ClearFilters key.Binding

	// ViewMode cycles grid, list and detail layouts.
	ViewMode key.Binding

	// Sort cycles relevance, date and name order.
	Sort key.Binding

	// FilterArea filters results by the shown dataset's area.
	FilterArea key.Binding

	// FilterSource filters results by the shown dataset's source.
	FilterSource key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all/none"),
		),
		Filters: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filters"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		ViewMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "layout"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		FilterArea: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "filter by area"),
		),
		FilterSource: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "filter by source"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Help, k.Quit}
}

// ResultsHelp returns keybindings for the results view.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Select, k.Filters, k.ViewMode, k.Sort, k.FocusSearch, k.Back}
}

// FilterHelp returns keybindings for the filter panel.
func (k *KeyMap) FilterHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleAll, k.ClearFilters, k.Filters}
}

// DetailHelp returns keybindings for the detail view.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.FilterArea, k.FilterSource, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.NextSection},
		{k.FocusSearch, k.Search, k.Back},
		{k.Filters, k.Toggle, k.ToggleAll, k.ClearFilters},
		{k.ViewMode, k.Sort, k.FilterArea, k.FilterSource},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
