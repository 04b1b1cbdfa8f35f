package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the browser's key bindings.
//
// Table:
//   j/down     Move cursor down
//   k/up       Move cursor up
//   d          Sort by widget (default)
//   i          Sort by in-string
//   w          Group by widget
//   p          Group by prefix
//   /          Filter the listing
//   q/ctrl+c   Quit
//
// Filter input:
//   enter      Apply filter
//   esc        Clear filter and return to the table
type KeyMap struct {
	Quit         key.Binding
	Filter       key.Binding
	ClearFilter  key.Binding
	SortWidget   key.Binding
	SortInString key.Binding
	GroupWidget  key.Binding
	GroupPrefix  key.Binding
}

var keys = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	SortWidget: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "by widget"),
	),
	SortInString: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "by in-string"),
	),
	GroupWidget: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "group widgets"),
	),
	GroupPrefix: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "group prefixes"),
	),
}
