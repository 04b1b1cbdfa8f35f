// Package tui is a full-screen browser for zsh key bindings, wrapping
// the same arrangements the CLI prints into a filterable table.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zsh-tools/zkeys/internal/binding"
	"github.com/zsh-tools/zkeys/internal/format"
)

const (
	minKeyColWidth = 10 // key column never shrinks below this
	colPadding     = 4  // padding added to the measured key width
	chromeHeight   = 4  // header, table header, status bar
)

// Model browses a fixed set of bindings. The arrangement and filter
// change; the bindings themselves never do.
type Model struct {
	bindings []binding.Binding
	mode     format.Mode

	table     table.Model
	filter    textinput.Model
	filtering bool
	query     string

	width  int
	height int
}

// NewModel builds the browser around an already-parsed binding list.
func NewModel(bindings []binding.Binding) Model {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.PromptStyle = filterPromptStyle
	filter.Placeholder = "widget or in-string"

	t := table.New(table.WithFocused(true))
	styles := table.DefaultStyles()
	styles.Header = tableHeaderStyle
	styles.Selected = tableSelectedStyle
	styles.Cell = tableCellStyle
	t.SetStyles(styles)

	m := Model{
		bindings: bindings,
		mode:     format.SortByWidget,
		table:    t,
		filter:   filter,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-chromeHeight, 1))
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Filter):
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		case key.Matches(msg, keys.ClearFilter):
			m.query = ""
			m.filter.Reset()
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.SortWidget):
			return m.setMode(format.SortByWidget), nil
		case key.Matches(msg, keys.SortInString):
			return m.setMode(format.SortByInString), nil
		case key.Matches(msg, keys.GroupWidget):
			return m.setMode(format.GroupByWidget), nil
		case key.Matches(msg, keys.GroupPrefix):
			return m.setMode(format.GroupByPrefix), nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.query = ""
		m.filter.Reset()
		m.filter.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.query = m.filter.Value()
	m.refresh()
	return m, cmd
}

func (m Model) setMode(mode format.Mode) Model {
	m.mode = mode
	m.refresh()
	return m
}

// refresh rebuilds the table from the current mode and filter.
func (m *Model) refresh() {
	rows := format.Arrange(m.mode, m.visibleBindings())

	keyWidth := minKeyColWidth
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Key); w > keyWidth {
			keyWidth = w
		}
	}
	keyWidth += colPadding

	valueWidth := max(m.width-keyWidth-4, minKeyColWidth)
	keyTitle, valueTitle := m.columnTitles()
	m.table.SetColumns([]table.Column{
		{Title: keyTitle, Width: keyWidth},
		{Title: valueTitle, Width: valueWidth},
	})

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{r.Key, strings.Join(r.Values, " ")})
	}
	m.table.SetRows(tableRows)
	if m.table.Cursor() >= len(tableRows) {
		m.table.SetCursor(0)
	}
}

// visibleBindings applies the filter query, matching case-insensitively
// on either the widget name or the in-string.
func (m Model) visibleBindings() []binding.Binding {
	if m.query == "" {
		return m.bindings
	}
	q := strings.ToLower(m.query)
	var visible []binding.Binding
	for _, b := range m.bindings {
		if strings.Contains(strings.ToLower(b.Widget), q) ||
			strings.Contains(strings.ToLower(b.InString), q) {
			visible = append(visible, b)
		}
	}
	return visible
}

func (m Model) columnTitles() (string, string) {
	switch m.mode {
	case format.GroupByWidget:
		return "WIDGET", "IN-STRINGS"
	case format.GroupByPrefix:
		return "PREFIX", "CHARACTERS"
	default:
		return "IN-STRING", "WIDGET"
	}
}

func (m Model) modeName() string {
	switch m.mode {
	case format.SortByInString:
		return "sorted by in-string"
	case format.GroupByWidget:
		return "grouped by widget"
	case format.GroupByPrefix:
		return "grouped by prefix"
	default:
		return "sorted by widget"
	}
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("zkeys · %d bindings · %s",
		len(m.visibleBindings()), m.modeName()))

	var footer string
	switch {
	case m.filtering:
		footer = m.filter.View()
	case m.query != "":
		footer = statusBarStyle.Render(fmt.Sprintf("filter: %q · %s clear · %s quit",
			m.query, keys.ClearFilter.Help().Key, keys.Quit.Help().Key))
	default:
		footer = statusBarStyle.Render(helpLine())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), footer)
}

func helpLine() string {
	hints := []key.Binding{
		keys.SortWidget, keys.SortInString, keys.GroupWidget, keys.GroupPrefix,
		keys.Filter, keys.Quit,
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, h.Help().Key+" "+h.Help().Desc)
	}
	return strings.Join(parts, " · ")
}
