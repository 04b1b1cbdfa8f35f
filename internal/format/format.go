// Package format arranges parsed key bindings into rows and renders
// them as aligned columnar text.
package format

import (
	"errors"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zsh-tools/zkeys/internal/binding"
)

// Mode selects one of the four output arrangements. The set is closed:
// each mode maps to one arrangement function in Arrange.
type Mode int

const (
	// SortByWidget lists one binding per row, ordered by widget name.
	// This is the default.
	SortByWidget Mode = iota
	// SortByInString lists one binding per row, ordered by in-string
	// prefix convention.
	SortByInString
	// GroupByWidget lists each widget once with all of its in-strings.
	GroupByWidget
	// GroupByPrefix lists each prefix once with all of its final
	// characters.
	GroupByPrefix
)

// Row is one output line before alignment: a key column followed by
// one or more values.
type Row struct {
	Key    string
	Values []string
}

// ErrNoBindings is returned when there is nothing to display, since
// column widths are undefined for an empty listing.
var ErrNoBindings = errors.New("no key bindings to display")

// Arrange orders or groups bindings according to mode. The input slice
// is not modified.
func Arrange(mode Mode, bindings []binding.Binding) []Row {
	sorted := make([]binding.Binding, len(bindings))
	copy(sorted, bindings)

	switch mode {
	case SortByInString:
		sort.SliceStable(sorted, func(i, j int) bool { return binding.ByPrefix(sorted[i], sorted[j]) })
		return singleRows(sorted)
	case GroupByWidget:
		sort.SliceStable(sorted, func(i, j int) bool { return binding.ByWidget(sorted[i], sorted[j]) })
		return groupRows(sorted,
			func(b binding.Binding) string { return b.Widget },
			func(b binding.Binding) string { return b.InString })
	case GroupByPrefix:
		sort.SliceStable(sorted, func(i, j int) bool { return binding.ByPrefix(sorted[i], sorted[j]) })
		return groupRows(sorted, binding.Binding.Prefix, binding.Binding.Character)
	default:
		sort.SliceStable(sorted, func(i, j int) bool { return binding.ByWidget(sorted[i], sorted[j]) })
		return singleRows(sorted)
	}
}

// singleRows emits one row per binding: in-string, then widget.
func singleRows(bindings []binding.Binding) []Row {
	rows := make([]Row, 0, len(bindings))
	for _, b := range bindings {
		rows = append(rows, Row{Key: b.InString, Values: []string{b.Widget}})
	}
	return rows
}

// groupRows accumulates values per key, preserving first-seen key
// order. Accumulation is by key, not by adjacent runs, so the result
// is complete even for unsorted input.
func groupRows(bindings []binding.Binding, key, value func(binding.Binding) string) []Row {
	index := make(map[string]int, len(bindings))
	var rows []Row
	for _, b := range bindings {
		k := key(b)
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, Row{Key: k})
		}
		rows[i].Values = append(rows[i].Values, value(b))
	}
	return rows
}

// Render turns rows into aligned display lines, in row order. The key
// column is padded to the widest key plus four spaces; each value is
// padded to the widest single value, joined with single spaces, with
// trailing whitespace trimmed.
func Render(rows []Row) ([]string, error) {
	if len(rows) == 0 {
		return nil, ErrNoBindings
	}

	keyWidth, valueWidth := 0, 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Key); w > keyWidth {
			keyWidth = w
		}
		for _, v := range r.Values {
			if w := runewidth.StringWidth(v); w > valueWidth {
				valueWidth = w
			}
		}
	}
	keyWidth += 4

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		padded := make([]string, len(r.Values))
		for i, v := range r.Values {
			padded[i] = runewidth.FillRight(v, valueWidth)
		}
		values := strings.TrimRight(strings.Join(padded, " "), " \t")
		lines = append(lines, runewidth.FillRight(r.Key, keyWidth)+values)
	}
	return lines, nil
}
