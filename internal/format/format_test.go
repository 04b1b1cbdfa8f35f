package format

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zsh-tools/zkeys/internal/binding"
)

// scenario is the worked example from the README: two widgets, four
// in-strings across four prefix families.
func scenario() []binding.Binding {
	return []binding.Binding{
		{InString: "^L", Widget: "clear-screen"},
		{InString: "^[^L", Widget: "clear-screen"},
		{InString: "^Xu", Widget: "undo"},
		{InString: "^X^U", Widget: "undo"},
	}
}

func TestSortByWidgetScenario(t *testing.T) {
	got, err := Render(Arrange(SortByWidget, scenario()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"^L      clear-screen",
		"^[^L    clear-screen",
		"^Xu     undo",
		"^X^U    undo",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSortByWidgetOrdersUnsortedInput(t *testing.T) {
	bindings := []binding.Binding{
		{InString: "^E", Widget: "end-of-line"},
		{InString: "^[b", Widget: "backward-word"},
		{InString: "^A", Widget: "beginning-of-line"},
	}

	rows := Arrange(SortByWidget, bindings)
	want := []string{"^[b", "^A", "^E"}
	for i, r := range rows {
		if r.Key != want[i] {
			t.Errorf("row %d key = %q, want %q", i, r.Key, want[i])
		}
	}
}

func TestSortByInString(t *testing.T) {
	bindings := []binding.Binding{
		{InString: "^[b", Widget: "backward-word"},
		{InString: "^E", Widget: "end-of-line"},
		{InString: "^A", Widget: "beginning-of-line"},
	}

	rows := Arrange(SortByInString, bindings)
	want := []string{"^A", "^E", "^[b"}
	for i, r := range rows {
		if r.Key != want[i] {
			t.Errorf("row %d key = %q, want %q", i, r.Key, want[i])
		}
	}
}

func TestGroupByWidget(t *testing.T) {
	rows := Arrange(GroupByWidget, scenario())

	want := []Row{
		{Key: "clear-screen", Values: []string{"^L", "^[^L"}},
		{Key: "undo", Values: []string{"^Xu", "^X^U"}},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("got %v, want %v", rows, want)
	}
}

func TestGroupByWidgetRendered(t *testing.T) {
	got, err := Render(Arrange(GroupByWidget, scenario()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"clear-screen    ^L   ^[^L",
		"undo            ^Xu  ^X^U",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Every in-string from the input must appear exactly once in the
// grouped output, no matter how the widgets are interleaved.
func TestGroupByWidgetComplete(t *testing.T) {
	bindings := []binding.Binding{
		{InString: "^A", Widget: "undo"},
		{InString: "^B", Widget: "redo"},
		{InString: "^C", Widget: "undo"},
		{InString: "^D", Widget: "redo"},
		{InString: "^E", Widget: "undo"},
	}

	seen := map[string]int{}
	for _, r := range Arrange(GroupByWidget, bindings) {
		for _, v := range r.Values {
			seen[v]++
		}
	}

	for _, b := range bindings {
		if seen[b.InString] != 1 {
			t.Errorf("in-string %q appears %d times, want 1", b.InString, seen[b.InString])
		}
	}
	if len(seen) != len(bindings) {
		t.Errorf("got %d distinct in-strings, want %d", len(seen), len(bindings))
	}
}

func TestGroupByPrefix(t *testing.T) {
	got, err := Render(Arrange(GroupByPrefix, scenario()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"^      L",
		"^[^    L",
		"^X     u",
		"^X^    U",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestArrangeDoesNotMutateInput(t *testing.T) {
	bindings := scenario()
	original := make([]binding.Binding, len(bindings))
	copy(original, bindings)

	Arrange(SortByInString, bindings)
	Arrange(GroupByPrefix, bindings)

	if !reflect.DeepEqual(bindings, original) {
		t.Error("Arrange modified its input slice")
	}
}

func TestRenderEmpty(t *testing.T) {
	for _, mode := range []Mode{SortByWidget, SortByInString, GroupByWidget, GroupByPrefix} {
		if _, err := Render(Arrange(mode, nil)); !errors.Is(err, ErrNoBindings) {
			t.Errorf("mode %d: got err %v, want ErrNoBindings", mode, err)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	rows := Arrange(GroupByWidget, scenario())

	first, err := Render(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Render(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("rendering the same rows twice produced different output")
	}
}

func TestRenderNoTrailingWhitespace(t *testing.T) {
	lines, err := Render(Arrange(GroupByPrefix, scenario()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range lines {
		if line != "" && (line[len(line)-1] == ' ' || line[len(line)-1] == '\t') {
			t.Errorf("line %q has trailing whitespace", line)
		}
	}
}
