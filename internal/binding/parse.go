package binding

import (
	"regexp"
	"strings"
)

// bindkeyPattern matches lines printed by zsh's `bindkey -L`, e.g.
// `bindkey "^[b" backward-word`.
var bindkeyPattern = regexp.MustCompile(`^bindkey "(.+)" (.+)$`)

// ignoredWidgets are bound in every zsh session and only add noise to
// a listing meant for humans.
var ignoredWidgets = map[string]bool{
	"bracketed-paste":    true,
	"digit-argument":     true,
	"neg-argument":       true,
	"self-insert-unmeta": true,
}

// Parse converts bindkey listing lines into bindings. Lines that do
// not look like `bindkey "<in-string>" <widget>` are skipped without
// error, as are bindings for the ignored widgets.
//
// All backslashes are removed from the in-string for readability, so
// `\M-\$` becomes `M-$`. This can be overzealous for custom bindings
// containing a literal backslash, but it matches how the standard
// sequences are usually written.
func Parse(lines []string) []Binding {
	var bindings []Binding
	for _, line := range lines {
		m := bindkeyPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		inString, widget := m[1], m[2]
		if ignoredWidgets[widget] {
			continue
		}
		inString = strings.ReplaceAll(inString, `\`, "")
		bindings = append(bindings, Binding{InString: inString, Widget: widget})
	}
	return bindings
}
