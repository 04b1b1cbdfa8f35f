package binding

import "strings"

// Binding maps an in-string like "^[b" to a ZLE widget like
// "backward-word". It is built once by Parse and never mutated.
type Binding struct {
	InString string
	Widget   string
}

// prefixRanks orders the common in-string prefixes the way people
// expect to read them: plain control first, then the escape and meta
// families, then ^X chords and the arrow/function-key sequences.
var prefixRanks = map[string]int{
	"^":    0,
	"^[":   1,
	"^[^":  2,
	"M-":   3,
	"M-^":  4,
	"^X":   5,
	"^X^":  6,
	"^[[":  7,
	"^[O":  8,
	"^[[3": 9,
}

// unknownPrefixRank sorts any prefix missing from prefixRanks after
// all known ones.
const unknownPrefixRank = 999

// Prefix is everything before the final character of the in-string.
func (b Binding) Prefix() string {
	runes := []rune(b.InString)
	return string(runes[:len(runes)-1])
}

// Character is the final character of the in-string.
func (b Binding) Character() string {
	runes := []rune(b.InString)
	return string(runes[len(runes)-1])
}

// PrefixRank returns the binding's position in the conventional prefix
// ordering, or unknownPrefixRank for anything unlisted.
func (b Binding) PrefixRank() int {
	if rank, ok := prefixRanks[b.Prefix()]; ok {
		return rank
	}
	return unknownPrefixRank
}

// ByPrefix reports whether a sorts before b by prefix rank, breaking
// ties on the final character with case folded so that "a" and "A"
// land next to each other.
func ByPrefix(a, b Binding) bool {
	ar, br := a.PrefixRank(), b.PrefixRank()
	if ar != br {
		return ar < br
	}
	return strings.ToUpper(a.Character()) < strings.ToUpper(b.Character())
}

// ByWidget reports whether a sorts before b by widget name, comparing
// byte-wise (Go's native string order, case-sensitive), with ByPrefix
// as the tie-breaker for same-named widgets.
func ByWidget(a, b Binding) bool {
	if a.Widget != b.Widget {
		return a.Widget < b.Widget
	}
	return ByPrefix(a, b)
}
