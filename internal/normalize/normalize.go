package normalize

import (
	"strings"
	"unicode/utf8"
)

// ID returns a normalized form of a user or listing identifier suitable
// for storage and comparisons. Identifiers are UUID strings, so
// normalization trims surrounding whitespace and lower-cases them.
func ID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Content trims surrounding whitespace from message text.
func Content(s string) string {
	return strings.TrimSpace(s)
}

// Preview shortens s to at most max runes, appending an ellipsis when
// it had to cut.
func Preview(s string, max int) string {
	s = Content(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:max])) + "…"
}
