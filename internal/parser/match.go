package parser

import (
	"strings"
	"unicode"
)

// Normalize removes all whitespace and lowercases s.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// Matches reports whether the normalized pattern occurs anywhere in the
// normalized s. The comparison is a literal substring test, so an empty
// pattern matches everything.
func Matches(pattern, s string) bool {
	return strings.Contains(Normalize(s), Normalize(pattern))
}
