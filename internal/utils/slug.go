package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from an article title: lowercase, strip
// every character that is not a letter, digit or whitespace, then
// collapse whitespace runs into single hyphens.
//
// The derivation is deterministic, so recomputing the slug after a
// title update always yields the same value for the same title.
func Slugify(title string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
