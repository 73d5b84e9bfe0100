// Package util contains small text helpers shared by the engine's prose
// building.
package util

import (
	"strings"
)

// MakeTextList joins display names into natural prose: "a lamp", "a lamp and
// a key", or "a lamp, a key, and an apple". When articles is false the names
// are joined bare, which reads better for people.
func MakeTextList(items []string, articles bool) string {
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, len(items))
	for i, item := range items {
		if articles {
			parts[i] = ArticleFor(item, false) + " " + item
		} else {
			parts[i] = item
		}
	}

	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	}

	parts[len(parts)-1] = "and " + parts[len(parts)-1]
	return strings.Join(parts, ", ")
}

// ArticleFor returns the article to introduce the given name with: "the" if
// definite, otherwise "a" or "an" picked by leading vowel.
func ArticleFor(s string, definite bool) string {
	if definite {
		return "the"
	}
	if s == "" {
		return "a"
	}
	switch []rune(strings.ToLower(s))[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
