package utils

import (
	"strings"
	"unicode"
)

// NormalizeSlug lower-cases s and folds separators so that "Order-of the Dragon"
// and "order_of_the_dragon" compare equal. Apostrophes and dots are removed.
func NormalizeSlug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastUnderscore := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == '\'' || r == '’' || r == '.':
			continue
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
			continue
		}
		b.WriteRune(unicode.ToLower(r))
		lastUnderscore = false
	}
	return strings.TrimSuffix(b.String(), "_")
}

// SplitCSV splits a comma separated list, trimming blanks and dropping empty items.
func SplitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
