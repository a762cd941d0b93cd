// Package sanitize normalizes free-text form input before it reaches storage.
package sanitize

import (
	"strings"
	"unicode/utf8"
)

// Text trims surrounding whitespace and clips the result to maxLen runes.
func Text(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	return string([]rune(s)[:maxLen])
}
