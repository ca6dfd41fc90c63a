package analyzer

import (
	"regexp"
	"strings"
)

var (
	// Keep word chars, whitespace, hyphens and periods; everything else becomes a space.
	nonWordRe    = regexp.MustCompile(`[^\w\s.-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanText normalizes raw text for the extractors: punctuation outside the
// allow-list is replaced with spaces, whitespace runs collapse to a single
// space, and the ends are trimmed. Cleaning is idempotent. Empty or
// whitespace-only input yields "".
func CleanText(text string) string {
	text = nonWordRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
