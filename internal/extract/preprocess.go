package extract

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	disallowedRe = regexp.MustCompile(`[^a-zA-Z0-9\s.,\-/()+#]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Preprocess cleans raw document text before annotation: HTML-like tags are
// stripped, characters outside letters/digits/space/".,-/()+#" are removed,
// whitespace runs collapse to single spaces, and the result is trimmed.
// Disallowed characters are removed before whitespace collapses so the
// function is a fixed point on its own output.
func Preprocess(text string) string {
	text = htmlTagRe.ReplaceAllString(text, "")
	text = disallowedRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
