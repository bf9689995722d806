package recommender

import (
	"regexp"
	"strings"
)

// Everything outside ASCII letters and whitespace becomes a space. Numbers and
// symbols carry no signal for the free-text descriptions in this catalog.
var nonLetterPattern = regexp.MustCompile(`[^a-zA-Z\s]`)

// CleanText lowercases text, strips non-letter characters and collapses
// whitespace. It is total and idempotent; empty input yields "".
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.ToLower(text)
	cleaned = nonLetterPattern.ReplaceAllString(cleaned, " ")

	return strings.Join(strings.Fields(cleaned), " ")
}
