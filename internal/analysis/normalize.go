package analysis

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	reSpace   = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases text, removes everything that is not a letter, digit
// or whitespace and collapses whitespace runs to a single space. Total
// function: garbage in, empty string out, never an error.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reNonWord.ReplaceAllString(s, "")
	s = reSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits normalized text into words. Empty input yields nil.
func Tokenize(s string) []string {
	s = Normalize(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}
