// Package transcript holds the whitespace normalization and the sufficiency
// gate every generator applies before spending a remote call.
package transcript

import (
	"regexp"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// minTokens is the smallest transcript worth sending to the model.
const minTokens = 20

// Normalize collapses whitespace runs to a single space and trims the ends.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// Sufficient reports whether cleaned text has enough tokens to process.
func Sufficient(cleaned string) bool {
	return len(strings.Fields(cleaned)) >= minTokens
}
