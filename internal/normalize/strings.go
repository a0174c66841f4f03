package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeString applies Unicode NFC normalization, collapses whitespace
// runs to single spaces, and trims the result.
func NormalizeString(s string) string {
	return NormalizeStringForm(s, norm.NFC)
}

// NormalizeStringForm is NormalizeString with an explicit normalization form.
func NormalizeStringForm(s string, form norm.Form) string {
	s = form.String(s)
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
