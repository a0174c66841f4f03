package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	timefmt "github.com/itchyny/timefmt-go"
	"github.com/rs/zerolog"
)

// DirectiveGroup is a conjunctive set of strptime directives: a date format
// reveals the group's field category only when every directive in the group
// appears in the format string. A one-element group is a plain directive.
type DirectiveGroup []string

// Directive groups that determine year, month, and day all at once. Locale
// representations (%c, %x) and ISO week dates (year + week + weekday) encode
// a complete calendar date even though no %Y/%m/%d appears.
var allFieldDirectives = []DirectiveGroup{
	{"%c"}, {"%x"},
	{"%G", "%V", "%A"}, {"%G", "%V", "%a"}, {"%G", "%V", "%w"}, {"%G", "%V", "%u"},
}

// Directive groups that determine month and day jointly: day-of-year, or a
// week number combined with a weekday.
var monthAndDayDirectives = []DirectiveGroup{
	{"%j"},
	{"%U", "%A"}, {"%U", "%a"}, {"%U", "%w"}, {"%U", "%u"},
	{"%W", "%A"}, {"%W", "%a"}, {"%W", "%w"}, {"%W", "%u"},
}

var yearDirectives = []DirectiveGroup{{"%y"}, {"%Y"}}

var monthDirectives = []DirectiveGroup{{"%b"}, {"%B"}, {"%m"}}

var dayDirectives = []DirectiveGroup{{"%d"}}

// directivePatterns gives the shape of input text each directive may consume.
// Widths follow strptime's fields: four-digit %Y/%G, two-digit %y, one-or-
// two-digit month and day. Directives not listed (locale and timezone forms)
// vary too much to pin down and are matched permissively.
var directivePatterns = map[byte]string{
	'Y': `\d{4}`,
	'G': `\d{4}`,
	'y': `\d{2}`,
	'm': `\d{1,2}`,
	'd': `\d{1,2}`,
	'e': `\s?\d{1,2}`,
	'H': `\d{1,2}`,
	'I': `\d{1,2}`,
	'M': `\d{1,2}`,
	'S': `\d{1,2}`,
	'f': `\d{1,6}`,
	'j': `\d{1,3}`,
	'U': `\d{1,2}`,
	'W': `\d{1,2}`,
	'V': `\d{1,2}`,
	'w': `\d`,
	'u': `\d`,
	'a': `[A-Za-z]+`,
	'A': `[A-Za-z]+`,
	'b': `[A-Za-z]+`,
	'B': `[A-Za-z]+`,
	'p': `[AaPp][Mm]`,
	'z': `[+-]\d{2}:?\d{2}`,
	'%': `%`,
}

var formatRegexps sync.Map // format string -> *regexp.Regexp

// formatRegexp compiles and caches the shape a date string must have to
// match dateFormat. The parser alone is too lenient about digit widths: it
// would let a two-digit year satisfy %Y, which must not count as a match.
func formatRegexp(dateFormat string) (*regexp.Regexp, error) {
	if cached, ok := formatRegexps.Load(dateFormat); ok {
		return cached.(*regexp.Regexp), nil
	}

	var b strings.Builder
	b.WriteString(`\A`)
	for i := 0; i < len(dateFormat); i++ {
		if dateFormat[i] != '%' || i+1 == len(dateFormat) {
			b.WriteString(regexp.QuoteMeta(string(dateFormat[i])))
			continue
		}
		i++
		if p, ok := directivePatterns[dateFormat[i]]; ok {
			b.WriteString(p)
		} else {
			b.WriteString(`.+?`)
		}
	}
	b.WriteString(`\z`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, err
	}
	formatRegexps.Store(dateFormat, re)
	return re, nil
}

// DirectiveIncluded reports whether dateFormat contains any of the given
// directive groups. Every directive of at least one group must appear as a
// substring of the format.
func DirectiveIncluded(groups []DirectiveGroup, dateFormat string) bool {
	for _, group := range groups {
		satisfied := true
		for _, directive := range group {
			if !strings.Contains(dateFormat, directive) {
				satisfied = false
				break
			}
		}
		if satisfied {
			return true
		}
	}
	return false
}

// FormatDate normalizes dateString to a masked ISO 8601 date (YYYY-MM-DD) by
// parsing it as one of expectedFormats, given as strptime format strings.
// Formats are tried in order and the first structural match wins, even when a
// later format would also match, so callers should list formats from most to
// least specific.
//
// Components the matched format cannot determine are masked: 'XXXX' for the
// year, 'XX' for month and day. Masking follows the precision hierarchy: a
// format without a year directive yields a fully masked date even when month
// or day parsed, and a day is only revealed once month is, except when the
// format carries an all-field directive group (locale or week-date forms).
//
// If no format matches, a warning is written to log and dateString is
// returned unchanged so callers can tell passthrough from a parsed-but-
// unknown date. An empty dateString is returned as is without a warning.
func FormatDate(dateString string, expectedFormats []string, log zerolog.Logger) string {
	if dateString == "" {
		return dateString
	}

	for _, dateFormat := range expectedFormats {
		re, err := formatRegexp(dateFormat)
		if err != nil || !re.MatchString(dateString) {
			continue
		}
		parsed, err := timefmt.Parse(dateString, dateFormat)
		if err != nil {
			continue
		}

		// Start fully masked so the parser's fill-in defaults for absent
		// fields can never leak into the output.
		yearStr, monthStr, dayStr := "XXXX", "XX", "XX"

		switch {
		case DirectiveIncluded(allFieldDirectives, dateFormat):
			yearStr = fmt.Sprintf("%04d", parsed.Year())
			monthStr = fmt.Sprintf("%02d", parsed.Month())
			dayStr = fmt.Sprintf("%02d", parsed.Day())

		case DirectiveIncluded(yearDirectives, dateFormat):
			yearStr = fmt.Sprintf("%04d", parsed.Year())

			if DirectiveIncluded(monthAndDayDirectives, dateFormat) {
				monthStr = fmt.Sprintf("%02d", parsed.Month())
				dayStr = fmt.Sprintf("%02d", parsed.Day())
			} else if DirectiveIncluded(monthDirectives, dateFormat) {
				monthStr = fmt.Sprintf("%02d", parsed.Month())

				if DirectiveIncluded(dayDirectives, dateFormat) {
					dayStr = fmt.Sprintf("%02d", parsed.Day())
				}
			}
		}

		return yearStr + "-" + monthStr + "-" + dayStr
	}

	log.Warn().
		Str("value", dateString).
		Strs("expected_formats", expectedFormats).
		Msg("date string does not match any expected format, leaving unchanged")
	return dateString
}
