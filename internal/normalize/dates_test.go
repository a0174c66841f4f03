package normalize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDirectiveIncluded(t *testing.T) {
	groups := []DirectiveGroup{
		{"%y", "%b", "%d"}, {"%y", "%B", "%d"}, {"%y", "%m", "%d"},
	}

	cases := []struct {
		format string
		want   bool
	}{
		{"%G-%V-%A", false},
		{"%y-%m", false},
		{"%y-%m-%d", true},
		{"%y-%m-%dT%H:%M:%SZ", true},
	}
	for _, c := range cases {
		if got := DirectiveIncluded(groups, c.format); got != c.want {
			t.Errorf("DirectiveIncluded(%q) = %v, want %v", c.format, got, c.want)
		}
	}
}

func TestDirectiveIncludedWeekDates(t *testing.T) {
	if !DirectiveIncluded(allFieldDirectives, "%G-%V-%A") {
		t.Error("ISO week date with weekday name should satisfy the all-field groups")
	}
	if DirectiveIncluded(allFieldDirectives, "%G-%V") {
		t.Error("ISO year and week without a weekday must not satisfy the all-field groups")
	}
	if !DirectiveIncluded(allFieldDirectives, "%c") {
		t.Error("locale datetime should satisfy the all-field groups")
	}
	if !DirectiveIncluded(monthAndDayDirectives, "%Y-%j") {
		t.Error("day-of-year should satisfy the month-and-day groups")
	}
	if DirectiveIncluded(monthAndDayDirectives, "%Y-%U") {
		t.Error("week number alone must not satisfy the month-and-day groups")
	}
}

func TestFormatDate(t *testing.T) {
	formats := []string{"%Y", "%Y-%m", "%Y-%m-%d", "%Y-%m-%dT%H:%M:%SZ", "%m-%d"}

	cases := []struct {
		in   string
		want string
	}{
		// Month and day without a year stay fully masked.
		{"01-01", "XXXX-XX-XX"},
		{"2020", "2020-XX-XX"},
		{"2020-01", "2020-01-XX"},
		{"2020-1-15", "2020-01-15"},
		{"2020-1-1", "2020-01-01"},
		{"2020-01-15", "2020-01-15"},
		{"2020-01-15T00:00:00Z", "2020-01-15"},
	}
	for _, c := range cases {
		if got := FormatDate(c.in, formats, zerolog.Nop()); got != c.want {
			t.Errorf("FormatDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDateEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	if got := FormatDate("", []string{"%Y-%m-%d"}, log); got != "" {
		t.Errorf("empty input should pass through, got %q", got)
	}
	if buf.Len() != 0 {
		t.Errorf("empty input should not emit a warning, got %q", buf.String())
	}
}

func TestFormatDateUnmatched(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	formats := []string{"%Y", "%Y-%m", "%Y-%m-%d"}

	if got := FormatDate("not-a-date", formats, log); got != "not-a-date" {
		t.Errorf("unmatched input should pass through verbatim, got %q", got)
	}
	if !strings.Contains(buf.String(), "not-a-date") {
		t.Errorf("warning should name the offending value, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "%Y-%m-%d") {
		t.Errorf("warning should list the expected formats, got %q", buf.String())
	}
}

func TestFormatDateFirstMatchWins(t *testing.T) {
	// "2020-05" parses under both formats; only the first one's directives
	// decide the masking.
	got := FormatDate("2020-05", []string{"%Y-%m", "%Y-%d"}, zerolog.Nop())
	if got != "2020-05-XX" {
		t.Errorf("year-month format first: got %q, want 2020-05-XX", got)
	}
	got = FormatDate("2020-05", []string{"%Y-%d", "%Y-%m"}, zerolog.Nop())
	if got != "2020-XX-XX" {
		t.Errorf("year-day format first: got %q, want 2020-XX-XX", got)
	}
}

func TestFormatDateStrictYearWidth(t *testing.T) {
	// A two-digit value must not satisfy %Y, even though a lenient parser
	// would accept it.
	if got := FormatDate("01-01", []string{"%Y-%m"}, zerolog.Nop()); got != "01-01" {
		t.Errorf("two digits matched %%Y: got %q", got)
	}
	if got := FormatDate("320", []string{"%Y"}, zerolog.Nop()); got != "320" {
		t.Errorf("three digits matched %%Y: got %q", got)
	}
}

func TestFormatDateHierarchy(t *testing.T) {
	// A day directive without a month keeps the day masked.
	if got := FormatDate("2020-15", []string{"%Y-%d"}, zerolog.Nop()); got != "2020-XX-XX" {
		t.Errorf("year+day format: got %q, want 2020-XX-XX", got)
	}
	// Day-of-year reveals month and day together.
	got := FormatDate("2020-046", []string{"%Y-%j"}, zerolog.Nop())
	if !strings.HasPrefix(got, "2020-") || strings.Contains(got, "XX") {
		t.Errorf("year+day-of-year format should reveal all components, got %q", got)
	}
}

func TestFormatDateIdempotent(t *testing.T) {
	formats := []string{"%Y", "%Y-%m", "%Y-%m-%d"}
	// Already-masked output matches no format and passes through unchanged.
	if got := FormatDate("2020-01-XX", formats, zerolog.Nop()); got != "2020-01-XX" {
		t.Errorf("masked input should be stable, got %q", got)
	}
	// Fully-specified output re-normalizes to itself.
	if got := FormatDate("2020-01-15", formats, zerolog.Nop()); got != "2020-01-15" {
		t.Errorf("canonical input should be stable, got %q", got)
	}
}

func TestFormatDateTwoDigitYear(t *testing.T) {
	if got := FormatDate("98-03-12", []string{"%y-%m-%d"}, zerolog.Nop()); got != "1998-03-12" {
		t.Errorf("two-digit year: got %q, want 1998-03-12", got)
	}
}
