package curate

import (
	"github.com/rs/zerolog"

	"seqlab.dev/metacurate/internal/model"
	"seqlab.dev/metacurate/internal/normalize"
)

// FormatDates rewrites the configured date fields to masked ISO 8601 form
// (YYYY-MM-DD with XX masking). ExpectedFormats are tried in order; see
// normalize.FormatDate for the first-match-wins contract.
type FormatDates struct {
	DateFields      []string
	ExpectedFormats []string
	Log             zerolog.Logger
}

func (t *FormatDates) Name() string { return "format-dates" }

// Apply returns a copy of rec with every present, non-empty string date
// field normalized. Missing fields, empty strings, and non-string values are
// left untouched.
func (t *FormatDates) Apply(rec model.Record) (model.Record, error) {
	out := rec.Copy()
	for _, field := range t.DateFields {
		value, ok := out.GetString(field)
		if !ok {
			continue
		}
		out[field] = normalize.FormatDate(value, t.ExpectedFormats, t.Log)
	}
	return out, nil
}
