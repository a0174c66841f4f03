package curate

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"seqlab.dev/metacurate/internal/model"
	"seqlab.dev/metacurate/internal/normalize"
)

// NormalizeStrings applies a Unicode normalization form plus whitespace
// cleanup to string fields. An empty Fields list means every string field.
type NormalizeStrings struct {
	Fields []string
	Form   norm.Form
}

func (t *NormalizeStrings) Name() string { return "normalize-strings" }

// Apply returns a copy of rec with the selected string values normalized.
func (t *NormalizeStrings) Apply(rec model.Record) (model.Record, error) {
	fields := t.Fields
	if len(fields) == 0 {
		fields = rec.Fields()
	}
	out := rec.Copy()
	for _, field := range fields {
		value, ok := out.GetString(field)
		if !ok {
			continue
		}
		out[field] = normalize.NormalizeStringForm(value, t.Form)
	}
	return out, nil
}

// FormByName maps a normalization form name (NFC, NFD, NFKC, NFKD) to its
// norm.Form value.
func FormByName(name string) (norm.Form, error) {
	switch name {
	case "", "NFC":
		return norm.NFC, nil
	case "NFD":
		return norm.NFD, nil
	case "NFKC":
		return norm.NFKC, nil
	case "NFKD":
		return norm.NFKD, nil
	}
	return 0, fmt.Errorf("unknown normalization form %q", name)
}
