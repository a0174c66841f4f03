package model

import "sort"

// Record is one metadata record: a flat JSON object mapping field names to
// values. Values stay whatever the decoder produced; curation tasks only
// rewrite string values.
type Record map[string]any

// Copy returns a shallow copy. Tasks operate copy-on-write and must never
// mutate the record they were handed.
func (r Record) Copy() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// GetString returns the field's value when it is present as a non-empty
// string.
func (r Record) GetString(field string) (string, bool) {
	s, ok := r[field].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Fields returns the record's field names in sorted order.
func (r Record) Fields() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
