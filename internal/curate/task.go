// Package curate streams metadata records through per-record curation tasks.
package curate

import "seqlab.dev/metacurate/internal/model"

// Task is one per-record curation step. Apply must treat the input record as
// read-only and return a copy when it changes anything. Records are
// independent of each other, so a Task must be safe to reuse across records.
type Task interface {
	Name() string
	Apply(rec model.Record) (model.Record, error)
}

// Passthru copies records through unchanged. Useful when the read/write
// round trip itself is the point, e.g. format conversion or linting runs.
type Passthru struct{}

func (Passthru) Name() string { return "passthru" }

func (Passthru) Apply(rec model.Record) (model.Record, error) { return rec, nil }
