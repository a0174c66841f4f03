// Package validate checks curated NDJSON records against a JSON schema.
package validate

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/record.json
var defaultSchema []byte

// Compile loads and compiles a JSON schema from path. With an empty path the
// embedded default record schema is used.
func Compile(path string) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if path == "" {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(defaultSchema))
		if err != nil {
			return nil, fmt.Errorf("parse embedded schema: %w", err)
		}
		if err := c.AddResource("record.json", doc); err != nil {
			return nil, fmt.Errorf("add embedded schema: %w", err)
		}
		path = "record.json"
	}
	sch, err := c.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return sch, nil
}

// Result summarizes one validation run.
type Result struct {
	Records int64
	Invalid int64
}

// Records validates each newline-delimited JSON record read from r against
// schema. Every invalid record is logged and counted; a non-zero invalid
// count is reported as the returned error. Records whose field set diverges
// from the first record's get a consistency warning but still validate on
// their own.
//
// Records are streamed through json.Decoder, the same framing the curate
// reader uses, so record size is not capped by a line buffer.
func Records(r io.Reader, schema *jsonschema.Schema, log zerolog.Logger) (*Result, error) {
	dec := json.NewDecoder(bufio.NewReader(r))

	res := &Result{}
	var refFields []string

	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err == io.EOF {
			break
		} else if err != nil {
			return res, fmt.Errorf("record %d: %w", res.Records+1, err)
		}
		res.Records++

		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return res, fmt.Errorf("record %d: %w", res.Records, err)
		}

		if err := schema.Validate(inst); err != nil {
			res.Invalid++
			log.Error().
				Int64("record", res.Records).
				Str("error", err.Error()).
				Msg("record failed schema validation")
		}

		if obj, ok := inst.(map[string]any); ok {
			fields := sortedKeys(obj)
			if refFields == nil {
				refFields = fields
			} else if !slices.Equal(fields, refFields) {
				log.Warn().
					Int64("record", res.Records).
					Strs("fields", fields).
					Msg("record field set differs from first record")
			}
		}
	}

	if res.Invalid > 0 {
		return res, fmt.Errorf("%d of %d records failed validation", res.Invalid, res.Records)
	}
	return res, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
