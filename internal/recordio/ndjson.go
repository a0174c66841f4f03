// Package recordio streams metadata records in and out of their on-disk
// representations: newline-delimited JSON and Parquet.
package recordio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"seqlab.dev/metacurate/internal/model"
)

// Reader streams newline-delimited JSON records. Numbers are decoded as
// json.Number so values survive a read/write round trip unchanged.
type Reader struct {
	dec *json.Decoder
	n   int64
}

// NewReader wraps r in a buffered NDJSON record reader.
func NewReader(r io.Reader) *Reader {
	dec := json.NewDecoder(bufio.NewReader(r))
	dec.UseNumber()
	return &Reader{dec: dec}
}

// Read returns the next record, or io.EOF when the stream is exhausted.
func (r *Reader) Read() (model.Record, error) {
	var rec model.Record
	if err := r.dec.Decode(&rec); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("record %d: %w", r.n+1, err)
	}
	r.n++
	return rec, nil
}

// Count returns the number of records read so far.
func (r *Reader) Count() int64 { return r.n }

// Writer emits one JSON object per line.
type Writer struct {
	enc *json.Encoder
}

// NewWriter wraps w in an NDJSON record writer.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// Write encodes rec followed by a newline.
func (w *Writer) Write(rec model.Record) error {
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return nil
}
