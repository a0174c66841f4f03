package recordio

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"seqlab.dev/metacurate/internal/model"
)

const writeBatchSize = 1024

// ParquetWriter writes records as rows of optional UTF8 columns. The column
// set is fixed up front from the caller's field list; record fields outside
// it are dropped, and non-string values are rendered as text.
type ParquetWriter struct {
	fields []string
	writer *parquet.GenericWriter[map[string]any]
	buf    []map[string]any
}

// NewParquetWriter builds a schema with one optional string column per field
// and returns a batched writer. Close must be called to commit the footer.
func NewParquetWriter(w io.Writer, fields []string) (*ParquetWriter, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("at least one export field is required")
	}
	group := parquet.Group{}
	for _, f := range fields {
		group[f] = parquet.Optional(parquet.String())
	}
	schema := parquet.NewSchema("record", group)

	return &ParquetWriter{
		fields: fields,
		writer: parquet.NewGenericWriter[map[string]any](w, schema),
		buf:    make([]map[string]any, 0, writeBatchSize),
	}, nil
}

// Write buffers one record, flushing full batches to the underlying writer.
func (w *ParquetWriter) Write(rec model.Record) error {
	row := make(map[string]any, len(w.fields))
	for _, f := range w.fields {
		v, ok := rec[f]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr {
			row[f] = s
		} else {
			row[f] = fmt.Sprint(v)
		}
	}
	w.buf = append(w.buf, row)
	if len(w.buf) >= writeBatchSize {
		return w.flush()
	}
	return nil
}

func (w *ParquetWriter) flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	if _, err := w.writer.Write(w.buf); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	w.buf = w.buf[:0]
	return nil
}

// Close flushes buffered rows and finalizes the file footer.
func (w *ParquetWriter) Close() error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.writer.Close()
}
