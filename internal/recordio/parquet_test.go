package recordio

import (
	"bytes"
	"io"
	"testing"

	"github.com/parquet-go/parquet-go"

	"seqlab.dev/metacurate/internal/model"
)

func TestParquetWriterRoundTrip(t *testing.T) {
	fields := []string{"strain", "date", "country"}

	var buf bytes.Buffer
	w, err := NewParquetWriter(&buf, fields)
	if err != nil {
		t.Fatalf("NewParquetWriter: %v", err)
	}

	recs := []model.Record{
		{"strain": "A/1", "date": "2020-01-XX", "country": "USA", "extra": "dropped"},
		{"strain": "A/2", "date": "2020-XX-XX"},
	}
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	pf, err := parquet.OpenFile(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open parquet: %v", err)
	}
	if pf.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", pf.NumRows())
	}

	cols := map[string]bool{}
	for _, f := range pf.Schema().Fields() {
		cols[f.Name()] = true
	}
	for _, f := range fields {
		if !cols[f] {
			t.Errorf("missing column %q", f)
		}
	}
	if cols["extra"] {
		t.Error("fields outside the export list should be dropped")
	}

	// Map rows need an explicit schema, and each destination map must be
	// allocated before Read fills it.
	reader := parquet.NewGenericReader[map[string]any](pf, pf.Schema())
	defer reader.Close()
	rows := []map[string]any{{}, {}}
	n, readErr := reader.Read(rows)
	if readErr != nil && readErr != io.EOF {
		t.Fatalf("read rows: %v", readErr)
	}
	if n != 2 {
		t.Fatalf("read %d rows, want 2", n)
	}
	if rows[0]["date"] != "2020-01-XX" {
		t.Errorf("row 0 date = %v", rows[0]["date"])
	}
}

func TestParquetWriterNoFields(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewParquetWriter(&buf, nil); err == nil {
		t.Fatal("expected error for empty field list")
	}
}
