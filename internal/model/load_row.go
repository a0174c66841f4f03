package model

import "github.com/google/uuid"

// LoadRow is one curated record prepared for COPY into curated_records.
type LoadRow struct {
	LoadBatchID     uuid.UUID
	SourceRowNumber int64
	RowHash         []byte
	Record          Record
}

// LoadColumns is the COPY column order for curated_records.
var LoadColumns = []string{"load_batch_id", "source_row_number", "row_hash", "record"}

// CopyValues returns the row's values in COPY column order.
func (r *LoadRow) CopyValues() []any {
	return []any{r.LoadBatchID, r.SourceRowNumber, r.RowHash, r.Record}
}
