package model

import "time"

// CurateSummary captures metrics from a single curate run.
type CurateSummary struct {
	RecordsRead    int64
	RecordsWritten int64
	DurationTotal  time.Duration
}

// LoadSummary captures metrics from a single load run.
type LoadSummary struct {
	FilePath      string
	FileSHA256    string
	LoadBatchID   string
	RowsRead      int64
	RowsLoaded    int64
	DurationCopy  time.Duration
	DurationTotal time.Duration
}
