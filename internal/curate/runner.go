package curate

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"seqlab.dev/metacurate/internal/model"
	"seqlab.dev/metacurate/internal/recordio"
)

// Run streams NDJSON records from in through tasks in order and writes the
// results to out. Records are processed independently and in input order; a
// malformed record aborts the run.
func Run(in io.Reader, out io.Writer, tasks []Task, log zerolog.Logger) (*model.CurateSummary, error) {
	start := time.Now()
	reader := recordio.NewReader(in)
	writer := recordio.NewWriter(out)
	summary := &model.CurateSummary{}

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("read record: %w", err)
		}
		summary.RecordsRead++

		for _, task := range tasks {
			rec, err = task.Apply(rec)
			if err != nil {
				return summary, fmt.Errorf("task %s, record %d: %w", task.Name(), summary.RecordsRead, err)
			}
		}

		if err := writer.Write(rec); err != nil {
			return summary, fmt.Errorf("write record: %w", err)
		}
		summary.RecordsWritten++
	}

	summary.DurationTotal = time.Since(start)
	log.Info().
		Int64("records", summary.RecordsWritten).
		Dur("duration", summary.DurationTotal).
		Msg("curate complete")
	return summary, nil
}
