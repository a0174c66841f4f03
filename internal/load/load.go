// Package load bulk-loads curated NDJSON records into Postgres.
package load

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"seqlab.dev/metacurate/internal/db"
	"seqlab.dev/metacurate/internal/model"
	"seqlab.dev/metacurate/internal/normalize"
	"seqlab.dev/metacurate/internal/recordio"
)

const rowBuffer = 1024

// PipelineError wraps an error with the load phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// cleanupBatch deletes a failed batch's records and its load_batches row.
// Best effort: a cleanup failure is logged but does not mask the load error.
func cleanupBatch(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID) {
	if _, err := pool.Exec(ctx,
		`DELETE FROM curated_records WHERE load_batch_id = $1`, batchID); err != nil {
		log.Error().Err(err).Str("batch", batchID.String()).Msg("failed to clean up batch records")
		return
	}
	if _, err := pool.Exec(ctx,
		`DELETE FROM load_batches WHERE load_batch_id = $1`, batchID); err != nil {
		log.Error().Err(err).Str("batch", batchID.String()).Msg("failed to clean up batch row")
	}
}

// Run registers a load batch for the metadata file at path, then streams its
// records into curated_records via a channel-backed COPY. A failed run cleans
// up any rows it loaded before the failure.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, path string) (*model.LoadSummary, error) {
	totalStart := time.Now()

	sha, err := normalize.FileHash(path)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	batchID := uuid.New()
	if _, err := pool.Exec(ctx,
		`INSERT INTO load_batches (load_batch_id, source_file, source_file_sha256) VALUES ($1, $2, $3)`,
		batchID, path, sha); err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}
	log.Info().Str("file", path).Str("sha256", sha).Str("batch", batchID.String()).Msg("load batch registered")

	f, err := os.Open(path)
	if err != nil {
		return nil, &PipelineError{Phase: "read", Err: err}
	}
	defer f.Close()

	ch := make(chan *model.LoadRow, rowBuffer)
	errCh := make(chan error, 1)
	var rowsRead int64

	// Producer goroutine: read NDJSON → hash → push to channel.
	go func() {
		defer close(ch)
		reader := recordio.NewReader(f)
		for {
			rec, readErr := reader.Read()
			if readErr == io.EOF {
				return
			}
			if readErr != nil {
				errCh <- readErr
				return
			}
			rowsRead++

			row := &model.LoadRow{
				LoadBatchID:     batchID,
				SourceRowNumber: rowsRead,
				RowHash:         normalize.RecordHash(rec),
				Record:          rec,
			}
			select {
			case ch <- row:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	}()

	copyStart := time.Now()
	copied, err := pool.CopyFrom(ctx, pgx.Identifier{"curated_records"}, model.LoadColumns, db.NewChannelSource(ch))
	if err != nil {
		cleanupBatch(ctx, pool, log, batchID)
		return nil, &PipelineError{Phase: "copy", Err: err}
	}

	// A producer failure closes the channel early, so CopyFrom commits the
	// rows read up to that point. Remove them along with the batch row so a
	// failed load leaves nothing behind.
	select {
	case readErr := <-errCh:
		cleanupBatch(ctx, pool, log, batchID)
		return nil, &PipelineError{Phase: "read", Err: readErr}
	default:
	}

	summary := &model.LoadSummary{
		FilePath:      path,
		FileSHA256:    sha,
		LoadBatchID:   batchID.String(),
		RowsRead:      rowsRead,
		RowsLoaded:    copied,
		DurationCopy:  time.Since(copyStart),
		DurationTotal: time.Since(totalStart),
	}
	log.Info().
		Int64("rows", summary.RowsLoaded).
		Dur("duration", summary.DurationTotal).
		Msg("load complete")
	return summary, nil
}
