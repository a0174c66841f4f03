package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seqlab.dev/metacurate/internal/db"
	"seqlab.dev/metacurate/internal/exitcode"
	"seqlab.dev/metacurate/internal/load"
	"seqlab.dev/metacurate/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load curated records into Postgres",
	Long:  "Streams records from --metadata into the curated_records table via the COPY\nprotocol, registering a load batch for traceability.",
	RunE:  runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if cfg.Metadata == "-" {
		log.Error().Msg("load requires --metadata to be a file, not stdin")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := load.Run(ctx, pool, log, cfg.Metadata)
	if err != nil {
		if pe, ok := err.(*load.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			switch pe.Phase {
			case "preflight", "read":
				os.Exit(exitcode.ValidationError)
			default:
				os.Exit(exitcode.CopyError)
			}
		}
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.CopyError)
	}

	fmt.Printf("Load complete: %d rows in batch %s (%.1fs)\n",
		summary.RowsLoaded, summary.LoadBatchID, summary.DurationTotal.Seconds())
	return nil
}
