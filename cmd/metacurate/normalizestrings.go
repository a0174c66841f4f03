package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seqlab.dev/metacurate/internal/curate"
	"seqlab.dev/metacurate/internal/exitcode"
	"seqlab.dev/metacurate/internal/logging"
)

var normalizeStringsCmd = &cobra.Command{
	Use:   "normalize-strings",
	Short: "Apply Unicode normalization and whitespace cleanup to string fields",
	RunE:  runNormalizeStrings,
}

func init() {
	f := normalizeStringsCmd.Flags()
	f.StringSliceVar(&cfg.Fields, "fields", nil, "Field names to normalize (default: all string fields)")
	f.StringVar(&cfg.NormForm, "form", "NFC", "Unicode normalization form: NFC, NFD, NFKC, or NFKD")
	rootCmd.AddCommand(normalizeStringsCmd)
}

func runNormalizeStrings(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if cfg.ConfigFile != "" {
		if err := cfg.LoadFromFile(cfg.ConfigFile); err != nil {
			log.Error().Err(err).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	form, err := curate.FormByName(cfg.NormForm)
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	task := &curate.NormalizeStrings{Fields: cfg.Fields, Form: form}
	summary, err := runCurate([]curate.Task{task}, log)
	if err != nil {
		log.Error().Err(err).Msg("curate failed")
		os.Exit(exitcode.CurateError)
	}

	fmt.Fprintf(os.Stderr, "Curated %d records (%.1fs)\n",
		summary.RecordsWritten, summary.DurationTotal.Seconds())
	return nil
}
