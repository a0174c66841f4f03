package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"seqlab.dev/metacurate/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "metacurate",
	Short: "Scientific record metadata curation toolkit",
	Long: "Streams newline-delimited JSON metadata records through curation tasks:\n" +
		"date normalization to masked ISO 8601, string normalization, JSON-schema\n" +
		"validation, and Parquet or Postgres export.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.Metadata, "metadata", "-", "Input NDJSON records file ('-' for stdin)")
	pf.StringVar(&cfg.Output, "output", "-", "Output file ('-' for stdout)")
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("METACURATE_DB_URL"), "Postgres connection string (or set METACURATE_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.ConfigFile, "config", "", "Optional YAML config file")
}

// openInput resolves the --metadata flag to a reader.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// openOutput resolves the --output flag to a writer.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
