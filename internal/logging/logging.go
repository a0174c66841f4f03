// Package logging configures the zerolog logger shared by the metacurate
// commands. Logs always go to stderr so NDJSON output on stdout stays clean.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a logger for the requested --log-format value: "text" for a
// human-friendly console rendering, anything else for structured JSON.
func Setup(format string) zerolog.Logger {
	var w io.Writer = os.Stderr
	if format == "text" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
