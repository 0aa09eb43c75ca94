// Package observability wires up the structured logger and HTTP
// middleware shared by cmd/server and internal/httpapi.
package observability

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide logger at the given zerolog level
// name (debug|info|warn|error; unrecognized names fall back to info).
// Output goes to a human-readable console writer rather than raw JSON
// lines, since this is an operator-facing binary, not a log-aggregated
// service.
func NewLogger(levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
