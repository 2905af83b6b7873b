// Package logging builds the diagnostic logger for veryhttp.
//
// Diagnostics go to stderr so they never mix with the rendered response.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger on w. Verbose enables debug records; otherwise
// only warnings and errors are written.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
