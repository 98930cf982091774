// Package logging builds the slog loggers used by the CLI.
package logging

import (
	"io"
	"log/slog"
)

// Level maps the --verbose flag to a slog level.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// New returns a text logger writing to w at info level, or debug when
// verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Wall clock time is noise in a one-shot CLI run.
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
