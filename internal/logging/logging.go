// Package logging provides structured, colorized logging for sweepctl.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Level represents a log level accepted on the command line.
type Level slog.Level

const (
	// LevelDebug enables per-call API tracing.
	LevelDebug Level = Level(slog.LevelDebug)
	// LevelInfo is the default level for progress lines.
	LevelInfo Level = Level(slog.LevelInfo)
	// LevelWarn reports non-fatal mutation failures.
	LevelWarn Level = Level(slog.LevelWarn)
	// LevelError reports fatal validation and lookup failures.
	LevelError Level = Level(slog.LevelError)
)

// ParseLevel converts a textual log level into a Level value.
// Unknown values fall back to info.
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// NewLogger constructs a slog.Logger writing tint-formatted records to w.
// Diagnostics go to stderr so stdout stays reserved for result lines.
func NewLogger(w io.Writer, level Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level: slog.Level(level),
	})

	return slog.New(handler)
}
