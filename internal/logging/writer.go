package logging

import (
	"context"
	"log/slog"
	"strings"
)

// Writer forwards subprocess output (gh's stderr) to slog, one line per record.
type Writer struct {
	logger *slog.Logger
	level  slog.Level
}

// NewWriter constructs a Writer bound to the provided logger and level.
func NewWriter(logger *slog.Logger, level Level) *Writer {
	return &Writer{logger: logger, level: slog.Level(level)}
}

// Write logs the given bytes as individual lines, skipping blanks.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(string(p), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			w.logger.Log(context.Background(), w.level, "gh", "line", line)
		}
	}
	return len(p), nil
}
