package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured application logger.
// It writes to w, or Stderr when w is nil, so that log lines never mix with
// the menu and prompts on Stdout.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ForDebug returns a debug logger on Stderr when debug is set, otherwise a no-op logger.
func ForDebug(debug bool) *slog.Logger {
	if debug {
		return New(slog.LevelDebug, nil)
	}
	return NewNop()
}
