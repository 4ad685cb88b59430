package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.LevelInfo, &buf)

	logger.Info("command failed", "error", errors.New("exit status 2"))

	out := buf.String()
	assert.Contains(t, out, `err="exit status 2"`)
	assert.NotContains(t, out, "error=")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.LevelInfo, &buf)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNewNop_DisablesEveryLevel(t *testing.T) {
	logger := NewNop()
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, logger.Enabled(context.Background(), level), level.String())
	}
}

func TestForDebug(t *testing.T) {
	assert.False(t, ForDebug(false).Enabled(context.Background(), slog.LevelError))
	assert.True(t, ForDebug(true).Enabled(context.Background(), slog.LevelDebug))
}
