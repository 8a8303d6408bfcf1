package succinct

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LogBuild(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.WithCount(3).LogBuild(context.Background(), 7, 3, 15, time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, `"msg":"trie built"`)
	assert.Contains(t, out, `"count":3`)
	assert.Contains(t, out, `"nodes":7`)
	assert.Contains(t, out, `"bits":15`)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.LogPush(context.Background(), 4)
	assert.Empty(t, buf.String())

	logger.LogPush(context.Background(), 0)
	assert.Contains(t, buf.String(), "empty word ignored")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
}
