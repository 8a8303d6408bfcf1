package succinct

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with succinct-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs the compaction of a staging trie into a Trie.
func (l *Logger) LogBuild(ctx context.Context, nodes, words int, bits uint64, duration time.Duration) {
	l.DebugContext(ctx, "trie built",
		"nodes", nodes,
		"words", words,
		"bits", bits,
		"duration", duration,
	)
}

// LogPush logs a word handed to a Builder. Empty words are reported as ignored.
func (l *Logger) LogPush(ctx context.Context, length int) {
	if length == 0 {
		l.WarnContext(ctx, "empty word ignored")
		return
	}
	l.DebugContext(ctx, "word pushed", "length", length)
}
