package partition

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with partition-specific fields.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithUniverse adds a universe size field to the logger.
func (l *Logger) WithUniverse(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("universe", n),
	}
}

// LogInit logs the construction of a Partition.
func (l *Logger) LogInit(n int, err error) {
	if err != nil {
		l.Error("partition init failed",
			"universe", n,
			"error", err,
		)
	} else {
		l.Debug("partition initialized",
			"universe", n,
		)
	}
}

// LogRefine logs a refine operation.
func (l *Logger) LogRefine(items, splits, subsets int, err error) {
	if err != nil {
		l.Error("refine failed",
			"items", items,
			"error", err,
		)
	} else {
		l.Debug("refine completed",
			"items", items,
			"splits", splits,
			"subsets", subsets,
		)
	}
}

// LogClose logs the release of a Partition.
func (l *Logger) LogClose(subsets int) {
	l.Debug("partition closed",
		"subsets", subsets,
	)
}
