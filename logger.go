package vcoll

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Logger wraps slog.Logger with vcoll-specific context.
// Containers log growth and ownership transfers at debug level only.
// The With* and Log* helpers are safe to call on a nil *Logger.
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

// NewConsoleLogger creates a Logger with colorized output for interactive use.
// Colors are disabled when w is not a terminal.
func NewConsoleLogger(w io.Writer, level slog.Level) *Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
		if !noColor {
			w = colorable.NewColorable(f)
		}
	}
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

var noop = NoopLogger()

// OrNoop returns l, or a shared no-op logger if l is nil.
func OrNoop(l *Logger) *Logger {
	if l == nil {
		return noop
	}
	return l
}

// WithComponent adds a component field to the logger.
// A nil logger yields the no-op logger.
func (l *Logger) WithComponent(name string) *Logger {
	if l == nil {
		return noop
	}
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// WithCount adds a count field to the logger.
// A nil logger yields the no-op logger.
func (l *Logger) WithCount(count int) *Logger {
	if l == nil {
		return noop
	}
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogGrow logs a storage reallocation.
func (l *Logger) LogGrow(oldCap, newCap, length int) {
	if l == nil {
		return
	}
	l.DebugContext(context.Background(), "storage grown",
		"old_capacity", oldCap,
		"new_capacity", newCap,
		"length", length,
	)
}

// LogInstall logs the installation of externally supplied fixed storage.
func (l *Logger) LogInstall(capacity, length int, mapped bool) {
	if l == nil {
		return
	}
	l.DebugContext(context.Background(), "fixed storage installed",
		"capacity", capacity,
		"length", length,
		"mapped", mapped,
	)
}

// LogExtract logs storage being handed over to the caller.
func (l *Logger) LogExtract(length int, copied bool) {
	if l == nil {
		return
	}
	l.DebugContext(context.Background(), "storage extracted",
		"length", length,
		"copied", copied,
	)
}

// LogRelease logs an explicit bulk release of elements.
func (l *Logger) LogRelease(released int) {
	if l == nil {
		return
	}
	l.DebugContext(context.Background(), "elements released",
		"released", released,
	)
}

// LogReleaseError logs a failure to release external storage. Callers
// continue after it; the storage is considered dropped either way.
func (l *Logger) LogReleaseError(err error) {
	if l == nil {
		return
	}
	l.WarnContext(context.Background(), "releasing storage failed",
		"error", err,
	)
}
