// Package logging provides structured logging for golint-quality builds.
// It wraps log/slog and tags every entry of one invocation with a build id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Output formats supported by the logger
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger is a thin wrapper over slog.Logger. It is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a Logger writing to w.
//
// level is one of DEBUG, INFO, WARN, ERROR (case-insensitive, INFO when
// unrecognized). format is "json" or "text" (the default).
func NewLogger(w io.Writer, level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewBuildID returns a fresh identifier for one build invocation.
func NewBuildID() string {
	return uuid.NewString()
}

// WithBuild returns a child logger tagging entries with the build id.
func (l *Logger) WithBuild(id string) *Logger {
	return l.With("build_id", id)
}

// WithProject returns a child logger tagging entries with the project name.
func (l *Logger) WithProject(name string) *Logger {
	return l.With("project", name)
}

// WithTask returns a child logger tagging entries with the task name.
func (l *Logger) WithTask(name string) *Logger {
	return l.With("task", name)
}

// With returns a child logger with arbitrary key-value attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.slog().With(args...)}
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog().Debug(msg, args...)
}

// Info logs at INFO level.
func (l *Logger) Info(msg string, args ...any) {
	l.slog().Info(msg, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog().Warn(msg, args...)
}

// Error logs at ERROR level.
func (l *Logger) Error(msg string, args ...any) {
	l.slog().Error(msg, args...)
}

// DebugContext logs at DEBUG level with a context.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.slog().DebugContext(ctx, msg, args...)
}

// slog returns the underlying logger; a nil Logger discards.
func (l *Logger) slog() *slog.Logger {
	if l == nil || l.logger == nil {
		return Nop().logger
	}
	return l.logger
}
