package logger

import "log/slog"

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// StructuredLogger is implemented by loggers backed by log/slog.
// The request middleware uses it to emit key/value records.
type StructuredLogger interface {
	Logger
	Slog() *slog.Logger
}

// Structured returns the slog logger behind l, or the process default when l has none.
func Structured(l Logger) *slog.Logger {
	if s, ok := l.(StructuredLogger); ok {
		return s.Slog()
	}
	return slog.Default()
}
