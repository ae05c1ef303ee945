package locgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with locgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLocale adds a locale field to the logger.
func (l *Logger) WithLocale(locale string) *Logger {
	return &Logger{
		Logger: l.Logger.With("locale", locale),
	}
}

// WithMajor adds a library major version field to the logger.
func (l *Logger) WithMajor(major int) *Logger {
	return &Logger{
		Logger: l.Logger.With("major", major),
	}
}

// LogLibraryLoaded logs a successful library registration.
func (l *Logger) LogLibraryLoaded(major int, version, i18nName, ucName string) {
	l.Debug("library loaded",
		"major", major,
		"version", version,
		"i18n", i18nName,
		"uc", ucName,
	)
}

// LogLibrarySkipped logs a version that could not be registered. Absence
// is routine and logs at debug; anything else is a warning.
func (l *Logger) LogLibrarySkipped(major int, absent bool, err error) {
	if absent {
		l.Debug("library not installed",
			"major", major,
			"error", err,
		)
	} else {
		l.Warn("library unusable",
			"major", major,
			"error", err,
		)
	}
}

// LogSearchResult logs the outcome of a collator search at the given
// level.
func (l *Logger) LogSearchResult(level slog.Level, locale, requested, libVersion, collVersion string) {
	l.Log(context.Background(), level, "collator search",
		"locale", locale,
		"requested_version", requested,
		"library_version", libVersion,
		"collator_version", collVersion,
	)
}

// LogVersionMismatch logs a difference between a requested or implied
// version and what was actually found, at the given level.
func (l *Logger) LogVersionMismatch(level slog.Level, subject, want, got string) {
	l.Log(context.Background(), level, "version mismatch",
		"subject", subject,
		"want", want,
		"got", got,
	)
}
