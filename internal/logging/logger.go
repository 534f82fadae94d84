// Package logging provides centralized logging functionality for the application.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug for detailed troubleshooting information.
	LevelDebug LogLevel = "debug"
	// LevelInfo for general operational information.
	LevelInfo LogLevel = "info"
	// LevelWarn for potentially harmful situations.
	LevelWarn LogLevel = "warn"
	// LevelError for error events that might still allow the application to continue.
	LevelError LogLevel = "error"
)

// defaultLogger is the shared logger instance.
var defaultLogger *slog.Logger

// init configures the default logger from the LOG_LEVEL environment
// variable. Logs go to stderr so the build summary printed on stdout
// stays machine-consumable.
func init() {
	level := LogLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if level == "" {
		level = LevelInfo
	}
	SetupLogger(os.Stderr, level)
}

// SetupLogger configures the logger with the specified output and level.
// Unrecognized levels fall back to info.
func SetupLogger(w io.Writer, level LogLevel) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func parseLevel(level LogLevel) slog.Level {
	switch level {
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

// Debug logs a message at debug level.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs a message at info level.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs a message at warn level.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs a message at error level.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// MaskSensitive masks sensitive data, such as API tokens, for logging.
func MaskSensitive(value string) string {
	if value == "" {
		return "<not set>"
	}
	if len(value) <= 4 {
		return "<set>"
	}
	return value[:4] + "..." + strings.Repeat("*", 3)
}
