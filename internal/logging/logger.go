// Package logging provides structured logging functionality for configdrift
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/k0ns0l/configdrift/internal/errors"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat represents the log output format
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level      LogLevel  `yaml:"level" mapstructure:"level"`
	Format     LogFormat `yaml:"format" mapstructure:"format"`
	TimeFormat string    `yaml:"time_format" mapstructure:"time_format"`
	AddSource  bool      `yaml:"add_source" mapstructure:"add_source"`
}

// DefaultLoggerConfig returns a default logger configuration. Logs always go
// to stderr so they never mix with the drift report on stdout.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      LogLevelInfo,
		Format:     LogFormatText,
		TimeFormat: time.RFC3339,
		AddSource:  false,
	}
}

// Logger wraps slog with configdrift-specific helpers
type Logger struct {
	*slog.Logger
	config LoggerConfig
}

// NewLogger creates a logger writing to w
func NewLogger(config LoggerConfig, w io.Writer) *Logger {
	var level slog.Level
	switch config.Level {
	case LogLevelDebug:
		level = slog.LevelDebug
	case LogLevelInfo:
		level = slog.LevelInfo
	case LogLevelWarn:
		level = slog.LevelWarn
	case LogLevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch config.Format {
	case LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
		config: config,
	}
}

// LogError logs a configdrift error with its structured fields
func (l *Logger) LogError(ctx context.Context, err error, msg string) {
	if de, ok := err.(*errors.DriftError); ok {
		attrs := []slog.Attr{
			slog.String("error_type", string(de.Type)),
			slog.String("error_code", de.Code),
		}

		if de.Guidance != "" {
			attrs = append(attrs, slog.String("guidance", de.Guidance))
		}

		for key, value := range de.Context {
			attrs = append(attrs, slog.Any(fmt.Sprintf("ctx_%s", key), value))
		}

		if de.Cause != nil {
			attrs = append(attrs, slog.String("cause", de.Cause.Error()))
		}

		l.LogAttrs(ctx, slog.LevelError, msg, attrs...)
		return
	}

	l.Error(msg, "error", err)
}

// WithComponent returns a logger with component context
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", component),
		config: l.config,
	}
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	return l.config.Level
}

// IsDebugEnabled returns true if debug logging is enabled
func (l *Logger) IsDebugEnabled() bool {
	return l.config.Level == LogLevelDebug
}

// Global logger instance
var globalLogger *Logger

// InitGlobalLogger initializes the global logger
func InitGlobalLogger(config LoggerConfig) {
	globalLogger = NewLogger(config, os.Stderr)
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		globalLogger = NewLogger(DefaultLoggerConfig(), os.Stderr)
	}
	return globalLogger
}
