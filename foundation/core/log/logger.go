// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with contextual fields and integration with the textkit error
//              model. Loggers are immutable; With* methods return copies.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-10-15 v0.2.0: logrus backend, timer folded into the logger

package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Fields holds structured key-value data attached to a log entry
type Fields map[string]interface{}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// Logger represents a structured logger with contextual information
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger writing JSON at the default level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	base := logrus.New()
	base.SetLevel(config.Level.logrus())
	base.SetFormatter(config.Format.formatter())
	if config.Output != nil {
		base.SetOutput(config.Output)
	} else {
		base.SetOutput(os.Stderr)
	}

	entry := logrus.NewEntry(base)
	if config.Name != "" {
		entry = entry.WithField("logger", config.Name)
	}
	return &Logger{entry: entry}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelError, Output: io.Discard})
}

// WithField returns a logger that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// WithFields returns a logger that adds all fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithError attaches err. textkit errors additionally contribute their
// code, severity and operation.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	entry := l.entry.WithError(err)
	if mdwerror.GetCode(err) != mdwerror.CodeUnknown {
		entry = entry.WithFields(logrus.Fields{
			"error_code":     mdwerror.GetCode(err).String(),
			"error_severity": mdwerror.GetSeverity(err).String(),
		})
		var mdwErr *mdwerror.Error
		if errors.As(err, &mdwErr) && mdwErr.Operation() != "" {
			entry = entry.WithField("operation", mdwErr.Operation())
		}
	}
	return &Logger{entry: entry}
}

// Trace logs at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, fields...)
}

// Debug logs at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

// IsLevelEnabled reports whether entries at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l.entry.Logger.IsLevelEnabled(level.logrus())
}

func (l *Logger) log(level Level, message string, fields ...Fields) {
	entry := l.entry
	for _, f := range fields {
		entry = entry.WithFields(logrus.Fields(f))
	}
	entry.Log(level.logrus(), message)
}

// Timer measures an operation and logs its duration when stopped
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
}

// StartTimer starts timing operation
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{logger: l, operation: operation, start: time.Now()}
}

// Stop logs the elapsed time at debug level and returns it
func (t *Timer) Stop(fields ...Fields) time.Duration {
	elapsed := time.Since(t.start)
	all := append([]Fields{{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Microseconds()) / 1000,
	}}, fields...)
	t.logger.Debug("operation completed", all...)
	return elapsed
}
