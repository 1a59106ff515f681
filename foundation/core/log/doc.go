// Package log provides structured logging for textkit binaries.
//
// Package: log
// Title: Structured Logging for textkit
// Description: A small structured logger with levels, fields and output
//              formats, built on logrus. Errors from the textkit error model
//              are expanded into code, severity and operation fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-10-15 v0.2.0: Backed by logrus, dropped async buffering
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger.Info("command finished", log.Fields{"command": "limit"})
//	logger.WithError(err).Error("command failed")
//
// The string utilities themselves never log; only cmd/ packages do.
package log
