// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-carried slog logger for voxcli.
// The base log level comes from the VOXCLI_LOG_LEVEL environment variable
// and can be raised at runtime from the command line verbosity count flag:
// zero occurrences leave the level alone, one raises it to info and two or
// more raise it to debug.
package ctxlog

import (
	"context"
	"log/slog"
	"os"
)

type loggerKey struct{}

// LevelVar holds the active log level. The pretty handler and the
// verbosity flag both act on it.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is the logger used when a context carries none.
var DefaultLogger = slog.New(NewPretty(os.Stderr, LevelVar))

func init() {
	LevelVar.Set(levelFromEnv())
}

// New returns a context carrying the given logger. A nil logger selects
// the default logger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger carried by the context, or the default logger.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs a debug message with the context's logger.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Info logs an info message with the context's logger.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Warn logs a warning message with the context's logger.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the context's logger.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// SetVerbosity maps a command line verbosity count onto the log level.
// A count of zero leaves the configured level unchanged.
func SetVerbosity(count int) {
	switch {
	case count <= 0:
		return
	case count == 1:
		LevelVar.Set(slog.LevelInfo)
	default:
		LevelVar.Set(slog.LevelDebug)
	}
}

func levelFromEnv() slog.Level {
	switch os.Getenv("VOXCLI_LOG_LEVEL") {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
