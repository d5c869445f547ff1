// logger.go provides logging utilities and type aliases for the rttable project.

// Package logger provides logging utilities for the rttable project.
package logger

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// Logger is just a type-alias for logger.Logger for convenience.
type Logger = logger.Logger

func SetDefault(defaultLogger func() Logger) {
	logger.Default = defaultLogger
}

// Debug is just a shorthand for Log(ctx, logger.LevelDebug, ...)
func Debug(ctx context.Context, values ...any) {
	logger.Debug(ctx, values...)
}

// Info is just a shorthand for Log(ctx, logger.LevelInfo, ...)
func Info(ctx context.Context, values ...any) {
	logger.Info(ctx, values...)
}

// Warn is just a shorthand for Log(ctx, logger.LevelWarn, ...)
func Warn(ctx context.Context, values ...any) {
	logger.Warn(ctx, values...)
}

// Error is just a shorthand for Log(ctx, logger.LevelError, ...)
func Error(ctx context.Context, values ...any) {
	logger.Error(ctx, values...)
}

// Panic is just a shorthand for Log(ctx, logger.LevelPanic, ...)
//
// Be aware: Panic level also triggers a `panic`.
func Panic(ctx context.Context, values ...any) {
	logger.Panic(ctx, values...)
}

// Fatal is just a shorthand for Log(logger.LevelFatal, ...)
//
// Be aware: Fatal level also triggers an `os.Exit`.
func Fatal(ctx context.Context, values ...any) {
	logger.Fatal(ctx, values...)
}

// Debugf is just a shorthand for Logf(ctx, logger.LevelDebug, ...)
func Debugf(ctx context.Context, format string, args ...any) {
	logger.Debugf(ctx, format, args...)
}

// Infof is just a shorthand for Logf(ctx, logger.LevelInfo, ...)
func Infof(ctx context.Context, format string, args ...any) {
	logger.Infof(ctx, format, args...)
}

// Warnf is just a shorthand for Logf(ctx, logger.LevelWarn, ...)
func Warnf(ctx context.Context, format string, args ...any) {
	logger.Warnf(ctx, format, args...)
}

// Errorf is just a shorthand for Logf(ctx, logger.LevelError, ...)
func Errorf(ctx context.Context, format string, args ...any) {
	logger.Errorf(ctx, format, args...)
}

// Panicf is just a shorthand for Logf(ctx, logger.LevelPanic, ...)
//
// Be aware: Panic level also triggers a `panic`.
func Panicf(ctx context.Context, format string, args ...any) {
	logger.Panicf(ctx, format, args...)
}

// Fatalf is just a shorthand for Logf(ctx, logger.LevelFatal, ...)
//
// Be aware: Fatal level also triggers an `os.Exit`.
func Fatalf(ctx context.Context, format string, args ...any) {
	logger.Fatalf(ctx, format, args...)
}

// Logf logs an unstructured message. All contextual structured
// fields are also logged.
func Logf(ctx context.Context, level logger.Level, format string, args ...any) {
	logger.Logf(ctx, level, format, args...)
}
