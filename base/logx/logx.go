// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the structured logging used across plotkit.
// Logging is silent by default; call [SetLogger] to enable output.
package logx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so callers
// skip attribute formatting entirely when logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by all plotkit packages.
// Passing nil restores the default silent logger.
// It is safe to call concurrently with logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// Debug logs at [slog.LevelDebug].
func Debug(msg string, args ...any) {
	logger.Load().Debug(msg, args...)
}

// Info logs at [slog.LevelInfo].
func Info(msg string, args ...any) {
	logger.Load().Info(msg, args...)
}

// Warn logs at [slog.LevelWarn].
func Warn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

// Error logs at [slog.LevelError].
func Error(msg string, args ...any) {
	logger.Load().Error(msg, args...)
}
