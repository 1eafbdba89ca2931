package bitmap

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so log calls
// on a silent package logger do no formatting work.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var silent = slog.New(discardHandler{})

// current is the logger used by Write and by internal/scene.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger sets the logger that receives file-write events. The package
// logs nothing until SetLogger is called; nil makes it silent again.
// Safe to call while other goroutines are writing bitmaps.
//
// Write logs at [slog.LevelDebug] for created files and failed creates,
// and at [slog.LevelWarn] when a partially written file cannot be removed.
// internal/scene logs one [slog.LevelInfo] record per image.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent logger.
func Logger() *slog.Logger {
	return current.Load()
}
