package fractal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for fractal and its sub-packages.
// By default no log output is produced: the compiler itself never logs
// (errors are its sole outcome), and the render layer stays quiet unless a
// logger is installed. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: generated program sizes, pipeline state
//   - [slog.LevelInfo]: GPU adapter selection
//   - [slog.LevelWarn]: CPU fallback, resource release errors
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (render, internal/gpu)
// call this to share one configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
