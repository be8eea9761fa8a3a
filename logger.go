package engine

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can race with logging from the construction goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for the engine, its drivers and
// renderers. By default the engine produces no log output; the platform
// runner installs a logger when Run starts.
//
// The logger is also handed to gg so that drawing and GPU backend
// diagnostics end up in the same place. Pass nil to restore silence.
//
// Log levels used by the engine:
//   - [slog.LevelDebug]: state transitions, dropped events, driver iterations
//   - [slog.LevelInfo]: window created, renderer ready
//   - [slog.LevelWarn]: recoverable renderer problems (draw, resize)
//   - [slog.LevelError]: construction failures, protocol violations
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current engine logger.
// Driver and renderer packages call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
