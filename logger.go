package minabox

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so the
// lookup-miss log in the resolver costs one call per unregistered index
// and never builds a record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var (
	// silent is shared by every caller that has not configured logging.
	silent = slog.New(discardHandler{})

	// active holds the package logger; providers without WithLogger read
	// it on every resolution.
	active atomic.Pointer[slog.Logger]
)

func init() {
	active.Store(silent)
}

// SetLogger configures the package logger.
// By default, minabox produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by minabox:
//   - [slog.LevelDebug]: registry writes, lookups of unregistered indices
//
// Example:
//
//	minabox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the current package logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return active.Load()
}
