package tempo

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// nopLogger is the stateless fallback used when no timeline in a tree has a
// logger configured.
var nopLogger = slog.New(nopHandler{})

// SetLogger configures the logger for this timeline and every descendant
// that has no logger of its own. By default tempo produces no log output.
// Pass nil to inherit from the parent again (or stay silent at the root).
//
// Log levels used by tempo:
//   - [slog.LevelDebug]: playback transitions and hierarchy changes
//   - [slog.LevelWarn]: debug-mode tree diagnostics
//   - [slog.LevelError]: recovered listener panics
func (tl *Timeline) SetLogger(l *slog.Logger) {
	tl.logger = l
}

// Logger returns the logger in effect for this timeline: its own, else the
// nearest ancestor's, else a silent logger.
func (tl *Timeline) Logger() *slog.Logger {
	for p := tl; p != nil; p = p.parent {
		if p.logger != nil {
			return p.logger
		}
	}
	return nopLogger
}
