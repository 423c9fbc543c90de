package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// "HH:MM:SS.ms" timestamps (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long an operation took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered gallery (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() if there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// renderLogHooks logs figure and animation saves at debug level, and
// failures at error level.
type renderLogHooks struct {
	logger *log.Logger
}

func (h renderLogHooks) OnFigureSaved(_ context.Context, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("save figure", "path", path, "error", err)
		return
	}
	h.logger.Debug("saved figure", "path", path, "duration", d.Round(time.Millisecond))
}

func (h renderLogHooks) OnAnimationSaved(_ context.Context, path string, frames int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("save animation", "path", path, "frames", frames, "error", err)
		return
	}
	h.logger.Debug("saved animation", "path", path, "frames", frames, "duration", d.Round(time.Millisecond))
}

// httpLogHooks logs gallery requests that did not succeed.
type httpLogHooks struct {
	logger *log.Logger
}

func (h httpLogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	if status >= 400 {
		h.logger.Warn("request", "method", method, "path", path, "status", status, "duration", d)
	}
}
