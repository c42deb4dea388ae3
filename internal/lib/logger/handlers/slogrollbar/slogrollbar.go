// Package slogrollbar forwards error-level log records to Rollbar while passing every record
// through to the wrapped handler.
package slogrollbar

import (
	"context"
	"log/slog"
	"os"

	"github.com/rollbar/rollbar-go"
)

// ReportFunc receives records at or above the reporting level.
type ReportFunc func(level slog.Level, msg string, extras map[string]interface{})

type Options struct {
	Token       string
	Environment string
	CodeVersion string
	// Level is the minimum level forwarded. Defaults to slog.LevelError.
	Level slog.Leveler
}

type Handler struct {
	next   slog.Handler
	level  slog.Leveler
	report ReportFunc
	attrs  []slog.Attr
	group  string
}

// New configures the global rollbar client and wraps next.
func New(next slog.Handler, opts Options) *Handler {
	rollbar.SetToken(opts.Token)
	rollbar.SetEnvironment(opts.Environment)
	rollbar.SetCodeVersion(opts.CodeVersion)
	if host, err := os.Hostname(); err == nil {
		rollbar.SetServerHost(host)
	}

	return NewWithReporter(next, opts.Level, reportToRollbar)
}

func NewWithReporter(next slog.Handler, level slog.Leveler, report ReportFunc) *Handler {
	if level == nil {
		level = slog.LevelError
	}

	return &Handler{
		next:   next,
		level:  level,
		report: report,
	}
}

// Flush blocks until queued items are sent.
func Flush() {
	rollbar.Wait()
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level) || level >= h.level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level.Level() {
		extras := make(map[string]interface{}, len(h.attrs)+r.NumAttrs())
		for _, a := range h.attrs {
			extras[h.key(a.Key)] = a.Value.Any()
		}
		r.Attrs(func(a slog.Attr) bool {
			extras[h.key(a.Key)] = a.Value.Any()
			return true
		})

		h.report(r.Level, r.Message, extras)
	}

	if !h.next.Enabled(ctx, r.Level) {
		return nil
	}

	return h.next.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: h.key(a.Key), Value: a.Value})
	}

	return &Handler{
		next:   h.next.WithAttrs(attrs),
		level:  h.level,
		report: h.report,
		attrs:  merged,
		group:  h.group,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		next:   h.next.WithGroup(name),
		level:  h.level,
		report: h.report,
		attrs:  h.attrs,
		group:  h.key(name),
	}
}

func (h *Handler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

func reportToRollbar(level slog.Level, msg string, extras map[string]interface{}) {
	if level > slog.LevelError {
		rollbar.Critical(msg, extras)
		return
	}
	rollbar.Error(msg, extras)
}
