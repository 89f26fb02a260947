package logging

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// Reporter is the part of *sentry.Hub the handler uses.
type Reporter interface {
	CaptureEvent(event *sentry.Event) *sentry.EventID
	AddBreadcrumb(breadcrumb *sentry.Breadcrumb, hint *sentry.BreadcrumbHint)
}

// SentryHandler turns WARN records into breadcrumbs and ERROR+ records into events,
// so an error report carries the degraded calls that preceded it.
type SentryHandler struct {
	reporter Reporter
	// preset holds WithAttrs values, keyed with the group active when they were added.
	preset map[string]any
	group  string
}

func NewSentryHandler(reporter Reporter) *SentryHandler {
	return &SentryHandler{reporter: reporter}
}

func (h *SentryHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

func (h *SentryHandler) Handle(_ context.Context, record slog.Record) error {
	data := make(map[string]any, len(h.preset)+record.NumAttrs())
	for k, v := range h.preset {
		data[k] = v
	}
	record.Attrs(func(a slog.Attr) bool {
		flatten(data, h.group, a)
		return true
	})

	if record.Level < slog.LevelError {
		h.reporter.AddBreadcrumb(&sentry.Breadcrumb{
			Type:      "default",
			Category:  "log",
			Message:   record.Message,
			Level:     sentry.LevelWarning,
			Data:      data,
			Timestamp: record.Time,
		}, nil)
		return nil
	}

	event := sentry.NewEvent()
	event.Level = sentry.LevelError
	event.Logger = "slog"
	event.Message = record.Message
	event.Timestamp = record.Time
	event.Extra = data
	h.reporter.CaptureEvent(event)
	return nil
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.preset = make(map[string]any, len(h.preset)+len(attrs))
	for k, v := range h.preset {
		next.preset[k] = v
	}
	for _, a := range attrs {
		flatten(next.preset, h.group, a)
	}
	return &next
}

func (h *SentryHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = join(h.group, name)
	return &next
}

// flatten writes a under prefix, expanding groups into dotted keys. Values are
// resolved and errors reduced to their message.
func flatten(data map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			flatten(data, join(prefix, a.Key), ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	val := v.Any()
	if err, ok := val.(error); ok {
		val = err.Error()
	}
	data[join(prefix, a.Key)] = val
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "." + key
}
