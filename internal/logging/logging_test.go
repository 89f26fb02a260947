package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events      []*sentry.Event
	breadcrumbs []*sentry.Breadcrumb
}

func (r *recorder) CaptureEvent(event *sentry.Event) *sentry.EventID {
	r.events = append(r.events, event)
	id := sentry.EventID("test")
	return &id
}

func (r *recorder) AddBreadcrumb(b *sentry.Breadcrumb, _ *sentry.BreadcrumbHint) {
	r.breadcrumbs = append(r.breadcrumbs, b)
}

func TestSentryHandlerRoutesByLevel(t *testing.T) {
	rec := &recorder{}
	logger := slog.New(NewSentryHandler(rec)).With("component", "requests")

	logger.Info("ignored")
	logger.Warn("live call failed, serving sample data", "op", "requests.list", "error", errors.New("boom"))
	logger.Error("session store unavailable", "path", "handygo-session.db")

	require.Len(t, rec.breadcrumbs, 1)
	assert.Equal(t, "live call failed, serving sample data", rec.breadcrumbs[0].Message)
	assert.Equal(t, "requests.list", rec.breadcrumbs[0].Data["op"])
	assert.Equal(t, "boom", rec.breadcrumbs[0].Data["error"])
	assert.Equal(t, "requests", rec.breadcrumbs[0].Data["component"])

	require.Len(t, rec.events, 1)
	assert.Equal(t, sentry.LevelError, rec.events[0].Level)
	assert.Equal(t, "session store unavailable", rec.events[0].Message)
	assert.Equal(t, "handygo-session.db", rec.events[0].Extra["path"])
}

func TestSentryHandlerGroup(t *testing.T) {
	rec := &recorder{}
	slog.New(NewSentryHandler(rec)).WithGroup("http").Warn("slow", "status", 502)

	require.Len(t, rec.breadcrumbs, 1)
	assert.EqualValues(t, 502, rec.breadcrumbs[0].Data["http.status"])
}

type lazyPath string

func (p lazyPath) LogValue() slog.Value { return slog.StringValue("resolved:" + string(p)) }

func TestSentryHandlerAttrsKeepTheirGroup(t *testing.T) {
	rec := &recorder{}
	logger := slog.New(NewSentryHandler(rec)).
		With("op", "requests.cancel", "cause", errors.New("timeout"), "db", lazyPath("session.db")).
		WithGroup("http").
		With("method", "PUT").
		WithGroup("resp")

	logger.Error("cancel failed", "status", 504, slog.Group("body", "size", 0))

	require.Len(t, rec.events, 1)
	assert.Equal(t, map[string]any{
		"op":                  "requests.cancel",
		"cause":               "timeout",
		"db":                  "resolved:session.db",
		"http.method":         "PUT",
		"http.resp.status":    int64(504),
		"http.resp.body.size": int64(0),
	}, rec.events[0].Extra)
}

func TestMultiHandlerFansOut(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{}
	logger := slog.New(NewMultiHandler(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		NewSentryHandler(rec),
	))

	logger.Info("hello")
	logger.Error("bad")

	assert.Len(t, rec.events, 1)
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "hello", first["msg"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestSetupWritesJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup("warn", &buf, nil)
	slog.Info("dropped")
	slog.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandlerKeepsGoingWhenASinkFails(t *testing.T) {
	var buf bytes.Buffer
	sink := slog.NewJSONHandler(&buf, nil)
	h := NewMultiHandler(failingHandler{sink}, nil, sink)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "still written", 0))

	assert.EqualError(t, err, "sink down")
	assert.Contains(t, buf.String(), "still written")
}
