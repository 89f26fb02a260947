package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/getsentry/sentry-go"
)

// Setup installs the global slog logger: JSON to w, plus Sentry when hub is non-nil.
func Setup(level string, w io.Writer, hub *sentry.Hub) {
	var handler slog.Handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	if hub != nil {
		handler = NewMultiHandler(handler, NewSentryHandler(hub))
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
