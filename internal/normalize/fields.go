package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// clock supplies the "now" default for absent timestamps.
var clock = time.Now

// present follows the backend client's historical truthiness rule: absent, null, "",
// 0 and false do not count; any list or object does, even when empty.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case bool:
		return t
	default:
		return true
	}
}

// first returns the first present value among keys.
func first(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v := raw[k]; present(v) {
			return v
		}
	}
	return nil
}

func object(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return ""
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func firstText(raw map[string]any, keys ...string) string {
	return text(first(raw, keys...))
}

func textOr(v any, fallback string) string {
	if s := text(v); s != "" {
		return s
	}
	return fallback
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		if ss, ok := v.([]string); ok {
			return append([]string{}, ss...)
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func timestamp(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func timestampOrNow(v any) time.Time {
	if t, ok := timestamp(v); ok {
		return t
	}
	return clock().UTC()
}
