package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/handygo/tenant-client/internal/config"
	"github.com/handygo/tenant-client/internal/sample"
	"github.com/handygo/tenant-client/internal/session"
	"github.com/handygo/tenant-client/internal/transport"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	api      *transport.Client
	keychain *session.Keychain
	repo     *sample.Repository
}

// newFixture wires a transport against handler. A nil handler points the client
// at a closed server so every live call fails at the network level.
func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	var baseURL string
	if handler == nil {
		srv := httptest.NewServer(http.NotFoundHandler())
		baseURL = srv.URL
		srv.Close()
	} else {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		baseURL = srv.URL
	}

	kc := session.NewKeychain(session.NewMemoryStore())
	return &fixture{
		api:      transport.New(&config.Config{APIBaseURL: baseURL, HTTPTimeout: 2 * time.Second}, kc),
		keychain: kc,
		repo:     sample.NewRepository(func() time.Time { return fixedNow }),
	}
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func ctx() context.Context {
	return context.Background()
}
