// Package transport is the JSON-over-HTTP client the domain services use to reach
// the HandyGo backend.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/handygo/tenant-client/internal/config"
	"github.com/handygo/tenant-client/internal/session"
)

var ErrMalformedResponse = errors.New("malformed response body")

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	hostHeader string
	httpClient *http.Client
	keychain   *session.Keychain
}

// New builds a client from config. keychain may be nil, in which case no
// identity headers are sent.
func New(cfg *config.Config, keychain *session.Keychain) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		hostHeader: cfg.APIHostHeader,
		httpClient: &http.Client{Timeout: timeout},
		keychain:   keychain,
	}
}

func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do sends one request and decodes the JSON response into generic values.
// An empty 2xx body decodes to an empty object.
func (c *Client) Do(ctx context.Context, method, path string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w from %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	return decoded, nil
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.hostHeader != "" {
		req.Host = c.hostHeader
	}
	if c.keychain == nil {
		return
	}

	if token, err := c.keychain.Token(ctx); err != nil {
		slog.Debug("could not read stored token", "error", err)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if user, err := c.keychain.User(ctx); err != nil {
		slog.Debug("could not read stored user", "error", err)
	} else if user != nil && user.ID != "" {
		req.Header.Set("X-User-Id", user.ID)
	}
}
