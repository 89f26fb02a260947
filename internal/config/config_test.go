package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"API_BASE_URL", "HTTP_TIMEOUT", "SESSION_DB_PATH", "DATABASE_URL", "SANDBOX_DB_PATH", "JWT_ACCESS_EXPIRY", "TRUST_USER_ID_HEADER"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "handygo-session.db", cfg.SessionDBPath)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, "handygo-sandbox.db", cfg.SandboxDSN())
	assert.False(t, cfg.TrustUserIDHeader)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.test/v1")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/handygo")
	t.Setenv("TRUST_USER_ID_HEADER", "true")

	cfg := Load()

	assert.Equal(t, "http://api.test/v1", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "postgres://u:p@db/handygo", cfg.SandboxDSN())
	assert.True(t, cfg.TrustUserIDHeader)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("1"))
	assert.False(t, parseBool("yes"))
	assert.False(t, parseBool(""))
}
