package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Client
	APIBaseURL    string
	APIHostHeader string
	HTTPTimeout   time.Duration

	// Credential store
	SessionDBPath string
	SessionSecret string

	// Observability
	LogLevel  string
	SentryDSN string
	AppEnv    string

	// Sandbox backend
	Port            string
	DatabaseURL     string
	SandboxDBPath   string
	JWTSecret       string
	JWTAccessExpiry time.Duration
	CORSOrigins     string
	// TrustUserIDHeader accepts X-User-Id in place of a verified token.
	// Demo setups only.
	TrustUserIDHeader bool
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
		APIHostHeader: getEnv("API_HOST_HEADER", ""),
		HTTPTimeout:   parseDuration(getEnv("HTTP_TIMEOUT", "15s"), 15*time.Second),

		SessionDBPath: getEnv("SESSION_DB_PATH", "handygo-session.db"),
		SessionSecret: getEnv("SESSION_SECRET", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", "development"),

		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		SandboxDBPath:   getEnv("SANDBOX_DB_PATH", "handygo-sandbox.db"),
		JWTSecret:       getEnv("JWT_SECRET", "handygo-sandbox-secret"),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "24h"), 24*time.Hour),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),

		TrustUserIDHeader: parseBool(getEnv("TRUST_USER_ID_HEADER", "false")),
	}
}

// SandboxDSN prefers the postgres URL and falls back to the local sqlite file.
func (c *Config) SandboxDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.SandboxDBPath
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
