package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	APIBaseURL   string
	HTTPAddr     string
	LogLevel     string
	Env          string // dev|prod
	SentryDSN    string
	CookieSecure bool
}

// Load reads configuration from the environment. API_BASE_URL is the
// only required variable: it points at the sanctions backend.
func Load() (*Config, error) {
	base := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if base == "" {
		return nil, fmt.Errorf("API_BASE_URL no está configurada")
	}

	cfg := &Config{
		APIBaseURL:   strings.TrimRight(base, "/"),
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		Env:          getenv("ENV", "dev"),
		SentryDSN:    os.Getenv("SENTRY_DSN"),
		CookieSecure: getenv("COOKIE_SECURE", "false") == "true",
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
