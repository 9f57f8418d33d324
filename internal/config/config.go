package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port             string
	DatabaseURL      string
	SessionSecret    string
	SessionIssuer    string
	SessionTTL       time.Duration
	CookieSecure     bool
	CORSOrigins      []string
	GeminiAPIKey     string
	GeminiModel      string
	AssistantTimeout time.Duration
}

// Load reads configuration from the environment and performs minimal
// validation. DatabaseURL may be empty: the server then runs in demo mode
// with an in-memory store.
func Load() (Config, error) {
	cfg := Config{
		Port:          fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SessionSecret: strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		SessionIssuer: fallback(os.Getenv("SESSION_ISSUER"), "forfeo-lab"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		CORSOrigins:   parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   fallback(os.Getenv("GEMINI_MODEL"), "gemini-2.0-flash"),
	}

	cfg.SessionTTL = minutes(os.Getenv("SESSION_TTL_MINUTES"), 60) * time.Minute
	cfg.AssistantTimeout = seconds(os.Getenv("ASSISTANT_TIMEOUT_SECONDS"), 20) * time.Second

	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// DemoMode reports whether the server runs without a persistent store.
func (c Config) DemoMode() bool {
	return c.DatabaseURL == ""
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func minutes(value string, def int) time.Duration {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		return time.Duration(n)
	}
	return time.Duration(def)
}

func seconds(value string, def int) time.Duration {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		return time.Duration(n)
	}
	return time.Duration(def)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
