package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	// AllowedOrigins controls HTTP CORS. Empty slice means all
	// origins are permitted (dev default).
	AllowedOrigins []string

	// DefaultMatchMode is the equivalence policy applied when a
	// grading request does not select one per question.
	DefaultMatchMode string
	// RequestTimeout bounds a single grading request. The engine has
	// no intrinsic unbounded loop, but the handler imposes a ceiling
	// anyway since it fronts untrusted input.
	RequestTimeout time.Duration
	// RateLimitPerMinute is the per-IP request budget on the grading
	// API. Zero disables rate limiting.
	RateLimitPerMinute int
}

// Load reads configuration from environment variables with sensible
// defaults. It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "pretty"),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		DefaultMatchMode:   getEnv("DEFAULT_MATCH_MODE", "algebraic"),
		RequestTimeout:     time.Duration(getEnvInt("REQUEST_TIMEOUT_MS", 2000)) * time.Millisecond,
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 300),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed
// slice. Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
