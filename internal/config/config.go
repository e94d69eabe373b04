package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string
}

// BackendConfig describes the rental REST API this front end consumes.
// It is read-only after Load; per-request code never mutates it.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LoggingConfig mirrors the knobs understood by shared/logging.
type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Logging LoggingConfig
}

// Load reads configuration from the environment. API_URL is the only required
// variable; everything else has a sensible default.
func Load() (*Config, error) {
	backendURL := strings.TrimSpace(os.Getenv("API_URL"))
	if backendURL == "" {
		return nil, fmt.Errorf("API_URL is required")
	}

	timeout := 5 * time.Second
	if raw := strings.TrimSpace(os.Getenv("API_TIMEOUT")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse API_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	return &Config{
		Server: ServerConfig{
			Port: envOrDefault("PORT", "8080"),
		},
		Backend: BackendConfig{
			BaseURL: backendURL,
			Timeout: timeout,
		},
		Logging: LoggingConfig{
			Level:     envOrDefault("LOG_LEVEL", "info"),
			Format:    envOrDefault("LOG_FORMAT", "text"),
			Directory: envOrDefault("LOG_DIR", "./logs"),
		},
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
