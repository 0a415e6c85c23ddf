// Package config handles adapter configuration from environment variables
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the MCP adapter needs at startup.
type Config struct {
	APIKey       string // aixbt API key, sent as x-api-key on every upstream call
	LogLevel     string // "debug", "info", "warn", "error"
	LogFormat    string // "text" or "json"
	MetricsAddr  string // optional listen address for /metrics; empty disables it
	OTLPEndpoint string // optional OTLP gRPC endpoint; empty disables tracing
}

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Load reads configuration from environment variables.
// It loads .env file if present (for local development).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:       os.Getenv("API_KEY"), // Required, no default
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:    getEnv("LOG_FORMAT", DefaultLogFormat),
		MetricsAddr:  os.Getenv("METRICS_ADDR"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
