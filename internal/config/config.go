// Package config loads client configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client.
type Config struct {
	// API endpoint configuration
	API APIConfig

	// Session persistence configuration
	Session SessionConfig

	// Logging configuration
	Logging LoggingConfig
}

// APIConfig holds the remote service configuration.
type APIConfig struct {
	BaseURL string
}

// Session storage backends.
const (
	SessionBackendFile    = "file"
	SessionBackendKeyring = "keyring"
)

// SessionConfig selects where the session is persisted.
type SessionConfig struct {
	Backend string // file, keyring
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	baseURL := os.Getenv("EDITION_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	sessionBackend := os.Getenv("EDITION_SESSION_BACKEND")
	if sessionBackend == "" {
		sessionBackend = SessionBackendFile
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "console"
	}

	return &Config{
		API: APIConfig{
			BaseURL: baseURL,
		},
		Session: SessionConfig{
			Backend: sessionBackend,
		},
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
	}, nil
}
