// Package config handles loading and managing application configuration.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Backend BackendConfig
	Auth    AuthConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port    string
	GinMode string // "debug", "release", or "test"
}

// StorageConfig selects the repository strategy wired at startup.
//
// Mode is one of "memory" (in-process mock stores), "dynamo" (DynamoDB
// order store, memory for the rest) or "api" (remote marketplace
// backend).
type StorageConfig struct {
	Mode string
}

// BackendConfig holds the remote marketplace API settings used in "api"
// mode.
type BackendConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// AuthConfig holds token-signing settings.
type AuthConfig struct {
	SecretKey string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Storage: StorageConfig{
			Mode: getEnv("STORAGE_MODE", "memory"),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
			Token:   getEnv("BACKEND_API_TOKEN", ""),
			Timeout: time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Auth: AuthConfig{
			SecretKey: getEnv("AUTH_SECRET_KEY", "dev-secret"),
		},
	}
}

// getEnv retrieves an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as an integer with a fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
