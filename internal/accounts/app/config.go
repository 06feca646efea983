package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer        string // Issuer claim stamped into every token (default: accounts)
	RefreshSecret string // Required: HS256 secret for refresh tokens
	AccessSecret  string // Required: HS256 secret for access tokens, independent of RefreshSecret

	AccessTokenTTL time.Duration // Access token lifetime (default: 1h)

	DatabaseFile string // Path to the SQLite database file (default: ./accounts.db)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	// ShowServerErrors attaches error details to server error responses.
	// Keep off outside development.
	ShowServerErrors bool

	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one exists next to the binary.
func LoadConfig() (Config, error) {
	// Missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:              getEnvOrDefault("ACCOUNTS_ISSUER", "accounts"),
		RefreshSecret:       os.Getenv("ACCOUNTS_REFRESH_SECRET"),
		AccessSecret:        os.Getenv("ACCOUNTS_ACCESS_SECRET"),
		AccessTokenTTL:      getEnvDurationOrDefault("ACCOUNTS_ACCESS_TOKEN_TTL", time.Hour),
		DatabaseFile:        getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShowServerErrors:    getEnvBoolOrDefault("ACCOUNTS_SHOW_SERVER_ERRORS", false),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.RefreshSecret == "" {
		return cfg, fmt.Errorf("ACCOUNTS_REFRESH_SECRET is required")
	}
	if cfg.AccessSecret == "" {
		return cfg, fmt.Errorf("ACCOUNTS_ACCESS_SECRET is required")
	}
	if cfg.RefreshSecret == cfg.AccessSecret {
		return cfg, fmt.Errorf("refresh and access secrets must differ")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
