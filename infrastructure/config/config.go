package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Runtime configuration
	Environment string

	// Editor configuration
	DefaultLayer   string
	MaxHistorySize int

	// Logging
	LogLevel string

	// Feature flags
	EnableSnapshotDiagnostics bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),

		// Editor configuration
		DefaultLayer:   getEnv("DEFAULT_LAYER", "conceptual"),
		MaxHistorySize: getEnvInt("MAX_HISTORY_SIZE", 50),

		// Logging and features
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		EnableSnapshotDiagnostics: getEnvBool("ENABLE_SNAPSHOT_DIAGNOSTICS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.DefaultLayer {
	case "conceptual", "logical", "physical":
	default:
		return fmt.Errorf("DEFAULT_LAYER must be conceptual, logical or physical, got %q", c.DefaultLayer)
	}

	if c.MaxHistorySize < 1 {
		return fmt.Errorf("MAX_HISTORY_SIZE must be at least 1")
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
