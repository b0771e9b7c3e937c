package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration. Engine parameters (risk-free rate,
// confidence levels, scoring tables) are separate structured objects passed
// explicitly into the engine; this only covers operational settings.
type Config struct {
	DatabasePath          string
	ScoringTablesPath     string
	LogLevel              string
	Port                  int
	SnapshotRetentionDays int
	DevMode               bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnvAsInt("PORT", 8080),
		DevMode:               getEnvAsBool("DEV_MODE", false),
		DatabasePath:          getEnv("DATABASE_PATH", "./data/snapshots.db"),
		ScoringTablesPath:     getEnv("SCORING_TABLES_PATH", ""),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		SnapshotRetentionDays: getEnvAsInt("SNAPSHOT_RETENTION_DAYS", 365),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.SnapshotRetentionDays <= 0 {
		return fmt.Errorf("SNAPSHOT_RETENTION_DAYS must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
