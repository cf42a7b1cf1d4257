// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Game      GameConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// GameConfig holds options passed to the game core
type GameConfig struct {
	// Seed for level generation. 0 means time seeded.
	Seed int64
}

// LogConfig holds logger options
type LogConfig struct {
	Level  string // logrus level name
	Format string // "json" or "text"
	File   string // output path; empty means stderr
}

// TelemetryConfig holds OpenTelemetry / Honeycomb options
type TelemetryConfig struct {
	Enabled bool
	APIKey  string
	Dataset string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   os.Getenv("LOG_FILE"),
		},
		Telemetry: TelemetryConfig{
			Enabled: getEnvAsBoolOrDefault("TELEMETRY_ENABLED", true),
			APIKey:  os.Getenv("HONEYCOMB_DUNGEONSOFDOOM_API_KEY"),
			Dataset: getEnvOrDefault("HONEYCOMB_DUNGEONSOFDOOM_DATASET", "dungeonsofdoom"),
		},
	}

	if value := os.Getenv("DUNGEON_SEED"); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("DUNGEON_SEED must be an integer: %w", err)
		}
		cfg.Game.Seed = seed
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
