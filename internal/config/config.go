package config

import (
	"fmt"
	"os"
)

// Config holds all program settings, populated from environment variables.
type Config struct {
	DataFile  string
	ChartDir  string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		DataFile:  envOrDefault("DATA_FILE", "data/observations.csv"),
		ChartDir:  envOrDefault("CHART_DIR", "charts"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.DataFile == "" {
		return nil, fmt.Errorf("DATA_FILE must not be empty")
	}
	if cfg.ChartDir == "" {
		return nil, fmt.Errorf("CHART_DIR must not be empty")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q (want debug, info, warn or error)", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (want text or json)", cfg.LogFormat)
	}

	return cfg, nil
}

// envOrDefault returns the environment variable's value, or def when the
// variable is unset. An explicitly set empty value is returned as-is.
func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
