package application

import (
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultCacheSize keeps one rendered timeline per chart range the
	// app keeps warm at once.
	DefaultCacheSize = 32
	// DefaultMaxPoints is the timeline display budget.
	DefaultMaxPoints = 12
)

// RuntimeConfig holds all runtime configuration from CLI flags, environment variables, and .env file
type RuntimeConfig struct {
	// Timeline rendering
	CacheSize int
	MaxPoints int
	Window    string

	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// History file path (dev harness input)
	HistoryPath string
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env vars > .env file > defaults
func LoadRuntimeConfig(cacheSize, maxPoints int, window, logLevel, logFormat, logOutput, historyPath string) *RuntimeConfig {
	cfg := &RuntimeConfig{
		CacheSize:   getIntValue(cacheSize, "SHAPELOG_CACHE_SIZE", DefaultCacheSize),
		MaxPoints:   getIntValue(maxPoints, "SHAPELOG_MAX_POINTS", DefaultMaxPoints),
		Window:      getValue(window, "SHAPELOG_WINDOW", "week"),
		LogLevel:    getValue(logLevel, "SHAPELOG_LOG_LEVEL", "INFO"),
		LogFormat:   getValue(logFormat, "SHAPELOG_LOG_FORMAT", "text"),
		LogOutput:   getValue(logOutput, "SHAPELOG_LOG_OUTPUT", "stderr"),
		HistoryPath: getValue(historyPath, "SHAPELOG_HISTORY", ""),
	}

	return cfg
}

// getValue returns the first non-empty value from CLI flag, env var, or default
func getValue(cliValue, envKey, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntValue returns the first positive value from CLI flag, env var, or default
func getIntValue(cliValue int, envKey string, defaultValue int) int {
	if cliValue > 0 {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(envValue)); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

// Validate checks that required configuration is present
func (c *RuntimeConfig) Validate() error {
	if c.CacheSize <= 0 {
		return &ConfigError{Field: "cache-size", Message: "cache size must be positive (set SHAPELOG_CACHE_SIZE or use --cache-size flag)"}
	}
	if c.MaxPoints <= 0 {
		return &ConfigError{Field: "max-points", Message: "max points must be positive (set SHAPELOG_MAX_POINTS or use --max-points flag)"}
	}
	if c.HistoryPath == "" {
		return &ConfigError{Field: "history", Message: "history file path is required (set SHAPELOG_HISTORY or use --history flag)"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
