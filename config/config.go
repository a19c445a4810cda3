// Package config has the configuration for the dataset generators
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	DataDir           string   // Directory the dataset files are written to
	LogDir            string   // Directory for rotating log files
	Env               string
	LogLevel          string
	LogRetentionWeeks int      // Number of weeks to keep log files
	MaxLogFileSize    int64    // Maximum log file size in bytes
	GenerateAt        []string // Daily HH:MM regeneration times for watch mode
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:           getEnvWithDefault("DATA_DIR", "data"),
		LogDir:            getEnvWithDefault("LOG_DIR", "logs"),
		Env:               getEnvWithDefault("ENV", "dev"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		LogRetentionWeeks: getIntEnvWithDefault("LOG_RETENTION_WEEKS", 4),         // 4 weeks default
		MaxLogFileSize:    getInt64EnvWithDefault("MAX_LOG_FILE_SIZE", 104857600), // 100MB default
		GenerateAt:        splitTimes(getEnvWithDefault("GENERATE_AT", "06:00")),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// splitTimes splits a semicolon-separated HH:MM list, dropping empty
// elements
func splitTimes(value string) []string {
	parts := strings.Split(value, ";")
	times := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			times = append(times, part)
		}
	}
	return times
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validateDir(cfg.DataDir, "DATA_DIR"); err != nil {
		return fmt.Errorf("invalid DATA_DIR: %w", err)
	}

	if err := validateDir(cfg.LogDir, "LOG_DIR"); err != nil {
		return fmt.Errorf("invalid LOG_DIR: %w", err)
	}

	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateLogRetentionWeeks(cfg.LogRetentionWeeks); err != nil {
		return fmt.Errorf("invalid LOG_RETENTION_WEEKS: %w", err)
	}

	if err := validateMaxLogFileSize(cfg.MaxLogFileSize); err != nil {
		return fmt.Errorf("invalid MAX_LOG_FILE_SIZE: %w", err)
	}

	if err := validateGenerateAt(cfg.GenerateAt); err != nil {
		return fmt.Errorf("invalid GENERATE_AT: %w", err)
	}

	return nil
}

// validateDir validates a directory configuration value
func validateDir(dir string, configName string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("%s cannot be empty", configName)
	}

	if strings.ContainsRune(dir, 0) {
		return fmt.Errorf("%s contains an invalid character", configName)
	}

	return nil
}

// validateEnv validates the ENV environment variable
func validateEnv(env string) error {
	if env == "" {
		return fmt.Errorf("ENV cannot be empty")
	}

	validEnvs := []string{"dev", "staging", "prod", "test"}
	env = strings.ToLower(env)

	for _, validEnv := range validEnvs {
		if env == validEnv {
			return nil
		}
	}

	return fmt.Errorf("ENV must be one of: %v, got: %s", validEnvs, env)
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateLogRetentionWeeks validates the LOG_RETENTION_WEEKS environment variable
func validateLogRetentionWeeks(weeks int) error {
	if weeks <= 0 {
		return fmt.Errorf("LOG_RETENTION_WEEKS must be positive, got: %d", weeks)
	}

	if weeks > 52 { // 1 year maximum
		return fmt.Errorf("LOG_RETENTION_WEEKS is too large (max 52 weeks), got: %d", weeks)
	}

	return nil
}

// validateMaxLogFileSize validates the MAX_LOG_FILE_SIZE environment variable
func validateMaxLogFileSize(size int64) error {
	if size <= 0 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE must be positive, got: %d", size)
	}

	// Minimum 1MB, maximum 1GB
	if size < 1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too small (min 1MB), got: %d bytes", size)
	}

	if size > 1024*1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too large (max 1GB), got: %d bytes", size)
	}

	return nil
}

// validateGenerateAt validates the GENERATE_AT environment variable.
// Every element must be a 24h HH:MM clock time.
func validateGenerateAt(times []string) error {
	if len(times) == 0 {
		return fmt.Errorf("GENERATE_AT must contain at least one HH:MM time")
	}

	for _, at := range times {
		if _, err := time.Parse("15:04", at); err != nil {
			return fmt.Errorf("GENERATE_AT entry %q is not a valid HH:MM time: %w", at, err)
		}
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64EnvWithDefault gets an environment variable as int64 with a default value
func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"DATA_DIR",
		"LOG_DIR",
		"ENV",
		"LOG_LEVEL",
		"LOG_RETENTION_WEEKS",
		"MAX_LOG_FILE_SIZE",
		"GENERATE_AT",
	}
}
