// Package config provides application configuration management with support for
// environment variables, command-line overrides, and .env files.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	API       APIConfig
	State     StateConfig
	KeepAlive KeepAliveConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// APIConfig holds remote API configuration.
type APIConfig struct {
	BaseURL string        // ForeSky API base URL (default: http://localhost:8000)
	Timeout time.Duration // HTTP request timeout (default: 30s)
	RPS     float64       // Outbound requests per second (default: 5)
	Burst   int           // Outbound burst size (default: 10)
}

// StateConfig holds persisted client state configuration.
type StateConfig struct {
	// DataDir is the directory holding the local state database
	// (session token, theme preference). Default: ~/.foresky
	DataDir string
}

// KeepAliveConfig holds liveness ping configuration.
type KeepAliveConfig struct {
	Enabled  bool
	Interval time.Duration // default: 5m, matching the hosted API's idle spin-down
}

// Overrides carries command-line values that take precedence over the
// environment. Empty fields are ignored.
type Overrides struct {
	Environment string
	LogLevel    string
	BaseURL     string
	DataDir     string
}

// Load builds configuration with precedence:
// 1. Command-line overrides (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(ov Overrides) (*Config, error) {
	// Load .env if present (silently ignore if not found).
	_ = loadEnvFile(".env")

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(ov.Environment, "FORESKY_ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(ov.LogLevel, "FORESKY_LOG_LEVEL", "warn"),
		},
		API: APIConfig{
			BaseURL: getConfigValue(ov.BaseURL, "FORESKY_API_URL", "http://localhost:8000"),
			RPS:     getFloatConfigValue("", "FORESKY_API_RPS", 5),
			Burst:   getIntConfigValue("", "FORESKY_API_BURST", 10),
		},
		State: StateConfig{
			DataDir: getConfigValue(ov.DataDir, "FORESKY_DATA_DIR", "~/.foresky"),
		},
		KeepAlive: KeepAliveConfig{
			Enabled: getBoolConfigValue("", "FORESKY_KEEPALIVE", true),
		},
	}

	timeoutStr := getConfigValue("", "FORESKY_API_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid API timeout %q: %w", timeoutStr, err)
	}
	cfg.API.Timeout = timeout

	intervalStr := getConfigValue("", "FORESKY_KEEPALIVE_INTERVAL", "5m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid keepalive interval %q: %w", intervalStr, err)
	}
	cfg.KeepAlive.Interval = interval

	if err := cfg.expandDataDir(); err != nil {
		return nil, fmt.Errorf("invalid data dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %q", c.API.BaseURL)
	}

	if c.API.Timeout <= 0 {
		return errors.New("API timeout must be positive")
	}
	if c.API.RPS <= 0 {
		return errors.New("API rate limit must be positive")
	}
	if c.API.Burst < 1 {
		return errors.New("API burst must be at least 1")
	}
	if c.KeepAlive.Interval <= 0 {
		return errors.New("keepalive interval must be positive")
	}
	if c.State.DataDir == "" {
		return errors.New("data dir is required")
	}
	return nil
}

// StatePath returns the path of the local state database.
func (c *Config) StatePath() string {
	return filepath.Join(c.State.DataDir, "state")
}

// expandDataDir resolves ~ in the data dir path.
func (c *Config) expandDataDir() error {
	expanded, err := homedir.Expand(c.State.DataDir)
	if err != nil {
		return err
	}
	c.State.DataDir = expanded
	return nil
}

// getConfigValue returns the first non-empty value among flag, env, default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue parses booleans with flag > env > default precedence.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return b
}

// getIntConfigValue parses integers with flag > env > default precedence.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return n
}

// getFloatConfigValue parses floats with flag > env > default precedence.
func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// loadEnvFile loads KEY=VALUE pairs from a file into the process environment.
// Existing environment variables are not overwritten.
func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}
