// Package config loads weatherd settings: defaults, then an optional
// YAML file, then environment variables, each layer overriding the last.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvAddr        = "WEATHERD_ADDR"
	EnvWttrBase    = "WEATHERD_WTTR_BASE"
	EnvTimeoutSecs = "WEATHERD_TIMEOUT_SECS"
	EnvDefaultDays = "WEATHERD_DEFAULT_DAYS"
	EnvLogLevel    = "WEATHERD_LOG_LEVEL"
)

// Config holds the weatherd runtime settings.
type Config struct {
	Addr        string `yaml:"addr"`
	WttrBase    string `yaml:"wttr_base"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	DefaultDays int    `yaml:"default_days"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:        "127.0.0.1:5000",
		WttrBase:    "https://wttr.in",
		TimeoutSecs: 6,
		DefaultDays: 3,
		LogLevel:    "info",
	}
}

// Load builds a Config. path may be empty; when set it must point to a
// readable YAML file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse config file")
		}
	}

	cfg.Addr = getenv(EnvAddr, cfg.Addr)
	cfg.WttrBase = getenv(EnvWttrBase, cfg.WttrBase)
	cfg.TimeoutSecs = getenvInt(EnvTimeoutSecs, cfg.TimeoutSecs)
	cfg.DefaultDays = getenvInt(EnvDefaultDays, cfg.DefaultDays)
	cfg.LogLevel = getenv(EnvLogLevel, cfg.LogLevel)
	return cfg, nil
}

// Timeout is TimeoutSecs as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
