// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultPort            = "8080"
	DefaultAppName         = "CI/CD Demo App"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config is the resolved runtime configuration.
type Config struct {
	Bind            string
	Port            string
	AppName         string
	Version         string
	LogLevel        string
	ProjectID       string
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for net/http.
func (c Config) Addr() string {
	return c.Bind + ":" + c.Port
}

// Load reads the given dotenv files (".env" when none are named) without
// overriding variables that are already set, then resolves the config.
// Missing files are ignored.
func Load(version string, files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(version)
}

// FromEnv resolves the config from environment variables only. version is
// used when APP_VERSION is unset.
func FromEnv(version string) (Config, error) {
	cfg := Config{
		Bind:            os.Getenv("BIND"),
		Port:            envPortOr("PORT", DefaultPort),
		AppName:         envOr("APP_NAME", DefaultAppName),
		Version:         envOr("APP_VERSION", version),
		LogLevel:        strings.ToLower(envOr("LOG_LEVEL", DefaultLogLevel)),
		ProjectID:       firstEnv("GOOGLE_CLOUD_PROJECT", "GCP_PROJECT", "PROJECT_ID"),
		MetricsEnabled:  envBoolOr("METRICS_ENABLED", true),
		ShutdownTimeout: envDurationOr("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// envPortOr returns fallback unless the variable holds a TCP port number.
func envPortOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 65535 {
		return fallback
	}
	return strconv.Itoa(n)
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func envBoolOr(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
