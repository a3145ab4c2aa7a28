package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/newsdesk/pkg/metrics"
	"github.com/JaimeStill/newsdesk/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvNewsdeskEnv             = "NEWSDESK_ENV"
	EnvNewsdeskShutdownTimeout = "NEWSDESK_SHUTDOWN_TIMEOUT"
	EnvNewsdeskVersion         = "NEWSDESK_VERSION"
)

var storageEnv = &storage.Env{
	ContainerName:    "NEWSDESK_STORAGE_CONTAINER_NAME",
	ConnectionString: "NEWSDESK_STORAGE_CONNECTION_STRING",
}

var metricsEnv = &metrics.Env{
	Enabled: "NEWSDESK_METRICS_ENABLED",
	Path:    "NEWSDESK_METRICS_PATH",
}

// Config is the root configuration for the newsdesk service.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	API             APIConfig         `toml:"api"`
	Departments     DepartmentsConfig `toml:"departments"`
	OCR             OCRConfig         `toml:"ocr"`
	Storage         storage.Config    `toml:"storage"`
	Metrics         metrics.Config    `toml:"metrics"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
	Version         string            `toml:"version"`
}

// Env returns the NEWSDESK_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvNewsdeskEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return duration(c.ShutdownTimeout)
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Departments.Merge(&overlay.Departments)
	c.OCR.Merge(&overlay.OCR)
	c.Storage.Merge(&overlay.Storage)
	c.Metrics.Merge(&overlay.Metrics)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Departments.Finalize(); err != nil {
		return fmt.Errorf("departments: %w", err)
	}
	if err := c.OCR.Finalize(); err != nil {
		return fmt.Errorf("ocr: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Metrics.Finalize(metricsEnv); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	setDefault(&c.ShutdownTimeout, "30s")
	setDefault(&c.Version, "0.1.0")
}

func (c *Config) loadEnv() {
	setFromEnv(&c.ShutdownTimeout, EnvNewsdeskShutdownTimeout)
	setFromEnv(&c.Version, EnvNewsdeskVersion)
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvNewsdeskEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
