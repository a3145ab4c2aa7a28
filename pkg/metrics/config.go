package metrics

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config controls the Prometheus endpoint.
type Config struct {
	Enabled *bool  `toml:"enabled"`
	Path    string `toml:"path"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Enabled string
	Path    string
}

// IsEnabled reports whether metrics are exposed. Defaults to true.
func (c *Config) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites fields set in overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled != nil {
		c.Enabled = overlay.Enabled
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}

func (c *Config) loadDefaults() {
	if c.Path == "" {
		c.Path = "/metrics"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = &enabled
			}
		}
	}
	if env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /: %s", c.Path)
	}
	return nil
}
