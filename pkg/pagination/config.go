// Package pagination pages through in-memory result sets.
package pagination

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Config bounds the page sizes a client may request.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// ConfigEnv names the environment variables that override Config.
type ConfigEnv struct {
	DefaultPageSize string
	MaxPageSize     string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = defaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = maxPageSize
	}
	if env != nil {
		envInt(env.DefaultPageSize, &c.DefaultPageSize)
		envInt(env.MaxPageSize, &c.MaxPageSize)
	}

	switch {
	case c.DefaultPageSize < 1:
		return fmt.Errorf("default_page_size must be positive")
	case c.MaxPageSize < 1:
		return fmt.Errorf("max_page_size must be positive")
	case c.DefaultPageSize > c.MaxPageSize:
		return fmt.Errorf("default_page_size %d exceeds max_page_size %d", c.DefaultPageSize, c.MaxPageSize)
	}
	return nil
}

// Merge overwrites fields set in overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}

func envInt(name string, dst *int) {
	if name == "" {
		return
	}
	if n, err := strconv.Atoi(os.Getenv(name)); err == nil {
		*dst = n
	}
}
