package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost            = "NEWSDESK_SERVER_HOST"
	EnvServerPort            = "NEWSDESK_SERVER_PORT"
	EnvServerReadTimeout     = "NEWSDESK_SERVER_READ_TIMEOUT"
	EnvServerWriteTimeout    = "NEWSDESK_SERVER_WRITE_TIMEOUT"
	EnvServerShutdownTimeout = "NEWSDESK_SERVER_SHUTDOWN_TIMEOUT"
)

// ServerConfig holds HTTP listener parameters. Timeouts are Go duration
// strings; the write timeout covers OCR on uploaded images.
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ReadTimeout     string `toml:"read_timeout"`
	WriteTimeout    string `toml:"write_timeout"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	return duration(c.ReadTimeout)
}

func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	return duration(c.WriteTimeout)
}

func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return duration(c.ShutdownTimeout)
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ServerConfig) Finalize() error {
	setDefault(&c.Host, "0.0.0.0")
	if c.Port == 0 {
		c.Port = 5000
	}
	setDefault(&c.ReadTimeout, "1m")
	setDefault(&c.WriteTimeout, "2m")
	setDefault(&c.ShutdownTimeout, "30s")

	setFromEnv(&c.Host, EnvServerHost)
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	setFromEnv(&c.ReadTimeout, EnvServerReadTimeout)
	setFromEnv(&c.WriteTimeout, EnvServerWriteTimeout)
	setFromEnv(&c.ShutdownTimeout, EnvServerShutdownTimeout)

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for name, value := range map[string]string{
		"read_timeout":     c.ReadTimeout,
		"write_timeout":    c.WriteTimeout,
		"shutdown_timeout": c.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	merged := *overlay
	setDefault(&merged.Host, c.Host)
	if merged.Port == 0 {
		merged.Port = c.Port
	}
	setDefault(&merged.ReadTimeout, c.ReadTimeout)
	setDefault(&merged.WriteTimeout, c.WriteTimeout)
	setDefault(&merged.ShutdownTimeout, c.ShutdownTimeout)
	*c = merged
}

func setDefault(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// duration parses a duration already checked by Finalize.
func duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
