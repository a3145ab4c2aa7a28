package storage

import (
	"fmt"
	"os"
	"regexp"
)

// Azure container names: 3-63 lowercase letters, digits, and single hyphens,
// starting and ending with a letter or digit.
var containerName = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9]|-[a-z0-9]){2,62}$`)

// Config locates the blob container that archives uploaded images. An empty
// ConnectionString disables archiving.
type Config struct {
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
}

// Env names the environment variables that override Config.
type Env struct {
	ContainerName    string
	ConnectionString string
}

// Enabled reports whether a connection string has been configured.
func (c *Config) Enabled() bool {
	return c.ConnectionString != ""
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	if c.ContainerName == "" {
		c.ContainerName = "uploads"
	}
	if env != nil {
		override(&c.ContainerName, env.ContainerName)
		override(&c.ConnectionString, env.ConnectionString)
	}

	if len(c.ContainerName) > 63 || !containerName.MatchString(c.ContainerName) {
		return fmt.Errorf("invalid container_name %q", c.ContainerName)
	}
	return nil
}

// Merge overwrites fields set in overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
}

func override(dst *string, name string) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}
