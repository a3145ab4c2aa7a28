package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/newsdesk/pkg/formatting"
	"github.com/JaimeStill/newsdesk/pkg/middleware"
	"github.com/JaimeStill/newsdesk/pkg/pagination"
)

const (
	EnvAPIBasePath      = "NEWSDESK_API_BASE_PATH"
	EnvAPIMaxUploadSize = "NEWSDESK_API_MAX_UPLOAD_SIZE"
	EnvAppBasePath      = "NEWSDESK_APP_BASE_PATH"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "NEWSDESK_CORS_ENABLED",
	Origins:          "NEWSDESK_CORS_ORIGINS",
	AllowedMethods:   "NEWSDESK_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "NEWSDESK_CORS_ALLOWED_HEADERS",
	AllowCredentials: "NEWSDESK_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "NEWSDESK_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "NEWSDESK_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "NEWSDESK_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds routing, upload, CORS, and pagination settings shared by
// the JSON API and the dashboard.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	AppBasePath   string                `toml:"app_base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Pagination    pagination.Config     `toml:"pagination"`
}

// MaxUploadSizeBytes returns MaxUploadSize parsed into bytes.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.AppBasePath != "" {
		c.AppBasePath = overlay.AppBasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.AppBasePath == "" {
		c.AppBasePath = "/app"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.AppBasePath = v
	}
	if v := os.Getenv(EnvAPIMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *APIConfig) validate() error {
	if _, err := formatting.ParseBytes(c.MaxUploadSize); err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if c.BasePath == c.AppBasePath {
		return fmt.Errorf("base_path and app_base_path must differ")
	}
	return nil
}
