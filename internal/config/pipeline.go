package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	EnvDepartmentsPath = "NEWSDESK_DEPARTMENTS_PATH"
	EnvOCRLanguages    = "NEWSDESK_OCR_LANGUAGES"
)

// DepartmentsConfig locates the department rules file.
type DepartmentsConfig struct {
	Path string `toml:"path"`
}

// Finalize applies defaults and environment variable overrides.
func (c *DepartmentsConfig) Finalize() error {
	if c.Path == "" {
		c.Path = "departments.json"
	}
	if v := os.Getenv(EnvDepartmentsPath); v != "" {
		c.Path = v
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *DepartmentsConfig) Merge(overlay *DepartmentsConfig) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}

// OCRConfig holds the tesseract language hints.
type OCRConfig struct {
	Languages []string `toml:"languages"`
}

// Finalize applies defaults, environment variable overrides, and validation.
// NEWSDESK_OCR_LANGUAGES takes a comma-separated list.
func (c *OCRConfig) Finalize() error {
	if len(c.Languages) == 0 {
		c.Languages = []string{"eng"}
	}
	if v := os.Getenv(EnvOCRLanguages); v != "" {
		c.Languages = nil
		for lang := range strings.SplitSeq(v, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				c.Languages = append(c.Languages, lang)
			}
		}
	}
	for _, lang := range c.Languages {
		if lang == "" {
			return fmt.Errorf("empty ocr language")
		}
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("at least one ocr language required")
	}
	return nil
}

// Merge overwrites Languages when overlay sets any.
func (c *OCRConfig) Merge(overlay *OCRConfig) {
	if len(overlay.Languages) > 0 {
		c.Languages = overlay.Languages
	}
}
