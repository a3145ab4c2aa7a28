// Package ocr extracts text from uploaded images.
// Engines are pluggable; Extract applies the service's failure policy on top
// of any engine.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Source is the source label attached to OCR-derived text.
const Source = "Image (OCR)"

// Input is a single image submitted for recognition.
type Input struct {
	Image     []byte
	Languages []string
}

// Engine recognizes text in an image.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (string, error)
}

// Extractor runs an engine and converts failures into placeholder text.
type Extractor struct {
	engine    Engine
	languages []string
	logger    *slog.Logger
}

// NewExtractor creates an Extractor for engine using the given language hints.
func NewExtractor(engine Engine, languages []string, logger *slog.Logger) *Extractor {
	return &Extractor{
		engine:    engine,
		languages: languages,
		logger:    logger.With("system", "ocr", "engine", engine.Name()),
	}
}

// Extract returns the trimmed text found in image and the OCR source label.
// Engine errors are logged and returned as an "Error extracting text" string
// in place of the text; they are never propagated.
func (e *Extractor) Extract(ctx context.Context, image []byte) (string, string) {
	text, err := e.engine.Recognize(ctx, Input{Image: image, Languages: e.languages})
	if err != nil {
		e.logger.Error("ocr failed", "error", err)
		return fmt.Sprintf("Error extracting text: %v", err), Source
	}
	return strings.TrimSpace(text), Source
}
