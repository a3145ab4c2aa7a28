// Package tesseract provides an ocr.Engine backed by the Tesseract library
// through gosseract.
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/JaimeStill/newsdesk/internal/ocr"
)

// Engine implements ocr.Engine with a fresh gosseract client per call.
type Engine struct {
	clientFactory func() *gosseract.Client
}

// New constructs a Tesseract-backed OCR engine.
func New() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

// Recognize runs Tesseract over in.Image. The context is checked before the
// client is created; recognition itself is not interruptible.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
