package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

var tesseractFormats = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".tiff": {},
}

// TesseractEngine recognizes image documents with a local Tesseract install
// through the gosseract client. A fresh client is created per extraction so
// concurrent tasks never share native state.
type TesseractEngine struct {
	languages     []string
	clientFactory func() *gosseract.Client

	initOnce sync.Once
	initErr  error
}

func NewTesseractEngine(languages []string) *TesseractEngine {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &TesseractEngine{
		languages:     languages,
		clientFactory: gosseract.NewClient,
	}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Initialize verifies that the native Tesseract library is usable with the
// configured languages.
func (e *TesseractEngine) Initialize(ctx context.Context) error {
	e.initOnce.Do(func() {
		c := e.clientFactory()
		defer c.Close()
		if err := c.SetLanguage(e.languages...); err != nil {
			e.initErr = fmt.Errorf("tesseract languages %v unavailable: %w", e.languages, err)
			return
		}
		zap.S().Named("tesseract").Infow("Tesseract initialized", "languages", e.languages)
	})
	return e.initErr
}

func (e *TesseractEngine) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", NewExtractionError(e.Name(), "canceled", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := tesseractFormats[ext]; !ok {
		return "", NewExtractionError(e.Name(), fmt.Sprintf("unsupported format %q", ext), nil)
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetLanguage(e.languages...); err != nil {
		return "", NewExtractionError(e.Name(), "set languages", err)
	}
	if err := c.SetImage(path); err != nil {
		return "", NewExtractionError(e.Name(), "set image", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", NewExtractionError(e.Name(), "recognize text", err)
	}

	return strings.TrimSpace(text), nil
}

func (e *TesseractEngine) Cleanup() error {
	return nil
}
