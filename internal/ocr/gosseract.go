package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// GosseractEngine runs Tesseract in-process through its C API. Faster per
// call than the exec backend since there is no process spawn, at the cost of
// a cgo build.
type GosseractEngine struct {
	cfg           Config
	clientFactory func() *gosseract.Client
}

// NewGosseractEngine constructs the in-process backend. A fresh client is
// created per call; the library keeps no useful state between images.
func NewGosseractEngine(cfg Config) *GosseractEngine {
	return &GosseractEngine{cfg: cfg, clientFactory: gosseract.NewClient}
}

func (e *GosseractEngine) Name() string { return "gosseract" }

func (e *GosseractEngine) Recognize(ctx context.Context, image []byte) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer func() { _ = c.Close() }()

	if e.cfg.TessdataDir != "" {
		if err := c.SetTessdataPrefix(e.cfg.TessdataDir); err != nil {
			return nil, fmt.Errorf("tessdata prefix: %w", err)
		}
	}
	if e.cfg.Language != "" {
		if err := c.SetLanguage(e.cfg.Language); err != nil {
			return nil, fmt.Errorf("set language: %w", err)
		}
	}
	if e.cfg.PSM > 0 {
		if err := c.SetPageSegMode(gosseract.PageSegMode(e.cfg.PSM)); err != nil {
			return nil, fmt.Errorf("set psm: %w", err)
		}
	}
	if err := c.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return nil, fmt.Errorf("gosseract: %w", err)
	}
	return SplitLines(Normalize(text)), nil
}
