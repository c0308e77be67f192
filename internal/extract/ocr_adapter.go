package extract

import (
	"context"

	"github.com/identidata/dniscan/internal/ocr"
)

// OCRAdapter exposes the ocr.Extractor through the stage contract so the
// pipeline can be tested without an engine.
type OCRAdapter struct {
	e *ocr.Extractor
}

func NewOCRAdapter(e *ocr.Extractor) *OCRAdapter {
	return &OCRAdapter{e: e}
}

func (a *OCRAdapter) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, path)
	return TextExtractionResult{
		Lines:    r.Lines,
		Text:     r.Text,
		Engine:   r.Engine,
		Duration: r.Duration,
	}, err
}
