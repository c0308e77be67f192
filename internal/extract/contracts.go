package extract

import (
	"context"
	"time"
)

// TextExtractor is stage 1: scan file -> recognized text lines.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Lines    []string
	Text     string
	Engine   string
	Duration time.Duration
}
