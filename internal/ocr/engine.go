// Package ocr owns the external side of the extraction pipeline: loading the
// scan from disk, enhancing it, and driving a Tesseract engine to turn pixels
// into ordered text lines. The parsing core never imports this package.
package ocr

import "context"

// Engine is the OCR provider contract: one encoded image in, recognized text
// lines out, in reading order. Implementations make no thread-safety
// promises; the Extractor serializes access to the single process-wide
// engine handle.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte) ([]string, error)
}

// Config holds the knobs for engine construction and image preparation.
type Config struct {
	Engine        string // "tesseract" (exec) | "gosseract" (in-process)
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	Language      string // trained data language, default "spa"
	TessdataDir   string
	PSM           int // 6 is good for the uniform block layout of a card front
	OEM           int // 1 = LSTM; leave 0 to use default
	UpscaleFactor int // enhancement upscale, default 2, 1 = off
	CacheDir      string
}

func (c *Config) applyDefaults() {
	if c.Engine == "" {
		c.Engine = "tesseract"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.Language == "" {
		c.Language = "spa"
	}
	if c.PSM == 0 {
		c.PSM = 6
	}
	if c.UpscaleFactor <= 0 {
		c.UpscaleFactor = 2
	}
	if c.CacheDir == "" {
		c.CacheDir = "./tmp"
	}
}
