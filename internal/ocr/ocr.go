package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	// Decoders for the accepted scan formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"

	"github.com/identidata/dniscan/constants"
	"github.com/identidata/dniscan/internal/common"
)

// ExtractionResult is the text side of one processed scan.
type ExtractionResult struct {
	Lines    []string
	Text     string
	Engine   string
	Duration time.Duration
}

// Extractor turns a scan file into recognized text lines. It holds the one
// process-wide engine handle: the engine is constructed once, a construction
// failure is latched, and every later call short-circuits with
// ENGINE_UNAVAILABLE instead of retrying. Engine access is serialized because
// neither backend guarantees thread safety.
type Extractor struct {
	cfg      Config
	enhancer *Enhancer
	logger   *slog.Logger

	mu      sync.Mutex
	engine  Engine
	initErr error
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()

	x := &Extractor{
		cfg:      cfg,
		enhancer: &Enhancer{UpscaleFactor: cfg.UpscaleFactor},
		logger:   logger,
	}
	x.engine, x.initErr = newEngine(cfg)
	if x.initErr != nil {
		logger.Error("ocr engine initialization failed", "engine", cfg.Engine, "error", x.initErr)
	} else {
		logger.Info("ocr engine ready", "engine", x.engine.Name(), "lang", cfg.Language)
	}
	return x
}

func newEngine(cfg Config) (Engine, error) {
	switch cfg.Engine {
	case "tesseract":
		return NewTesseractEngine(cfg)
	case "gosseract":
		return NewGosseractEngine(cfg), nil
	default:
		return nil, fmt.Errorf("unknown ocr engine %q", cfg.Engine)
	}
}

// Extract loads, enhances, and recognizes one scan.
func (x *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()

	if x.initErr != nil {
		return ExtractionResult{}, common.NewAppError(common.CodeEngineUnavailable,
			"ocr engine failed to initialize", x.initErr)
	}

	if ext := filepath.Ext(path); !constants.IsImageExt(ext) {
		return ExtractionResult{}, common.NewAppError(common.CodeImageLoadFailure,
			fmt.Sprintf("unsupported scan format %q", ext), nil)
	}

	img, err := loadImage(path)
	if err != nil {
		return ExtractionResult{}, common.NewAppError(common.CodeImageLoadFailure,
			fmt.Sprintf("could not decode %s", path), err)
	}

	frame, err := EncodePNG(x.enhancer.Enhance(img))
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("enhance: %w", err)
	}

	x.mu.Lock()
	lines, err := x.engine.Recognize(ctx, frame)
	x.mu.Unlock()
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("recognize: %w", err)
	}
	if len(lines) == 0 {
		return ExtractionResult{}, common.NewAppError(common.CodeNoTextExtracted,
			"no text extracted from image", nil)
	}

	res := ExtractionResult{
		Lines:    lines,
		Text:     joinLines(lines),
		Engine:   x.engine.Name(),
		Duration: time.Since(start),
	}
	x.logger.Debug("scan recognized",
		"path", path, "lines", len(lines), "duration_ms", res.Duration.Milliseconds())
	return res, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	img, _, err := image.Decode(f)
	return img, err
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
