package ocr

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// TesseractEngine shells out to the tesseract binary, the same way scan
// batches are processed by hand. It is the default backend because it needs
// no cgo and the binary is everywhere.
type TesseractEngine struct {
	cfg    Config
	runner Runner
}

// NewTesseractEngine verifies the binary is reachable and returns the engine.
func NewTesseractEngine(cfg Config) (*TesseractEngine, error) {
	if _, err := exec.LookPath(cfg.Tesseract); err != nil {
		return nil, fmt.Errorf("tesseract binary %q not found: %w", cfg.Tesseract, err)
	}
	return &TesseractEngine{cfg: cfg, runner: execRunner{}}, nil
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize writes the enhanced frame to the cache dir and runs
// tesseract <file> stdout -l <lang>.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) ([]string, error) {
	if err := os.MkdirAll(e.cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(e.cfg.CacheDir, "dniscan-*.png")
	if err != nil {
		return nil, fmt.Errorf("temp frame: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(image); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("write frame: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close frame: %w", err)
	}

	args := []string{filepath.Clean(tmp.Name()), "stdout", "-l", e.cfg.Language}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w (stderr: %s)", err, truncate(string(errb), 512))
	}
	return SplitLines(Normalize(string(out))), nil
}
