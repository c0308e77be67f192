package ocr

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/identidata/dniscan/internal/common"
)

type stubEngine struct {
	lines []string
	err   error
	calls int
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Recognize(context.Context, []byte) ([]string, error) {
	s.calls++
	return s.lines, s.err
}

func testExtractor(engine Engine, initErr error) *Extractor {
	cfg := Config{}
	cfg.applyDefaults()
	return &Extractor{
		cfg:      cfg,
		enhancer: &Enhancer{UpscaleFactor: 1},
		logger:   slog.Default(),
		engine:   engine,
		initErr:  initErr,
	}
}

func writeTestScan(t *testing.T) string {
	t.Helper()
	data, err := EncodePNG(flatGray(32, 16, 180))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "card.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestExtractHappyPath(t *testing.T) {
	eng := &stubEngine{lines: []string{"DNI 45678123", "PRIMER APELLIDO", "GARCIA"}}
	x := testExtractor(eng, nil)

	res, err := x.Extract(context.Background(), writeTestScan(t))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(res.Lines) != 3 || res.Lines[0] != "DNI 45678123" {
		t.Errorf("lines = %q", res.Lines)
	}
	if res.Text != "DNI 45678123\nPRIMER APELLIDO\nGARCIA" {
		t.Errorf("text = %q", res.Text)
	}
	if res.Engine != "stub" {
		t.Errorf("engine = %q", res.Engine)
	}
}

func TestExtractLatchedInitFailure(t *testing.T) {
	eng := &stubEngine{lines: []string{"DNI 45678123"}}
	x := testExtractor(eng, errors.New("no trained data"))

	path := writeTestScan(t)
	for i := 0; i < 2; i++ {
		_, err := x.Extract(context.Background(), path)
		if common.CodeOf(err) != common.CodeEngineUnavailable {
			t.Fatalf("call %d: code = %q, want ENGINE_UNAVAILABLE", i, common.CodeOf(err))
		}
	}
	if eng.calls != 0 {
		t.Errorf("engine invoked %d times despite init failure", eng.calls)
	}
}

func TestExtractImageLoadFailure(t *testing.T) {
	x := testExtractor(&stubEngine{}, nil)

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.png")},
		{name: "unsupported extension", path: filepath.Join(t.TempDir(), "scan.pdf")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := x.Extract(context.Background(), tt.path)
			if common.CodeOf(err) != common.CodeImageLoadFailure {
				t.Errorf("code = %q, want IMAGE_LOAD_FAILURE", common.CodeOf(err))
			}
		})
	}
}

func TestExtractNoTextExtracted(t *testing.T) {
	x := testExtractor(&stubEngine{lines: nil}, nil)
	_, err := x.Extract(context.Background(), writeTestScan(t))
	if common.CodeOf(err) != common.CodeNoTextExtracted {
		t.Errorf("code = %q, want NO_TEXT_EXTRACTED", common.CodeOf(err))
	}
}

func TestExtractEngineFailureIsNotTagged(t *testing.T) {
	x := testExtractor(&stubEngine{err: errors.New("boom")}, nil)
	_, err := x.Extract(context.Background(), writeTestScan(t))
	if err == nil {
		t.Fatal("expected error")
	}
	if common.CodeOf(err) != common.CodeProcessingFailure {
		t.Errorf("code = %q, want PROCESSING_FAILURE fallback", common.CodeOf(err))
	}
}
