package ocr

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type stubRunner struct {
	stdout string
	stderr string
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return []byte(s.stdout), []byte(s.stderr), s.err
}

func TestTesseractEngineRecognize(t *testing.T) {
	cfg := Config{CacheDir: t.TempDir()}
	cfg.applyDefaults()
	runner := &stubRunner{stdout: "DNI 45678123\r\n\r\nPRIMER  APELLIDO\nGARCIA\n"}
	eng := &TesseractEngine{cfg: cfg, runner: runner}

	lines, err := eng.Recognize(context.Background(), []byte("not-a-real-png"))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	want := []string{"DNI 45678123", "PRIMER APELLIDO", "GARCIA"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}

	if runner.gotName != "tesseract" {
		t.Errorf("binary = %q", runner.gotName)
	}
	joined := strings.Join(runner.gotArgs, " ")
	for _, frag := range []string{"stdout", "-l spa", "--psm 6"} {
		if !strings.Contains(joined, frag) {
			t.Errorf("args %q missing %q", joined, frag)
		}
	}
}

func TestTesseractEngineFailure(t *testing.T) {
	cfg := Config{CacheDir: t.TempDir()}
	cfg.applyDefaults()
	runner := &stubRunner{stderr: "Error opening data file", err: errors.New("exit status 1")}
	eng := &TesseractEngine{cfg: cfg, runner: runner}

	_, err := eng.Recognize(context.Background(), []byte("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Error opening data file") {
		t.Errorf("stderr not surfaced: %v", err)
	}
}
