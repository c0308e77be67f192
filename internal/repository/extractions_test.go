package repository

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/identidata/dniscan/constants"
	"github.com/identidata/dniscan/internal/common"
)

func testRepo(t *testing.T) ExtractionRepository {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, Config{
		Driver: "sqlite",
		DSN:    "file:" + filepath.Join(t.TempDir(), "test.db"),
	}, slog.Default())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewExtractionRepository(db, "sqlite", slog.Default())
}

func TestExtractionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	e, err := repo.Start(ctx, "/scans/card.png")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if e.Status != constants.JobStatusRunning {
		t.Errorf("status = %q, want RUNNING", e.Status)
	}

	if err := repo.FinishOCR(ctx, e.ID, "DNI 45678123\nGARCIA"); err != nil {
		t.Fatalf("finish ocr: %v", err)
	}
	if err := repo.FinishParse(ctx, e.ID, "45678123", `{"document_number":"45678123"}`); err != nil {
		t.Fatalf("finish parse: %v", err)
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != constants.JobStatusParsed {
		t.Errorf("status = %q, want PARSED", got.Status)
	}
	if got.OCRText != "DNI 45678123\nGARCIA" {
		t.Errorf("ocr_text = %q", got.OCRText)
	}
	if got.DocumentNumber != "45678123" {
		t.Errorf("document_number = %q", got.DocumentNumber)
	}
	if got.RecordJSON != `{"document_number":"45678123"}` {
		t.Errorf("record_json = %q", got.RecordJSON)
	}
	if got.ImagePath != "/scans/card.png" {
		t.Errorf("image_path = %q", got.ImagePath)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("timestamps inconsistent: created=%v updated=%v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestExtractionFailure(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	e, err := repo.Start(ctx, "/scans/blurry.jpg")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := repo.Fail(ctx, e.ID, common.CodeDocumentNumberNotFound, "no document number recognized"); err != nil {
		t.Fatalf("fail: %v", err)
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != constants.JobStatusFailed {
		t.Errorf("status = %q, want FAILED", got.Status)
	}
	if got.ErrorCode != common.CodeDocumentNumberNotFound {
		t.Errorf("error_code = %q", got.ErrorCode)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := testRepo(t)
	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateUnknownIDNotFound(t *testing.T) {
	repo := testRepo(t)
	err := repo.FinishOCR(context.Background(), uuid.New(), "text")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	a, _ := repo.Start(ctx, "/scans/a.png")
	b, _ := repo.Start(ctx, "/scans/b.png")
	if err := repo.Fail(ctx, b.ID, common.CodeNoTextExtracted, "nothing recognized"); err != nil {
		t.Fatalf("fail: %v", err)
	}

	all, err := repo.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}

	failed, err := repo.List(ctx, ListFilter{Status: constants.JobStatusFailed})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(failed) != 1 || failed[0].ID != b.ID {
		t.Errorf("failed filter returned %d rows", len(failed))
	}

	future := time.Now().UTC().Add(time.Hour)
	none, err := repo.List(ctx, ListFilter{From: &future})
	if err != nil {
		t.Fatalf("list from: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("future filter returned %d rows", len(none))
	}

	past := time.Now().UTC().Add(-time.Hour)
	both, err := repo.List(ctx, ListFilter{From: &past})
	if err != nil {
		t.Fatalf("list past: %v", err)
	}
	if len(both) != 2 || both[0].ID != a.ID {
		t.Errorf("past filter returned %d rows", len(both))
	}
}
