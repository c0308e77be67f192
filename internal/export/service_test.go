package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/identidata/dniscan/constants"
	"github.com/identidata/dniscan/internal/repository"
)

type stubJobs struct {
	rows      []*repository.Extraction
	gotFilter repository.ListFilter
}

func (s *stubJobs) Start(context.Context, string) (*repository.Extraction, error) { return nil, nil }
func (s *stubJobs) FinishOCR(context.Context, uuid.UUID, string) error            { return nil }
func (s *stubJobs) FinishParse(context.Context, uuid.UUID, string, string) error  { return nil }
func (s *stubJobs) Fail(context.Context, uuid.UUID, string, string) error         { return nil }
func (s *stubJobs) GetByID(context.Context, uuid.UUID) (*repository.Extraction, error) {
	return nil, nil
}

func (s *stubJobs) List(_ context.Context, filter repository.ListFilter) ([]*repository.Extraction, error) {
	s.gotFilter = filter
	return s.rows, nil
}

func TestExportXLSX(t *testing.T) {
	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)
	jobs := &stubJobs{rows: []*repository.Extraction{
		{
			ID:             uuid.New(),
			ImagePath:      "/scans/card.png",
			Status:         constants.JobStatusParsed,
			DocumentNumber: "45678123",
			RecordJSON: `{"document_number":"45678123","paternal_surname":"GARCIA",` +
				`"maternal_surname":"NUNEZ","given_names":"MARIA ISABEL",` +
				`"birth_date":"05/11/1995","birth_date_iso":"1995-11-05","age":30,` +
				`"sex":"F","sex_label":"FEMENINO","full_name":"MARIA ISABEL GARCIA NUNEZ"}`,
			UpdatedAt: now,
		},
		{
			ID:           uuid.New(),
			ImagePath:    "/scans/blurry.jpg",
			Status:       constants.JobStatusFailed,
			ErrorCode:    "DOCUMENT_NUMBER_NOT_FOUND",
			ErrorMessage: "no document number recognized in scan",
			UpdatedAt:    now,
		},
	}}

	svc := NewService(jobs, nil)
	data, err := svc.ExportXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Extractions")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Document Number" || rows[0][1] != "Full Name" {
		t.Errorf("header = %q", rows[0])
	}
	if rows[1][0] != "45678123" {
		t.Errorf("row1 document number = %q", rows[1][0])
	}
	if rows[1][1] != "MARIA ISABEL GARCIA NUNEZ" {
		t.Errorf("row1 full name = %q", rows[1][1])
	}
	if rows[2][8] != "FAILED" {
		t.Errorf("row2 status = %q", rows[2][8])
	}
}

func TestExportOpenEndedWindowClosesAtToday(t *testing.T) {
	jobs := &stubJobs{}
	svc := NewService(jobs, nil)

	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.ExportXLSX(context.Background(), &from, nil); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if jobs.gotFilter.From == nil || jobs.gotFilter.To == nil {
		t.Errorf("filter window not closed: %+v", jobs.gotFilter)
	}
}
