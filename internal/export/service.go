// Package export renders stored extractions as XLSX workbooks for the
// back-office people who reconcile card scans by hand.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/identidata/dniscan/internal/dni"
	"github.com/identidata/dniscan/internal/repository"
)

// Service is a tiny façade over the repository that produces XLSX bytes.
type Service struct {
	jobs   repository.ExtractionRepository
	logger *slog.Logger
}

func NewService(jobs repository.ExtractionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

// ExportXLSX returns a workbook with one row per extraction in the window.
// If only from is provided -> from..today (inclusive).
// If neither is provided   -> all extractions.
func (s *Service) ExportXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC); an open "to" end closes at today.
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	rows, err := s.jobs.List(ctx, repository.ListFilter{From: fromDate, To: toDate})
	if err != nil {
		return nil, fmt.Errorf("query extractions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document Number",
		"Full Name",
		"Paternal Surname",
		"Maternal Surname",
		"Given Names",
		"Birth Date",
		"Age",
		"Sex",
		"Status",
		"Error",
		"Scan Path",
		"Processed At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowIdx := 2
	for _, e := range rows {
		var rec dni.Record
		if e.RecordJSON != "" {
			if err := json.Unmarshal([]byte(e.RecordJSON), &rec); err != nil {
				s.logger.Warn("stored record unreadable", "id", e.ID, "error", err)
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, rec.DocumentNumber)
		write(2, rec.FullName)
		write(3, rec.PaternalSurname)
		write(4, rec.MaternalSurname)
		write(5, rec.GivenNames)
		write(6, rec.BirthDate)
		if rec.Age != nil {
			write(7, *rec.Age)
		}
		write(8, rec.SexLabel)
		write(9, string(e.Status))
		if e.ErrorCode != "" {
			write(10, fmt.Sprintf("%s: %s", e.ErrorCode, e.ErrorMessage))
		}
		write(11, e.ImagePath)
		write(12, e.UpdatedAt.Format("2006-01-02 15:04:05"))

		rowIdx++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // document number
	_ = f.SetColWidth(sheet, "B", "B", 36) // full name
	_ = f.SetColWidth(sheet, "C", "E", 22) // name parts
	_ = f.SetColWidth(sheet, "J", "J", 44) // error
	_ = f.SetColWidth(sheet, "K", "K", 52) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
