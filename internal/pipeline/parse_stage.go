package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/identidata/dniscan/internal/common"
	"github.com/identidata/dniscan/internal/dni"
	"github.com/identidata/dniscan/internal/repository"
)

type ParseStage struct {
	Jobs   repository.ExtractionRepository
	Logger *slog.Logger

	// Now is swappable so age computation is deterministic in tests.
	Now func() time.Time

	schema map[string]any
}

func NewParseStage(jobs repository.ExtractionRepository, logger *slog.Logger) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{
		Jobs:   jobs,
		Logger: logger,
		Now:    time.Now,
		schema: dni.BuildRecordSchema(),
	}
}

// Run assembles the record from recognized lines and persists the outcome on
// the job. A record without a document number is the one terminal extraction
// failure; any other field may be absent without failing the job.
func (s *ParseStage) Run(ctx context.Context, jobID uuid.UUID, lines []string) (dni.Record, error) {
	rec := dni.ParseRecord(dni.NewRawText(lines), s.Now())

	if !rec.HasDocumentNumber() {
		err := common.NewAppError(common.CodeDocumentNumberNotFound,
			"no document number recognized in scan", nil)
		_ = s.Jobs.Fail(ctx, jobID, common.CodeOf(err), common.MessageOf(err))
		return rec, err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		_ = s.Jobs.Fail(ctx, jobID, common.CodeProcessingFailure, err.Error())
		return rec, fmt.Errorf("marshal record: %w", err)
	}
	if err := dni.ValidateRecordJSON(s.schema, data); err != nil {
		_ = s.Jobs.Fail(ctx, jobID, common.CodeProcessingFailure, err.Error())
		return rec, fmt.Errorf("validate record: %w", err)
	}

	if err := s.Jobs.FinishParse(ctx, jobID, rec.DocumentNumber, string(data)); err != nil {
		return rec, err
	}

	s.Logger.Info("record assembled",
		"job_id", jobID,
		"document_number", rec.DocumentNumber,
		"has_birth_date", rec.BirthDate != "",
		"has_full_name", rec.FullName != "",
	)
	return rec, nil
}
