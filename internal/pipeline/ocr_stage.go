package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/identidata/dniscan/internal/common"
	"github.com/identidata/dniscan/internal/extract"
	"github.com/identidata/dniscan/internal/repository"
)

type OCRStage struct {
	Jobs          repository.ExtractionRepository
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewOCRStage(jobs repository.ExtractionRepository, tx extract.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{Jobs: jobs, TextExtractor: tx, Logger: logger}
}

// Run starts an extraction job for a scan, runs OCR, and persists the
// recognized text. Returns the job ID and the extraction summary; the parse
// stage is NOT called.
func (s *OCRStage) Run(ctx context.Context, imagePath string) (uuid.UUID, extract.TextExtractionResult, error) {
	job, err := s.Jobs.Start(ctx, imagePath)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}

	res, err := s.TextExtractor.Extract(ctx, imagePath)
	if err != nil {
		_ = s.Jobs.Fail(ctx, job.ID, common.CodeOf(err), common.MessageOf(err))
		return job.ID, res, err
	}

	if err := s.Jobs.FinishOCR(ctx, job.ID, res.Text); err != nil {
		return job.ID, res, err
	}
	return job.ID, res, nil
}
