// Package processor coordinates the linear extraction pipeline:
// scan file -> enhanced image -> OCR -> text -> record. Each stage can fail;
// a failure skips every later stage and surfaces as exactly one tagged error.
package processor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/identidata/dniscan/internal/common"
	"github.com/identidata/dniscan/internal/dni"
)

// Processor coordinates OCR (text extract) then field parse (record).
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// ProcessScan runs the full pipeline for one scan file. It returns the job ID
// (uuid.Nil when the job row itself could not be created), the assembled
// record on success, and a tagged error on failure. Errors never escape
// untagged: anything unexpected is wrapped as PROCESSING_FAILURE.
func (p *Processor) ProcessScan(ctx context.Context, imagePath string) (uuid.UUID, dni.Record, error) {
	jobID, ocrRes, err := p.OCR.Run(ctx, imagePath)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "image_path", imagePath, "job_id", jobID, "err", err)
		return jobID, dni.Record{}, tagged(err)
	}
	p.Logger.Info("processor.ocr.ok",
		"image_path", imagePath,
		"job_id", jobID,
		"engine", ocrRes.Engine,
		"lines", len(ocrRes.Lines),
	)

	rec, err := p.Parse.Run(ctx, jobID, ocrRes.Lines)
	if err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, rec, tagged(err)
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID, "document_number", rec.DocumentNumber)
	return jobID, rec, nil
}

// tagged guarantees the uniform error contract of the pipeline.
func tagged(err error) error {
	var ae *common.AppError
	if errors.As(err, &ae) {
		return err
	}
	return common.NewAppError(common.CodeProcessingFailure, "unexpected processing failure", err)
}
