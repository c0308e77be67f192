package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/identidata/dniscan/internal/common"
	"github.com/identidata/dniscan/internal/extract"
	"github.com/identidata/dniscan/internal/ocr"
	processor "github.com/identidata/dniscan/internal/pipeline"
	"github.com/identidata/dniscan/internal/repository"
)

// dniscan runs the extraction pipeline for a single card scan and prints the
// assembled record as JSON. Results are persisted to the configured database
// (an in-memory sqlite by default, so casual runs leave nothing behind).
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "dniscan <scan-image-path>")
		os.Exit(2)
	}
	imagePath, err := filepath.Abs(os.Args[1])
	if err != nil {
		logger.Error("resolve path", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if os.Getenv("DB_URL") == "" {
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = "file:dniscan?mode=memory&cache=shared"
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := repository.Open(ctx, repository.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: 1,
		DialTimeout:  cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := repository.Migrate(ctx, db); err != nil {
		logger.Error("migrate db", "error", err)
		os.Exit(1)
	}
	jobs := repository.NewExtractionRepository(db, cfg.Database.Driver, logger)

	ocrx := ocr.NewExtractor(ocr.Config{
		Engine:        cfg.OCR.Engine,
		Tesseract:     cfg.OCR.Tesseract,
		Language:      cfg.OCR.Language,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
		UpscaleFactor: cfg.OCR.UpscaleFactor,
		CacheDir:      cfg.OCR.CacheDir,
	}, logger)

	p := processor.NewProcessor(logger,
		processor.NewOCRStage(jobs, extract.NewOCRAdapter(ocrx), logger),
		processor.NewParseStage(jobs, logger))

	start := time.Now()
	jobID, record, err := p.ProcessScan(ctx, imagePath)
	dur := time.Since(start)

	if err != nil {
		logger.Error("extraction failed",
			"job_id", jobID, "code", common.CodeOf(err), "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	logger.Info("extraction ok", "job_id", jobID, "duration_ms", dur.Milliseconds())
}
