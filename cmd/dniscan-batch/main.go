package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/identidata/dniscan/internal/common"
	"github.com/identidata/dniscan/internal/export"
	"github.com/identidata/dniscan/internal/extract"
	"github.com/identidata/dniscan/internal/ocr"
	processor "github.com/identidata/dniscan/internal/pipeline"
	"github.com/identidata/dniscan/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory of card scans to process (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "extractions.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = "file:dniscan-batch?mode=memory&cache=shared"
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.Open(ctx, repository.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := repository.Migrate(ctx, db); err != nil {
		logger.Error("migrate database", "error", err)
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
	results, stats, err := p.ProcessDirectory(ctx, *dir)
	if err != nil {
		logger.Error("process directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("directory processed",
		"dir", *dir,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	for _, r := range results {
		if r.Err != "" {
			logger.Warn("scan failed", "path", r.Path, "job_id", r.JobID, "error", r.Err)
		}
	}

	exporter := export.NewService(jobs, logger)
	data, err := exporter.ExportXLSX(ctx, nil, nil)
	if err != nil {
		logger.Error("build workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("workbook written", "path", *out, "bytes", len(data))
}
