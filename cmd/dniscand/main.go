package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	dniv1 "github.com/identidata/dniscan/gen/proto/dni/v1"
	"github.com/identidata/dniscan/internal/common"
	"github.com/identidata/dniscan/internal/export"
	"github.com/identidata/dniscan/internal/extract"
	"github.com/identidata/dniscan/internal/ocr"
	processor "github.com/identidata/dniscan/internal/pipeline"
	"github.com/identidata/dniscan/internal/repository"
	"github.com/identidata/dniscan/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("close database", "error", cerr)
		}
	}()

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
	textExtractor := extract.NewOCRAdapter(ocrx)

	proc := processor.NewProcessor(logger,
		processor.NewOCRStage(jobs, textExtractor, logger),
		processor.NewParseStage(jobs, logger))
	exporter := export.NewService(jobs, logger)

	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	svc := server.NewExtractionService(proc, jobs, exporter, logger)
	dniv1.RegisterExtractionServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr, "driver", cfg.Database.Driver, "engine", cfg.OCR.Engine)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
