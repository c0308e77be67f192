// Package server exposes the extraction pipeline over gRPC.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/identidata/dniscan/constants"
	dniv1 "github.com/identidata/dniscan/gen/proto/dni/v1"
	"github.com/identidata/dniscan/internal/common"
	"github.com/identidata/dniscan/internal/dni"
	"github.com/identidata/dniscan/internal/export"
	processor "github.com/identidata/dniscan/internal/pipeline"
	"github.com/identidata/dniscan/internal/repository"
)

type ExtractionService struct {
	dniv1.UnimplementedExtractionServiceServer
	processor *processor.Processor
	jobs      repository.ExtractionRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewExtractionService(proc *processor.Processor, jobs repository.ExtractionRepository, exporter *export.Service, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{
		processor: proc,
		jobs:      jobs,
		exporter:  exporter,
		logger:    logger,
	}
}

// Extract implements dniv1.ExtractionServiceServer
func (s *ExtractionService) Extract(ctx context.Context, req *dniv1.ExtractRequest) (*dniv1.ExtractResponse, error) {
	path := strings.TrimSpace(req.GetImagePath())
	if path == "" {
		s.logger.Error("extract request missing image_path")
		return nil, status.Error(codes.InvalidArgument, "image_path is required")
	}

	s.logger.Info("starting extraction", "path", path)
	jobID, record, err := s.processor.ProcessScan(ctx, path)
	if err != nil {
		s.logger.Error("pipeline.failed", "path", path, "job_id", jobID, "err", err)
		return nil, statusFromPipeline(err)
	}
	s.logger.Info("extraction succeeded", "job_id", jobID, "document_number", record.DocumentNumber)

	return &dniv1.ExtractResponse{
		JobId:  jobID.String(),
		Record: recordToProto(record),
	}, nil
}

func (s *ExtractionService) GetExtraction(ctx context.Context, req *dniv1.GetExtractionRequest) (*dniv1.GetExtractionResponse, error) {
	raw := strings.TrimSpace(req.GetJobId())
	if raw == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	jobID, err := uuid.Parse(raw)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "extraction not found")
		}
		s.logger.Error("get extraction failed", "job_id", jobID, "err", err)
		return nil, status.Error(codes.Internal, "get extraction failed")
	}

	pb, err := extractionToProto(job)
	if err != nil {
		s.logger.Error("decode stored record failed", "job_id", jobID, "err", err)
		return nil, status.Error(codes.Internal, "decode stored record failed")
	}
	return &dniv1.GetExtractionResponse{Extraction: pb}, nil
}

func (s *ExtractionService) ListExtractions(ctx context.Context, req *dniv1.ListExtractionsRequest) (*dniv1.ListExtractionsResponse, error) {
	filter := repository.ListFilter{}

	from, err := parseDateFilter(req.GetFromDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
	}
	filter.From = from

	to, err := parseDateFilter(req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
	}
	if to != nil {
		// make the upper bound inclusive of the whole day
		end := to.Add(24 * time.Hour)
		filter.To = &end
	}

	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		filter.Status = constants.JobStatus(strings.ToUpper(st))
	}

	jobs, err := s.jobs.List(ctx, filter)
	if err != nil {
		s.logger.Error("list extractions failed", "err", err)
		return nil, status.Error(codes.Internal, "list extractions failed")
	}

	out := make([]*dniv1.Extraction, 0, len(jobs))
	for _, job := range jobs {
		pb, err := extractionToProto(job)
		if err != nil {
			s.logger.Error("decode stored record failed", "job_id", job.ID, "err", err)
			return nil, status.Error(codes.Internal, "decode stored record failed")
		}
		out = append(out, pb)
	}
	return &dniv1.ListExtractionsResponse{Extractions: out}, nil
}

func (s *ExtractionService) ExportExtractions(ctx context.Context, req *dniv1.ExportExtractionsRequest) (*dniv1.ExportExtractionsResponse, error) {
	from, err := parseDateFilter(req.GetFromDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
	}
	to, err := parseDateFilter(req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
	}

	data, err := s.exporter.ExportXLSX(ctx, from, to)
	if err != nil {
		s.logger.Error("export extractions failed", "err", err)
		return nil, status.Error(codes.Internal, "export extractions failed")
	}

	name := fmt.Sprintf("extractions-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	s.logger.Info("export built", "filename", name, "bytes", len(data))
	return &dniv1.ExportExtractionsResponse{
		Xlsx:     data,
		Filename: name,
	}, nil
}

// statusFromPipeline maps the pipeline's stable failure codes onto gRPC
// status codes. Unknown codes land on Internal.
func statusFromPipeline(err error) error {
	msg := common.MessageOf(err)
	switch common.CodeOf(err) {
	case common.CodeEngineUnavailable:
		return status.Error(codes.Unavailable, msg)
	case common.CodeImageLoadFailure:
		return status.Error(codes.InvalidArgument, msg)
	case common.CodeNoTextExtracted, common.CodeDocumentNumberNotFound:
		return status.Error(codes.FailedPrecondition, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}

func parseDateFilter(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func recordToProto(r dni.Record) *dniv1.DniRecord {
	pb := &dniv1.DniRecord{
		DocumentNumber:  r.DocumentNumber,
		PaternalSurname: r.PaternalSurname,
		MaternalSurname: r.MaternalSurname,
		GivenNames:      r.GivenNames,
		BirthDate:       r.BirthDate,
		BirthDateIso:    r.BirthDateISO,
		Sex:             r.Sex,
		SexLabel:        r.SexLabel,
		FullName:        r.FullName,
	}
	if r.Age != nil {
		pb.Age = int32(*r.Age)
		pb.HasAge = true
	}
	return pb
}

func extractionToProto(job *repository.Extraction) (*dniv1.Extraction, error) {
	pb := &dniv1.Extraction{
		JobId:        job.ID.String(),
		ImagePath:    job.ImagePath,
		Status:       string(job.Status),
		ErrorCode:    job.ErrorCode,
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    job.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    job.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if job.RecordJSON != "" {
		var rec dni.Record
		if err := json.Unmarshal([]byte(job.RecordJSON), &rec); err != nil {
			return nil, err
		}
		pb.Record = recordToProto(rec)
	}
	return pb, nil
}
