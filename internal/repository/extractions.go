package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/identidata/dniscan/constants"
	"github.com/identidata/dniscan/internal/common"
)

// Extraction is one processed (or in-flight) card scan.
type Extraction struct {
	ID             uuid.UUID
	ImagePath      string
	Status         constants.JobStatus
	OCRText        string
	RecordJSON     string
	DocumentNumber string
	ErrorCode      string
	ErrorMessage   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ListFilter narrows List results. Zero values mean "no constraint".
type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Status constants.JobStatus
}

// ExtractionRepository persists extraction jobs across their lifecycle.
type ExtractionRepository interface {
	Start(ctx context.Context, imagePath string) (*Extraction, error)
	FinishOCR(ctx context.Context, id uuid.UUID, ocrText string) error
	FinishParse(ctx context.Context, id uuid.UUID, documentNumber, recordJSON string) error
	Fail(ctx context.Context, id uuid.UUID, code, message string) error
	GetByID(ctx context.Context, id uuid.UUID) (*Extraction, error)
	List(ctx context.Context, filter ListFilter) ([]*Extraction, error)
}

type sqlExtractionRepository struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
}

func NewExtractionRepository(db *sql.DB, driver string, logger *slog.Logger) ExtractionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &sqlExtractionRepository{db: db, driver: driver, logger: logger}
}

func (r *sqlExtractionRepository) Start(ctx context.Context, imagePath string) (*Extraction, error) {
	now := time.Now().UTC()
	e := &Extraction{
		ID:        uuid.New(),
		ImagePath: imagePath,
		Status:    constants.JobStatusRunning,
		CreatedAt: now,
		UpdatedAt: now,
	}
	q := rebind(r.driver, `INSERT INTO extractions
		(id, image_path, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, q,
		e.ID.String(), e.ImagePath, string(e.Status), fmtTime(e.CreatedAt), fmtTime(e.UpdatedAt))
	if err != nil {
		r.logger.Error("start extraction failed", "image_path", imagePath, "error", err)
		return nil, common.WrapError(err, "insert extraction")
	}
	return e, nil
}

func (r *sqlExtractionRepository) FinishOCR(ctx context.Context, id uuid.UUID, ocrText string) error {
	q := rebind(r.driver, `UPDATE extractions
		SET status = ?, ocr_text = ?, updated_at = ?
		WHERE id = ?`)
	return r.exec(ctx, q, string(constants.JobStatusOCROK), ocrText, fmtTime(time.Now().UTC()), id.String())
}

func (r *sqlExtractionRepository) FinishParse(ctx context.Context, id uuid.UUID, documentNumber, recordJSON string) error {
	q := rebind(r.driver, `UPDATE extractions
		SET status = ?, document_number = ?, record_json = ?, updated_at = ?
		WHERE id = ?`)
	return r.exec(ctx, q, string(constants.JobStatusParsed), documentNumber, recordJSON, fmtTime(time.Now().UTC()), id.String())
}

func (r *sqlExtractionRepository) Fail(ctx context.Context, id uuid.UUID, code, message string) error {
	q := rebind(r.driver, `UPDATE extractions
		SET status = ?, error_code = ?, error_message = ?, updated_at = ?
		WHERE id = ?`)
	return r.exec(ctx, q, string(constants.JobStatusFailed), code, message, fmtTime(time.Now().UTC()), id.String())
}

func (r *sqlExtractionRepository) GetByID(ctx context.Context, id uuid.UUID) (*Extraction, error) {
	q := rebind(r.driver, `SELECT id, image_path, status, ocr_text, record_json,
		document_number, error_code, error_message, created_at, updated_at
		FROM extractions WHERE id = ?`)
	row := r.db.QueryRowContext(ctx, q, id.String())
	e, err := scanExtraction(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return e, err
}

func (r *sqlExtractionRepository) List(ctx context.Context, filter ListFilter) ([]*Extraction, error) {
	q := `SELECT id, image_path, status, ocr_text, record_json,
		document_number, error_code, error_message, created_at, updated_at
		FROM extractions WHERE 1=1`
	var args []any
	if filter.From != nil {
		q += " AND created_at >= ?"
		args = append(args, fmtTime(filter.From.UTC()))
	}
	if filter.To != nil {
		q += " AND created_at <= ?"
		args = append(args, fmtTime(filter.To.UTC()))
	}
	if filter.Status != "" {
		q += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	q += " ORDER BY created_at"

	rows, err := r.db.QueryContext(ctx, rebind(r.driver, q), args...)
	if err != nil {
		return nil, common.WrapError(err, "list extractions")
	}
	defer func() { _ = rows.Close() }()

	var out []*Extraction
	for rows.Next() {
		e, err := scanExtraction(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *sqlExtractionRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return common.WrapError(err, "update extraction")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanExtraction(scan func(dest ...any) error) (*Extraction, error) {
	var (
		e                            Extraction
		id, status, created, updated string
	)
	if err := scan(&id, &e.ImagePath, &status, &e.OCRText, &e.RecordJSON,
		&e.DocumentNumber, &e.ErrorCode, &e.ErrorMessage, &created, &updated); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse extraction id: %w", err)
	}
	e.ID = parsed
	e.Status = constants.JobStatus(status)
	if e.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &e, nil
}

// fmtTime uses a fixed-width fraction so that lexicographic ordering of the
// stored text matches chronological ordering.
func fmtTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
