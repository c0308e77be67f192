package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Stable error codes for the extraction pipeline. Every terminal failure of
// an extraction carries exactly one of these; per-field misses never surface
// as errors at all.
const (
	CodeEngineUnavailable      = "ENGINE_UNAVAILABLE"
	CodeImageLoadFailure       = "IMAGE_LOAD_FAILURE"
	CodeNoTextExtracted        = "NO_TEXT_EXTRACTED"
	CodeDocumentNumberNotFound = "DOCUMENT_NUMBER_NOT_FOUND"
	CodeProcessingFailure      = "PROCESSING_FAILURE"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// NewAppError builds an AppError with a stable code and a human-readable message.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// CodeOf extracts the stable code from err, falling back to
// CodeProcessingFailure for anything that is not an AppError.
func CodeOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeProcessingFailure
}

// MessageOf extracts a human-readable reason from err.
func MessageOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Cause != nil {
			return fmt.Sprintf("%s: %v", ae.Message, ae.Cause)
		}
		return ae.Message
	}
	return err.Error()
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
