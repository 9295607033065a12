// Package errors holds the sentinel errors of the retrieval service and the
// mapping from errors to HTTP status codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrStorageUnavailable marks failures talking to the document store.
	ErrStorageUnavailable = errors.New("storage engine unavailable")
	// ErrDocumentNotFound marks lookups of unknown document ids.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrIndexNotReady marks queries arriving before the first index build.
	ErrIndexNotReady = errors.New("index not built")
	// ErrInvalidInput marks malformed client input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTimeout marks operations cut off by a deadline.
	ErrTimeout = errors.New("operation timed out")
	// ErrInternal marks everything else.
	ErrInternal = errors.New("internal error")
)

// AppError attaches a human-readable message and an explicit HTTP status to
// a sentinel.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// New wraps a sentinel into an AppError.
func New(sentinel error, statusCode int, message string) *AppError {
	return &AppError{Err: sentinel, Message: message, StatusCode: statusCode}
}

// Newf is New with a format string.
func Newf(sentinel error, statusCode int, format string, args ...any) *AppError {
	return New(sentinel, statusCode, fmt.Sprintf(format, args...))
}

// HTTPStatusCode resolves the status an error should produce: an explicit
// AppError status wins, then the sentinel mapping, then 500.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStorageUnavailable), errors.Is(err, ErrIndexNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
