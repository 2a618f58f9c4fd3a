package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidToken        = errors.New("invalid token")
	ErrUpstreamUnavailable = errors.New("identity provider unavailable")
	ErrNotConfigured       = errors.New("storage not configured")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

// Validation reports a field-level validation failure. The field name is
// surfaced to the client so the caller knows what to fix.
func Validation(field, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Field:   field,
		Err:     ErrInvalidInput,
	}
}

// Conflict reports a uniqueness violation. The source API used 400 for
// duplicate campaigns and duplicate emails, so that status is kept.
func Conflict(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrAlreadyExists)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// UpstreamUnavailable reports that the identity provider or object store
// could not be reached. Distinct from Unauthorized: the caller may retry.
func UpstreamUnavailable(message string) *AppError {
	return NewAppError(http.StatusBadGateway, message, ErrUpstreamUnavailable)
}

// NotConfigured reports a missing server-side credential for an optional
// integration (e.g. signing URLs without a service key).
func NotConfigured(message string) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, ErrNotConfigured)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
