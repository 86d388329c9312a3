// Package errors provides custom error types for the PeraWise API.
// All service-layer errors should use AppError so clients always receive a
// consistent error envelope and internal details never leak.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Onboarding errors.
var (
	ErrUnknownQuestion = &AppError{Code: "UNKNOWN_QUESTION", Message: "Unknown onboarding question", StatusCode: http.StatusBadRequest}
	ErrProfileNotFound = &AppError{Code: "PROFILE_NOT_FOUND", Message: "Onboarding profile not found", StatusCode: http.StatusNotFound}
)

// Analysis errors.
var (
	// ErrAINotImplemented is returned by analysis endpoints whose real AI
	// backend has not been integrated yet.
	ErrAINotImplemented = &AppError{Code: "AI_NOT_IMPLEMENTED", Message: "AI integration not yet implemented", StatusCode: http.StatusNotImplemented}
)
