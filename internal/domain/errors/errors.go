// Package errors defines application-level errors with HTTP mappings.
package errors

import (
	"net/http"

	"localfy/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Directory-related errors
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"Business not found",
		"",
	)

	ErrDirectoryUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DIRECTORY_UNAVAILABLE",
		"Unable to load businesses right now",
		"",
	)

	ErrBusinessUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"BUSINESS_UPDATE_FAILED",
		"Failed to update business",
		"",
	)

	ErrBusinessOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"BUSINESS_OWNERSHIP_VIOLATION",
		"You do not own this business",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrReviewCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REVIEW_CREATION_FAILED",
		"Failed to submit review",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"Rating must be between 1 and 5",
		"",
	)

	// Authentication-related errors
	ErrIdentityTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_TOKEN_INVALID",
		"Invalid or expired identity token",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Media-related errors
	ErrMediaUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"MEDIA_UPLOAD_FAILED",
		"Failed to upload media",
		"",
	)

	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"Unsupported media type",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// RemoteFetchError represents a failed remote store read, implementing the
// AppError interface. Callers surface it as a generic fetch failure and keep
// previously-loaded data intact.
type RemoteFetchError struct {
	err     error
	details string
}

// NewRemoteFetchError creates a remote-store-related error
func NewRemoteFetchError(err error, details string) AppError {
	return &RemoteFetchError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *RemoteFetchError) Error() string {
	return errors.Wrap(e.err, "remote fetch failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *RemoteFetchError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteFetchError) ErrorCode() string {
	return "REMOTE_FETCH_FAILED"
}

// Message returns the user-friendly error message
func (e *RemoteFetchError) Message() string {
	return "Unable to reach the directory service"
}

// Details returns detailed error information
func (e *RemoteFetchError) Details() string {
	return e.details
}
