// Package errors defines application errors carried across the service boundary.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	// Validation errors
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"All fields are required",
		"",
	)

	// Report-related errors
	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"Report not found",
		"",
	)

	ErrReportCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REPORT_CREATION_FAILED",
		"Failed to save report",
		"",
	)

	// Device-registry errors
	ErrDeviceSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"DEVICE_SAVE_FAILED",
		"Could not save token",
		"",
	)

	// Feedback errors
	ErrFeedbackSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"FEEDBACK_SAVE_FAILED",
		"Failed to save feedback",
		"",
	)

	// Push and campaign errors
	ErrCampaignFailed = NewBaseError(
		http.StatusInternalServerError,
		"CAMPAIGN_FAILED",
		"Failed to send push",
		"",
	)

	// Storage errors
	ErrStorage = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_ERROR",
		"Storage operation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps a raw database error into a storage AppError.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrStorage.WithDetails(err.Error()), message)
}
