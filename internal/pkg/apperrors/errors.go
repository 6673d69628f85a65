package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTokenExpired           = errors.New("token expired")
	ErrTokenInvalid           = errors.New("invalid token")
	ErrInvalidFormat          = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrUnknownSection   = errors.New("unknown profile section")

	// Member/applicant errors
	ErrMemberNotFound     = errors.New("member not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	// Content errors
	ErrEventNotFound     = errors.New("event not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrRecordingNotFound = errors.New("recording not found")
	ErrHighlightNotFound = errors.New("highlight not found")

	// Storage errors
	ErrStorageFailure   = errors.New("storage operation failed")
	ErrBlobUploadFailed = errors.New("blob upload failed")
)

// FieldError reports a single failed constraint on a named field.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// ValidationError aggregates per-field constraint failures for one section.
// It is produced before any storage call is attempted.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Constraint)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Unwrap lets errors.Is match ErrValidationFailed
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError from field failures
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// StorageError wraps a failed fetch or write against the record store,
// identifying which operation failed.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap lets errors.Is match ErrStorageFailure
func (e *StorageError) Unwrap() error {
	return ErrStorageFailure
}

// NewStorageError creates a StorageError for the named operation
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
