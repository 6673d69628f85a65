package dto

import (
	"time"

	"github.com/bayms/backend/internal/pkg/apperrors"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeUnauthorized       ErrorCode = "AUTH_001"
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_003"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_004"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
	ErrorCodeBlobUpload     ErrorCode = "SRV_003"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
	Details interface{}            `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithFields attaches per-field validation failures to the error detail
func (e *ErrorDetail) WithFields(fields []apperrors.FieldError) *ErrorDetail {
	e.Fields = fields
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}
