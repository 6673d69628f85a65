package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithFields(verr.Fields)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrAuthenticationRequired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrUnknownSection):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")

	case errors.Is(err, apperrors.ErrPasswordMismatch):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Passwords do not match")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")

	case errors.Is(err, apperrors.ErrMemberNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrLocationNotFound),
		errors.Is(err, apperrors.ErrRecordingNotFound),
		errors.Is(err, apperrors.ErrHighlightNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	case errors.Is(err, apperrors.ErrBlobUploadFailed):
		logger.Error().Err(err).Msg("Blob upload failed")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeBlobUpload, "File upload failed")

	case errors.Is(err, apperrors.ErrStorageFailure):
		logger.Error().Err(err).Msg("Storage operation failed")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "Storage operation failed")

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
