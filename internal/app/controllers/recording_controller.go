package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/services"
	"github.com/bayms/backend/internal/middleware"
)

// RecordingController handles dashboard recording management
type RecordingController struct {
	recordingService *services.RecordingService
}

// NewRecordingController creates a new RecordingController
func NewRecordingController(recordingService *services.RecordingService) *RecordingController {
	return &RecordingController{
		recordingService: recordingService,
	}
}

// ListRecordings returns all recordings with their events
func (c *RecordingController) ListRecordings(ctx *gin.Context) {
	recordings, err := c.recordingService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(recordings))
}

// CreateRecording handles recording creation
func (c *RecordingController) CreateRecording(ctx *gin.Context) {
	var req dto.RecordingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid recording data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	recording, err := c.recordingService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(recording))
}

// UpdateRecording handles recording replacement
func (c *RecordingController) UpdateRecording(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.RecordingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid recording data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	recording, err := c.recordingService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(recording))
}

// DeleteRecording handles recording deletion
func (c *RecordingController) DeleteRecording(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.recordingService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
