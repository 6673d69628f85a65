package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/services"
	"github.com/bayms/backend/internal/middleware"
)

// HighlightController handles dashboard highlight management. Mutation
// responses carry the full resulting collection so the dashboard can
// swap its view without a second request.
type HighlightController struct {
	highlightService *services.HighlightService
}

// NewHighlightController creates a new HighlightController
func NewHighlightController(highlightService *services.HighlightService) *HighlightController {
	return &HighlightController{
		highlightService: highlightService,
	}
}

// ListHighlights returns all highlights, newest first
func (c *HighlightController) ListHighlights(ctx *gin.Context) {
	highlights, err := c.highlightService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(highlights))
}

// CreateHighlight handles highlight creation
func (c *HighlightController) CreateHighlight(ctx *gin.Context) {
	var req dto.HighlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid highlight data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entry, snapshot, err := c.highlightService.Add(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{
		"highlight":  entry,
		"highlights": snapshot,
	}))
}

// UpdateHighlight handles partial highlight updates
func (c *HighlightController) UpdateHighlight(ctx *gin.Context) {
	var req dto.HighlightPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid highlight data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	snapshot, err := c.highlightService.Update(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"highlights": snapshot}))
}

// DeleteHighlight handles highlight deletion
func (c *HighlightController) DeleteHighlight(ctx *gin.Context) {
	snapshot, err := c.highlightService.Remove(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"highlights": snapshot}))
}
