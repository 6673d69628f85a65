package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/services"
	"github.com/bayms/backend/internal/middleware"
)

// LocationController handles dashboard location management
type LocationController struct {
	locationService *services.LocationService
}

// NewLocationController creates a new LocationController
func NewLocationController(locationService *services.LocationService) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// ListLocations returns all locations
func (c *LocationController) ListLocations(ctx *gin.Context) {
	locations, err := c.locationService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(locations))
}

// CreateLocation handles location creation
func (c *LocationController) CreateLocation(ctx *gin.Context) {
	var req dto.LocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid location data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	location, err := c.locationService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(location))
}

// UpdateLocation handles location replacement
func (c *LocationController) UpdateLocation(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.LocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid location data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	location, err := c.locationService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(location))
}

// DeleteLocation handles location deletion
func (c *LocationController) DeleteLocation(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.locationService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
