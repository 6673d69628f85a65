package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/services"
	"github.com/bayms/backend/internal/middleware"
)

// ContentController serves the public site pages: home, performances,
// and musicians.
type ContentController struct {
	performanceService *services.PerformanceService
	memberService      *services.MemberService
}

// NewContentController creates a new ContentController
func NewContentController(performanceService *services.PerformanceService, memberService *services.MemberService) *ContentController {
	return &ContentController{
		performanceService: performanceService,
		memberService:      memberService,
	}
}

// Home returns the home page content: the next upcoming events plus the
// highlight reel.
func (c *ContentController) Home(ctx *gin.Context) {
	page, err := c.performanceService.LoadPerformances(ctx, services.FilterUpcomingOnly, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(page))
}

// Performances returns the event catalog with recordings. With
// ?recorded=true only events that have at least one recording are
// returned.
func (c *ContentController) Performances(ctx *gin.Context) {
	filter := services.FilterAll
	if ctx.Query("recorded") == "true" {
		filter = services.FilterWithRecordingsOnly
	}

	page, err := c.performanceService.LoadPerformances(ctx, filter, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(page))
}

// Musicians returns the public musician roster
func (c *ContentController) Musicians(ctx *gin.Context) {
	musicians, err := c.memberService.ListMusicians(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(musicians))
}
