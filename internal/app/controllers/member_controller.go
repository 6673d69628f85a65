package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/services"
	"github.com/bayms/backend/internal/middleware"
)

// MemberController handles member and applicant roster operations
type MemberController struct {
	memberService *services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService *services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// ListMembers returns the full member roster
func (c *MemberController) ListMembers(ctx *gin.Context) {
	members, err := c.memberService.ListMembers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members))
}

// ListApplicants returns the pending applicants
func (c *MemberController) ListApplicants(ctx *gin.Context) {
	applicants, err := c.memberService.ListApplicants(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applicants))
}

// RejectApplicant marks an application as rejected
func (c *MemberController) RejectApplicant(ctx *gin.Context) {
	email := ctx.Param("email")

	if err := c.memberService.RejectApplicant(ctx, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"email": email, "rejected": true}))
}
