package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/app/services"
	"github.com/bayms/backend/internal/middleware"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/validation"
)

// ProfileController handles section-scoped profile reads and updates.
// The same controller serves members and applicants; the route decides
// which collection a handler targets.
type ProfileController struct {
	profileService *services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile returns the caller's own record
func (c *ProfileController) GetProfile(col repositories.Collection) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := middleware.GetIdentity(ctx)

		profile, err := c.profileService.GetProfile(ctx, col, identity)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
	}
}

// Status returns the caller's application status
func (c *ProfileController) Status(ctx *gin.Context) {
	identity := middleware.GetIdentity(ctx)

	status, err := c.profileService.GetStatus(ctx, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(status))
}

// UpdateSection applies one profile section update
func (c *ProfileController) UpdateSection(col repositories.Collection) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		section, err := validation.ParseSection(ctx.Param("section"))
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		input, err := c.bindSection(ctx, section)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section data")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		identity := middleware.GetIdentity(ctx)

		updated, err := c.profileService.ApplySection(ctx, col, identity, input)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(updated))
	}
}

// bindSection decodes the request body into the section's input type
func (c *ProfileController) bindSection(ctx *gin.Context, section validation.Section) (dto.SectionInput, error) {
	switch section {
	case validation.SectionPersonal:
		var req dto.PersonalInformationSection
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return req, nil

	case validation.SectionLocation:
		var req dto.LocationSchoolSection
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return req, nil

	case validation.SectionAbout:
		return c.bindAboutSection(ctx)

	case validation.SectionParent1:
		var req dto.Parent1InformationSection
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return req, nil

	case validation.SectionParent2:
		var req dto.Parent2InformationSection
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return req, nil
	}

	return nil, apperrors.ErrUnknownSection
}

// bindAboutSection accepts either plain JSON or a multipart form
// carrying the picture file alongside the text fields.
func (c *ProfileController) bindAboutSection(ctx *gin.Context) (dto.SectionInput, error) {
	if !strings.HasPrefix(ctx.ContentType(), "multipart/") {
		var req dto.AboutSection
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return req, nil
	}

	var req dto.AboutSection
	if bio := ctx.PostForm("bio"); bio != "" {
		req.Bio = &bio
	}
	req.Instruments = ctx.PostFormArray("instruments")

	header, err := ctx.FormFile("picture")
	if err != nil && err != http.ErrMissingFile {
		return nil, err
	}
	if header != nil {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		// gin closes multipart files when the request ends
		req.Picture = &dto.PictureUpload{
			Filename: filepath.Base(header.Filename),
			Size:     header.Size,
			Content:  file,
		}
	}

	return req, nil
}
