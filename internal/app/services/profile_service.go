package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/auth"
	"github.com/bayms/backend/internal/pkg/filestorage"
	"github.com/bayms/backend/internal/pkg/logger"
	"github.com/bayms/backend/internal/pkg/phone"
	"github.com/bayms/backend/internal/pkg/validation"
)

// pictureBucket is the blob store namespace for profile pictures
const pictureBucket = "profile-pictures"

// MemberStore is the subset of the member repository the profile
// service needs.
type MemberStore interface {
	GetByEmail(ctx context.Context, col repositories.Collection, email string) (*models.Member, error)
	UpdateFields(ctx context.Context, col repositories.Collection, email string, fields map[string]interface{}) error
}

// ProfileService applies section-scoped profile updates for members and
// applicants. Each section validates and persists independently of the
// others.
type ProfileService struct {
	members MemberStore
	storage filestorage.BlobStorage
}

// NewProfileService creates a new ProfileService
func NewProfileService(members MemberStore, storage filestorage.BlobStorage) *ProfileService {
	return &ProfileService{
		members: members,
		storage: storage,
	}
}

// GetProfile loads the caller's own record
func (s *ProfileService) GetProfile(ctx context.Context, col repositories.Collection, identity auth.Identity) (*models.Member, error) {
	if !identity.Valid() {
		return nil, apperrors.ErrAuthenticationRequired
	}
	return s.members.GetByEmail(ctx, col, identity.Email)
}

// GetStatus reports whether the caller's application has been rejected
func (s *ProfileService) GetStatus(ctx context.Context, identity auth.Identity) (*dto.ApplicationStatus, error) {
	if !identity.Valid() {
		return nil, apperrors.ErrAuthenticationRequired
	}

	applicant, err := s.members.GetByEmail(ctx, repositories.CollectionApplicants, identity.Email)
	if err != nil {
		return nil, err
	}

	return &dto.ApplicationStatus{Rejected: applicant.Rejected}, nil
}

// ApplySection validates one profile section and writes exactly that
// section's columns. The record is keyed by the caller's identity; an
// email submitted inside the personal section never changes the key.
// A failed picture upload aborts the section before any column is
// written.
func (s *ProfileService) ApplySection(ctx context.Context, col repositories.Collection, identity auth.Identity, input dto.SectionInput) (*dto.UpdatedFields, error) {
	if !identity.Valid() {
		return nil, apperrors.ErrAuthenticationRequired
	}

	if verr := validation.Struct(input); verr != nil {
		return nil, verr
	}

	fields, err := s.sectionFields(identity, input)
	if err != nil {
		return nil, err
	}

	if err := s.members.UpdateFields(ctx, col, identity.Email, fields); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	logger.Info().
		Str("section", string(input.Section())).
		Str("email", identity.Email).
		Strs("fields", names).
		Msg("Profile section updated")

	return &dto.UpdatedFields{Fields: names}, nil
}

// sectionFields maps a validated section onto its column set. Every
// column belonging to the section is written; a nil field clears its
// column, matching a full form submit.
func (s *ProfileService) sectionFields(identity auth.Identity, input dto.SectionInput) (map[string]interface{}, error) {
	switch v := input.(type) {
	case dto.PersonalInformationSection:
		return map[string]interface{}{
			"name":     v.Name,
			"phone":    formatPhone(v.Phone),
			"birthday": v.Birthday,
		}, nil

	case dto.LocationSchoolSection:
		return map[string]interface{}{
			"street": v.Street,
			"city":   v.City,
			"state":  v.State,
			"zip":    v.Zip,
			"school": v.School,
			"grade":  v.Grade,
		}, nil

	case dto.AboutSection:
		fields := map[string]interface{}{
			"instruments": v.Instruments,
			"bio":         v.Bio,
		}
		if v.Picture != nil {
			ref, err := s.savePicture(identity, v.Picture)
			if err != nil {
				return nil, err
			}
			fields["picture"] = &ref
		}
		return fields, nil

	case dto.Parent1InformationSection:
		return map[string]interface{}{
			"parent1name":  v.Parent1Name,
			"parent1email": v.Parent1Email,
			"parent1phone": formatPhone(v.Parent1Phone),
		}, nil

	case dto.Parent2InformationSection:
		return map[string]interface{}{
			"parent2name":  v.Parent2Name,
			"parent2email": v.Parent2Email,
			"parent2phone": formatPhone(v.Parent2Phone),
		}, nil
	}

	return nil, apperrors.ErrUnknownSection
}

// savePicture uploads a profile picture under the caller's own
// namespace and returns its storage reference.
func (s *ProfileService) savePicture(identity auth.Identity, upload *dto.PictureUpload) (string, error) {
	if upload.Size > validation.PictureMaxBytes {
		return "", apperrors.NewValidationError(apperrors.FieldError{
			Field:      "picture",
			Constraint: "max",
			Message:    fmt.Sprintf("picture must be at most %d bytes", validation.PictureMaxBytes),
		})
	}

	namespace := identity.UserID
	if namespace == "" {
		namespace = identity.Email
	}
	path := fmt.Sprintf("%s/%s/%s", pictureBucket, namespace, upload.Filename)

	ref, err := s.storage.Save(path, upload.Content, filestorage.SaveOptions{
		CacheControl: "3600",
		Overwrite:    true,
	})
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Profile picture upload failed")
		return "", apperrors.NewCustomError(apperrors.ErrBlobUploadFailed,
			fmt.Sprintf("profile picture upload failed: %v", err))
	}

	return ref, nil
}

// formatPhone normalizes a phone field for display, leaving nil alone
func formatPhone(raw *string) *string {
	if raw == nil {
		return nil
	}
	formatted := phone.Format(*raw)
	return &formatted
}
