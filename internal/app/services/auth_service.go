package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/auth"
	"github.com/bayms/backend/internal/pkg/logger"
	"github.com/bayms/backend/internal/pkg/phone"
	"github.com/bayms/backend/internal/pkg/validation"
)

// UserStore is the subset of the user repository the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ApplicantCreator is the subset of the member repository the auth
// service needs.
type ApplicantCreator interface {
	Create(ctx context.Context, col repositories.Collection, member *models.Member) error
}

// AuthService handles applicant signup and login
type AuthService struct {
	users      UserStore
	applicants ApplicantCreator
	jwt        *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, applicants ApplicantCreator, jwt *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		applicants: applicants,
		jwt:        jwt,
	}
}

// Apply registers a new applicant: a credential record plus an empty
// applicant profile seeded with the contact fields. The phone number is
// stored digits-only; formatting happens on later profile edits.
func (s *AuthService) Apply(ctx context.Context, req dto.ApplyRequest) error {
	if verr := validation.Struct(req); verr != nil {
		return verr
	}
	if req.Password != req.Password2 {
		return apperrors.ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	uid := uuid.New().String()
	user := &models.User{
		UID:          uid,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	applicant := &models.Member{
		UserID: &uid,
		Email:  req.Email,
		Name:   &req.Name,
	}
	if req.Phone != nil {
		digits := phone.Digits(*req.Phone)
		applicant.Phone = &digits
	}
	if err := s.applicants.Create(ctx, repositories.CollectionApplicants, applicant); err != nil {
		return err
	}

	logger.Info().Str("email", req.Email).Msg("Applicant registered")
	return nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if verr := validation.Struct(req); verr != nil {
		return nil, verr
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(auth.Identity{
		UserID: user.UID,
		Email:  user.Email,
	})
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
