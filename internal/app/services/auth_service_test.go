package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/auth"
)

type fakeUserStore struct {
	created   []*models.User
	createErr error
	user      *models.User
	getErr    error
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.created = append(f.created, user)
	return f.createErr
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

type fakeApplicantCreator struct {
	created   []*models.Member
	createErr error
}

func (f *fakeApplicantCreator) Create(_ context.Context, col repositories.Collection, member *models.Member) error {
	if col != repositories.CollectionApplicants {
		panic("signup must target the applicants collection")
	}
	f.created = append(f.created, member)
	return f.createErr
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "bayms.org",
	})
}

func TestApplyStoresDigitsOnlyPhone(t *testing.T) {
	users := &fakeUserStore{}
	applicants := &fakeApplicantCreator{}
	svc := NewAuthService(users, applicants, testJWTService())

	phone := "(415) 555-1234"
	err := svc.Apply(context.Background(), dto.ApplyRequest{
		Email:     "new@bayms.org",
		Name:      "Sam Park",
		Phone:     &phone,
		Password:  "correct horse",
		Password2: "correct horse",
	})

	require.NoError(t, err)
	require.Len(t, users.created, 1)
	require.Len(t, applicants.created, 1)

	applicant := applicants.created[0]
	assert.Equal(t, "new@bayms.org", applicant.Email)
	require.NotNil(t, applicant.Phone)
	assert.Equal(t, "4155551234", *applicant.Phone)

	user := users.created[0]
	assert.NotEqual(t, "correct horse", user.PasswordHash, "the password must be stored hashed")
	require.NotNil(t, applicant.UserID)
	assert.Equal(t, user.UID, *applicant.UserID)
}

func TestApplyRejectsMismatchedPasswords(t *testing.T) {
	users := &fakeUserStore{}
	svc := NewAuthService(users, &fakeApplicantCreator{}, testJWTService())

	err := svc.Apply(context.Background(), dto.ApplyRequest{
		Email:     "new@bayms.org",
		Name:      "Sam Park",
		Password:  "correct horse",
		Password2: "wrong horse",
	})

	require.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	assert.Empty(t, users.created)
}

func TestApplyRejectsShortPassword(t *testing.T) {
	users := &fakeUserStore{}
	svc := NewAuthService(users, &fakeApplicantCreator{}, testJWTService())

	err := svc.Apply(context.Background(), dto.ApplyRequest{
		Email:     "new@bayms.org",
		Name:      "Sam Park",
		Password:  "short",
		Password2: "short",
	})

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, users.created)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	users := &fakeUserStore{user: &models.User{
		UID:          "uid-1",
		Email:        "kim@bayms.org",
		PasswordHash: hash,
	}}
	jwtService := testJWTService()
	svc := NewAuthService(users, &fakeApplicantCreator{}, jwtService)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "kim@bayms.org",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserID)
	assert.Equal(t, "kim@bayms.org", claims.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	users := &fakeUserStore{user: &models.User{
		UID:          "uid-1",
		Email:        "kim@bayms.org",
		PasswordHash: hash,
	}}
	svc := NewAuthService(users, &fakeApplicantCreator{}, testJWTService())

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "kim@bayms.org",
		Password: "wrong horse",
	})

	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	users := &fakeUserStore{getErr: apperrors.ErrInvalidCredentials}
	svc := NewAuthService(users, &fakeApplicantCreator{}, testJWTService())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@bayms.org",
		Password: "whatever",
	})

	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
