package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/auth"
	"github.com/bayms/backend/internal/pkg/filestorage"
)

type updateCall struct {
	col    repositories.Collection
	email  string
	fields map[string]interface{}
}

type fakeMemberStore struct {
	member    *models.Member
	getErr    error
	updateErr error
	updates   []updateCall
	gets      []repositories.Collection
}

func (f *fakeMemberStore) GetByEmail(_ context.Context, col repositories.Collection, email string) (*models.Member, error) {
	f.gets = append(f.gets, col)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.member, nil
}

func (f *fakeMemberStore) UpdateFields(_ context.Context, col repositories.Collection, email string, fields map[string]interface{}) error {
	f.updates = append(f.updates, updateCall{col: col, email: email, fields: fields})
	return f.updateErr
}

type savedBlob struct {
	path string
	opts filestorage.SaveOptions
}

type fakeBlobStorage struct {
	ref   string
	err   error
	saved []savedBlob
}

func (f *fakeBlobStorage) Save(path string, _ io.Reader, opts filestorage.SaveOptions) (string, error) {
	f.saved = append(f.saved, savedBlob{path: path, opts: opts})
	if f.err != nil {
		return "", f.err
	}
	return f.ref, nil
}

func (f *fakeBlobStorage) Delete(string) error { return nil }

func strptr(s string) *string { return &s }

func TestApplySectionRequiresIdentity(t *testing.T) {
	store := &fakeMemberStore{}
	svc := NewProfileService(store, &fakeBlobStorage{})

	_, err := svc.ApplySection(context.Background(), repositories.CollectionMembers,
		auth.Identity{}, dto.PersonalInformationSection{Email: "kim@bayms.org"})

	require.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)
	assert.Empty(t, store.updates)
}

func TestApplyPersonalSectionKeysByIdentityEmail(t *testing.T) {
	store := &fakeMemberStore{}
	svc := NewProfileService(store, &fakeBlobStorage{})
	identity := auth.Identity{UserID: "uid-1", Email: "kim@bayms.org"}

	updated, err := svc.ApplySection(context.Background(), repositories.CollectionMembers,
		identity, dto.PersonalInformationSection{
			Name:  strptr("Kim Lee"),
			Email: "someone-else@example.com",
			Phone: strptr("415-555-1234"),
		})

	require.NoError(t, err)
	require.Len(t, store.updates, 1)

	call := store.updates[0]
	assert.Equal(t, repositories.CollectionMembers, call.col)
	assert.Equal(t, "kim@bayms.org", call.email, "the record key must come from the caller identity")
	assert.NotContains(t, call.fields, "email", "a submitted email never reaches the update")

	phone, ok := call.fields["phone"].(*string)
	require.True(t, ok)
	require.NotNil(t, phone)
	assert.Equal(t, "(415) 555-1234", *phone)

	assert.Equal(t, []string{"birthday", "name", "phone"}, updated.Fields)
}

func TestApplySectionValidationShortCircuits(t *testing.T) {
	store := &fakeMemberStore{}
	storage := &fakeBlobStorage{}
	svc := NewProfileService(store, storage)
	identity := auth.Identity{Email: "kim@bayms.org"}

	_, err := svc.ApplySection(context.Background(), repositories.CollectionMembers,
		identity, dto.PersonalInformationSection{Email: "not-an-email"})

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "email", verr.Fields[0].Field)
	assert.Equal(t, "email", verr.Fields[0].Constraint)

	assert.Empty(t, store.updates, "an invalid section must not touch storage")
	assert.Empty(t, storage.saved)
}

func TestApplySectionTouchesOnlyItsOwnColumns(t *testing.T) {
	store := &fakeMemberStore{}
	svc := NewProfileService(store, &fakeBlobStorage{})
	identity := auth.Identity{Email: "kim@bayms.org"}

	_, err := svc.ApplySection(context.Background(), repositories.CollectionApplicants,
		identity, dto.LocationSchoolSection{
			City:  strptr("Berkeley"),
			State: strptr("California"),
		})

	require.NoError(t, err)
	require.Len(t, store.updates, 1)

	fields := store.updates[0].fields
	for _, col := range []string{"street", "city", "state", "zip", "school", "grade"} {
		assert.Contains(t, fields, col)
	}
	for _, col := range []string{"name", "phone", "birthday", "bio", "parent1name"} {
		assert.NotContains(t, fields, col)
	}
}

func TestApplyAboutSectionUploadsPicture(t *testing.T) {
	store := &fakeMemberStore{}
	storage := &fakeBlobStorage{ref: "profile-pictures/uid-1/avatar.jpg"}
	svc := NewProfileService(store, storage)
	identity := auth.Identity{UserID: "uid-1", Email: "kim@bayms.org"}

	_, err := svc.ApplySection(context.Background(), repositories.CollectionMembers,
		identity, dto.AboutSection{
			Picture: &dto.PictureUpload{
				Filename: "avatar.jpg",
				Size:     1024,
				Content:  strings.NewReader("jpeg bytes"),
			},
			Instruments: []string{"Violin"},
			Bio:         strptr("First chair."),
		})

	require.NoError(t, err)
	require.Len(t, storage.saved, 1)
	assert.Equal(t, "profile-pictures/uid-1/avatar.jpg", storage.saved[0].path)
	assert.True(t, storage.saved[0].opts.Overwrite)
	assert.Equal(t, "3600", storage.saved[0].opts.CacheControl)

	require.Len(t, store.updates, 1)
	pic, ok := store.updates[0].fields["picture"].(*string)
	require.True(t, ok)
	assert.Equal(t, storage.ref, *pic)
}

func TestApplyAboutSectionUploadFailureAbortsSection(t *testing.T) {
	store := &fakeMemberStore{}
	storage := &fakeBlobStorage{err: errors.New("bucket unavailable")}
	svc := NewProfileService(store, storage)
	identity := auth.Identity{UserID: "uid-1", Email: "kim@bayms.org"}

	_, err := svc.ApplySection(context.Background(), repositories.CollectionMembers,
		identity, dto.AboutSection{
			Picture: &dto.PictureUpload{
				Filename: "avatar.jpg",
				Size:     1024,
				Content:  strings.NewReader("jpeg bytes"),
			},
			Bio: strptr("First chair."),
		})

	require.ErrorIs(t, err, apperrors.ErrBlobUploadFailed)
	assert.Empty(t, store.updates, "a failed upload must abort the whole section")
}

func TestApplyAboutSectionRejectsOversizedPicture(t *testing.T) {
	store := &fakeMemberStore{}
	storage := &fakeBlobStorage{}
	svc := NewProfileService(store, storage)
	identity := auth.Identity{Email: "kim@bayms.org"}

	_, err := svc.ApplySection(context.Background(), repositories.CollectionMembers,
		identity, dto.AboutSection{
			Picture: &dto.PictureUpload{
				Filename: "huge.png",
				Size:     50_000_000,
				Content:  strings.NewReader("png bytes"),
			},
		})

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, storage.saved, "an oversized picture must never reach the blob store")
	assert.Empty(t, store.updates)
}

func TestApplyAboutSectionWithoutUserIDFallsBackToEmail(t *testing.T) {
	store := &fakeMemberStore{}
	storage := &fakeBlobStorage{ref: "ref"}
	svc := NewProfileService(store, storage)
	identity := auth.Identity{Email: "kim@bayms.org"}

	_, err := svc.ApplySection(context.Background(), repositories.CollectionApplicants,
		identity, dto.AboutSection{
			Picture: &dto.PictureUpload{
				Filename: "avatar.jpg",
				Size:     10,
				Content:  strings.NewReader("x"),
			},
		})

	require.NoError(t, err)
	require.Len(t, storage.saved, 1)
	assert.Equal(t, "profile-pictures/kim@bayms.org/avatar.jpg", storage.saved[0].path)
}

func TestApplyParentSectionsAreIndependent(t *testing.T) {
	store := &fakeMemberStore{}
	svc := NewProfileService(store, &fakeBlobStorage{})
	identity := auth.Identity{Email: "kim@bayms.org"}

	_, err := svc.ApplySection(context.Background(), repositories.CollectionMembers,
		identity, dto.Parent2InformationSection{
			Parent2Name:  strptr("Jordan Lee"),
			Parent2Phone: strptr("4155559876"),
		})

	require.NoError(t, err)
	require.Len(t, store.updates, 1)

	fields := store.updates[0].fields
	assert.Contains(t, fields, "parent2name")
	assert.NotContains(t, fields, "parent1name")

	phone, ok := fields["parent2phone"].(*string)
	require.True(t, ok)
	assert.Equal(t, "(415) 555-9876", *phone)
}

func TestGetProfileRequiresIdentity(t *testing.T) {
	svc := NewProfileService(&fakeMemberStore{}, &fakeBlobStorage{})

	_, err := svc.GetProfile(context.Background(), repositories.CollectionApplicants, auth.Identity{})

	require.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)
}

func TestGetStatusRequiresIdentity(t *testing.T) {
	store := &fakeMemberStore{}
	svc := NewProfileService(store, &fakeBlobStorage{})

	_, err := svc.GetStatus(context.Background(), auth.Identity{})

	require.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)
	assert.Empty(t, store.gets)
}

func TestGetStatusReportsRejection(t *testing.T) {
	store := &fakeMemberStore{member: &models.Member{
		Email:    "kim@bayms.org",
		Rejected: true,
	}}
	svc := NewProfileService(store, &fakeBlobStorage{})

	status, err := svc.GetStatus(context.Background(), auth.Identity{Email: "kim@bayms.org"})

	require.NoError(t, err)
	assert.True(t, status.Rejected)
	require.Len(t, store.gets, 1)
	assert.Equal(t, repositories.CollectionApplicants, store.gets[0],
		"status reads come from the applicants collection")
}

func TestGetStatusPendingApplication(t *testing.T) {
	store := &fakeMemberStore{member: &models.Member{Email: "kim@bayms.org"}}
	svc := NewProfileService(store, &fakeBlobStorage{})

	status, err := svc.GetStatus(context.Background(), auth.Identity{Email: "kim@bayms.org"})

	require.NoError(t, err)
	assert.False(t, status.Rejected)
}
