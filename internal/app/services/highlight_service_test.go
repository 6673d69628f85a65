package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/highlights"
)

type fakeHighlightRepo struct {
	entries   []models.Highlight
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	created []models.Highlight
	updated []models.Highlight
	deleted []string
}

func (f *fakeHighlightRepo) List(context.Context) ([]models.Highlight, error) {
	return f.entries, f.listErr
}

func (f *fakeHighlightRepo) Create(_ context.Context, h *models.Highlight) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *h)
	return nil
}

func (f *fakeHighlightRepo) Update(_ context.Context, h *models.Highlight) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, *h)
	return nil
}

func (f *fakeHighlightRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestAddPrependsAndPersists(t *testing.T) {
	repo := &fakeHighlightRepo{}
	cache := highlights.NewCache()
	cache.Replace([]models.Highlight{{ID: "old", Title: "Older", AddedAt: time.Now()}})
	svc := NewHighlightService(repo, cache)

	entry, snapshot, err := svc.Add(context.Background(), dto.HighlightRequest{
		Title:    "Spring showcase",
		MediaURL: "https://youtube.com/watch?v=abc",
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, entry.ID, repo.created[0].ID)

	require.Len(t, snapshot, 2)
	assert.Equal(t, entry.ID, snapshot[0].ID, "a new highlight goes to the front")
	assert.Equal(t, "old", snapshot[1].ID)
}

func TestAddRollsBackCacheOnPersistFailure(t *testing.T) {
	repo := &fakeHighlightRepo{createErr: errors.New("insert failed")}
	cache := highlights.NewCache()
	svc := NewHighlightService(repo, cache)

	_, _, err := svc.Add(context.Background(), dto.HighlightRequest{
		Title:    "Spring showcase",
		MediaURL: "https://youtube.com/watch?v=abc",
	})

	require.Error(t, err)
	assert.Zero(t, cache.Len(), "an unpersisted entry must not stay cached")
}

func TestAddRejectsInvalidRequest(t *testing.T) {
	repo := &fakeHighlightRepo{}
	svc := NewHighlightService(repo, highlights.NewCache())

	_, _, err := svc.Add(context.Background(), dto.HighlightRequest{
		Title:    "Spring showcase",
		MediaURL: "not a url",
	})

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repo.created)
}

func TestUpdateMergesPatch(t *testing.T) {
	repo := &fakeHighlightRepo{entries: []models.Highlight{
		{ID: "h1", Title: "Old title", MediaURL: "https://youtube.com/watch?v=abc"},
	}}
	cache := highlights.NewCache()
	cache.Replace(repo.entries)
	svc := NewHighlightService(repo, cache)

	title := "New title"
	snapshot, err := svc.Update(context.Background(), "h1", dto.HighlightPatchRequest{Title: &title})

	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, "New title", repo.updated[0].Title)
	assert.Equal(t, "https://youtube.com/watch?v=abc", repo.updated[0].MediaURL,
		"unpatched fields keep their persisted values")

	require.Len(t, snapshot, 1)
	assert.Equal(t, "New title", snapshot[0].Title)
}

func TestUpdateUnknownIDFails(t *testing.T) {
	repo := &fakeHighlightRepo{}
	svc := NewHighlightService(repo, highlights.NewCache())

	title := "New title"
	_, err := svc.Update(context.Background(), "missing", dto.HighlightPatchRequest{Title: &title})

	require.ErrorIs(t, err, apperrors.ErrHighlightNotFound)
	assert.Empty(t, repo.updated)
}

func TestRemoveDeletesAndDropsFromCache(t *testing.T) {
	repo := &fakeHighlightRepo{}
	cache := highlights.NewCache()
	cache.Replace([]models.Highlight{{ID: "h1"}, {ID: "h2"}})
	svc := NewHighlightService(repo, cache)

	snapshot, err := svc.Remove(context.Background(), "h1")

	require.NoError(t, err)
	assert.Equal(t, []string{"h1"}, repo.deleted)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "h2", snapshot[0].ID)
}

func TestListWarmsCache(t *testing.T) {
	repo := &fakeHighlightRepo{entries: []models.Highlight{{ID: "h1"}, {ID: "h2"}}}
	cache := highlights.NewCache()
	svc := NewHighlightService(repo, cache)

	entries, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 2, cache.Len())
}
