package services

import (
	"context"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/highlights"
	"github.com/bayms/backend/internal/pkg/validation"
)

// HighlightPersister is the subset of the highlight repository the
// highlight service needs.
type HighlightPersister interface {
	List(ctx context.Context) ([]models.Highlight, error)
	Create(ctx context.Context, highlight *models.Highlight) error
	Update(ctx context.Context, highlight *models.Highlight) error
	Delete(ctx context.Context, id string) error
}

// HighlightService manages highlights through a write-through display
// cache: the database is the system of record, the cache serves
// snapshots so a mutation's response never needs a re-fetch.
type HighlightService struct {
	repo  HighlightPersister
	cache *highlights.Cache
}

// NewHighlightService creates a new HighlightService
func NewHighlightService(repo HighlightPersister, cache *highlights.Cache) *HighlightService {
	return &HighlightService{
		repo:  repo,
		cache: cache,
	}
}

// List loads the persisted highlights, newest first, and warms the
// cache with them.
func (s *HighlightService) List(ctx context.Context) ([]models.Highlight, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.cache.Replace(entries), nil
}

// Add validates and persists a new highlight, prepending it to the
// cached collection. It returns the new entry and the resulting
// snapshot.
func (s *HighlightService) Add(ctx context.Context, req dto.HighlightRequest) (*models.Highlight, []models.Highlight, error) {
	if verr := validation.Struct(req); verr != nil {
		return nil, nil, verr
	}

	entry, snapshot := s.cache.Add(req.Title, req.Description, req.MediaURL)

	if err := s.repo.Create(ctx, &entry); err != nil {
		// Roll the cache back so it never shows an unpersisted entry
		s.cache.Remove(entry.ID)
		return nil, nil, err
	}

	return &entry, snapshot, nil
}

// Update validates and applies a partial highlight update, in place in
// the cached collection, and returns the resulting snapshot.
func (s *HighlightService) Update(ctx context.Context, id string, req dto.HighlightPatchRequest) ([]models.Highlight, error) {
	if verr := validation.Struct(req); verr != nil {
		return nil, verr
	}

	current, err := s.persistedByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.MediaURL != nil {
		current.MediaURL = *req.MediaURL
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	return s.cache.Update(id, highlights.Patch{
		Title:       req.Title,
		Description: req.Description,
		MediaURL:    req.MediaURL,
	}), nil
}

// Remove deletes a highlight and returns the resulting snapshot
func (s *HighlightService) Remove(ctx context.Context, id string) ([]models.Highlight, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.cache.Remove(id), nil
}

// persistedByID finds one persisted highlight by scanning the listing;
// the collection stays small enough that a keyed lookup isn't worth a
// dedicated query.
func (s *HighlightService) persistedByID(ctx context.Context, id string) (*models.Highlight, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, apperrors.ErrHighlightNotFound
}
