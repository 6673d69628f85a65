package services

import (
	"context"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/pkg/validation"
)

// RecordingService handles dashboard recording management
type RecordingService struct {
	recordings *repositories.RecordingRepository
	events     *repositories.EventRepository
}

// NewRecordingService creates a new RecordingService
func NewRecordingService(recordings *repositories.RecordingRepository, events *repositories.EventRepository) *RecordingService {
	return &RecordingService{recordings: recordings, events: events}
}

// List retrieves all recordings with their events, newest first
func (s *RecordingService) List(ctx context.Context) ([]models.Recording, error) {
	return s.recordings.ListWithEvents(ctx)
}

// Create validates and inserts a new recording. The referenced event
// must exist.
func (s *RecordingService) Create(ctx context.Context, req dto.RecordingRequest) (*models.Recording, error) {
	if verr := validation.Struct(req); verr != nil {
		return nil, verr
	}

	if _, err := s.events.GetByID(ctx, req.EventID); err != nil {
		return nil, err
	}

	recording := &models.Recording{
		Name:         req.Name,
		Description:  req.Description,
		RecordingURL: req.RecordingURL,
		EventID:      req.EventID,
	}

	id, err := s.recordings.Create(ctx, recording)
	if err != nil {
		return nil, err
	}
	recording.ID = id

	return recording, nil
}

// Update validates and replaces a recording
func (s *RecordingService) Update(ctx context.Context, id int64, req dto.RecordingRequest) (*models.Recording, error) {
	if verr := validation.Struct(req); verr != nil {
		return nil, verr
	}

	if _, err := s.events.GetByID(ctx, req.EventID); err != nil {
		return nil, err
	}

	recording := &models.Recording{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		RecordingURL: req.RecordingURL,
		EventID:      req.EventID,
	}

	if err := s.recordings.Update(ctx, recording); err != nil {
		return nil, err
	}

	return recording, nil
}

// Delete removes a recording
func (s *RecordingService) Delete(ctx context.Context, id int64) error {
	return s.recordings.Delete(ctx, id)
}
