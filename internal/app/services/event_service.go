package services

import (
	"context"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/pkg/validation"
)

// EventService handles dashboard event management
type EventService struct {
	events *repositories.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(events *repositories.EventRepository) *EventService {
	return &EventService{events: events}
}

// List retrieves all events with their locations, newest date first
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.events.ListWithLocations(ctx)
}

// Create validates and inserts a new event
func (s *EventService) Create(ctx context.Context, req dto.EventRequest) (*models.Event, error) {
	if verr := validation.Struct(req); verr != nil {
		return nil, verr
	}

	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		LocationID:  &req.LocationID,
	}

	id, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id

	return event, nil
}

// Update validates and replaces an event
func (s *EventService) Update(ctx context.Context, id int64, req dto.EventRequest) (*models.Event, error) {
	if verr := validation.Struct(req); verr != nil {
		return nil, verr
	}

	event := &models.Event{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		LocationID:  &req.LocationID,
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes an event
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}
