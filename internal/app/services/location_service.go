package services

import (
	"context"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/pkg/validation"
)

// LocationService handles dashboard location management
type LocationService struct {
	locations *repositories.LocationRepository
}

// NewLocationService creates a new LocationService
func NewLocationService(locations *repositories.LocationRepository) *LocationService {
	return &LocationService{locations: locations}
}

// List retrieves all locations, alphabetically
func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	return s.locations.List(ctx)
}

// Create validates and inserts a new location
func (s *LocationService) Create(ctx context.Context, req dto.LocationRequest) (*models.Location, error) {
	if verr := validation.Struct(req); verr != nil {
		return nil, verr
	}

	location := &models.Location{
		Name:        req.Name,
		Description: req.Description,
	}

	id, err := s.locations.Create(ctx, location)
	if err != nil {
		return nil, err
	}
	location.ID = id

	return location, nil
}

// Update validates and replaces a location
func (s *LocationService) Update(ctx context.Context, id int64, req dto.LocationRequest) (*models.Location, error) {
	if verr := validation.Struct(req); verr != nil {
		return nil, verr
	}

	location := &models.Location{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.locations.Update(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

// Delete removes a location
func (s *LocationService) Delete(ctx context.Context, id int64) error {
	return s.locations.Delete(ctx, id)
}
