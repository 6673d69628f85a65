package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/pkg/apperrors"
)

// LocationRepository handles location database operations
type LocationRepository struct {
	db *pgxpool.Pool
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db}
}

// List retrieves all locations, alphabetically
func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description
		FROM locations
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing locations: %w", err)
	}
	defer rows.Close()

	var result []models.Location
	for rows.Next() {
		var location models.Location
		if err := rows.Scan(&location.ID, &location.Name, &location.Description); err != nil {
			return nil, fmt.Errorf("error scanning location row: %w", err)
		}
		result = append(result, location)
	}

	return result, rows.Err()
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	var location models.Location
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description
		FROM locations
		WHERE id = $1`, id).Scan(&location.ID, &location.Name, &location.Description)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("error finding location: %w", err)
	}

	return &location, nil
}

// Create inserts a new location
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO locations (name, description)
		VALUES ($1, $2)
		RETURNING id`,
		location.Name, location.Description).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating location: %w", err)
	}

	return id, nil
}

// Update replaces a location's fields
func (r *LocationRepository) Update(ctx context.Context, location *models.Location) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE locations
		SET name = $1, description = $2
		WHERE id = $3`,
		location.Name, location.Description, location.ID)

	if err != nil {
		return fmt.Errorf("error updating location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLocationNotFound
	}

	return nil
}

// Delete removes a location
func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLocationNotFound
	}

	return nil
}
