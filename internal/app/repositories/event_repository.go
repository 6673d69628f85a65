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

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventJoinQuery = `
	SELECT e.id, e.name, e.description, e.date, e.time, e.location_id,
	       l.id, l.name, l.description
	FROM events e
	LEFT JOIN locations l ON l.id = e.location_id`

// scanEventRow scans one event row with its left-joined location. A
// missing location yields a nil Location, never a dropped row.
func scanEventRow(rows pgx.Rows) (models.Event, error) {
	var event models.Event
	var locID *int64
	var locName, locDescription *string

	err := rows.Scan(&event.ID, &event.Name, &event.Description, &event.Date, &event.Time,
		&event.LocationID, &locID, &locName, &locDescription)
	if err != nil {
		return event, err
	}

	if locID != nil && locName != nil {
		event.Location = &models.Location{
			ID:          *locID,
			Name:        *locName,
			Description: locDescription,
		}
	}

	return event, nil
}

// ListWithLocations retrieves all events with their locations embedded,
// newest date first.
func (r *EventRepository) ListWithLocations(ctx context.Context) ([]models.Event, error) {
	rows, err := r.db.Query(ctx, eventJoinQuery+` ORDER BY e.date DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var result []models.Event
	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		result = append(result, event)
	}

	return result, rows.Err()
}

// ListUpcoming retrieves events on or after the given date, soonest
// first, capped at limit.
func (r *EventRepository) ListUpcoming(ctx context.Context, from string, limit int) ([]models.Event, error) {
	rows, err := r.db.Query(ctx, eventJoinQuery+`
		WHERE e.date >= $1
		ORDER BY e.date ASC
		LIMIT $2`, from, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing upcoming events: %w", err)
	}
	defer rows.Close()

	var result []models.Event
	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		result = append(result, event)
	}

	return result, rows.Err()
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, date, time, location_id
		FROM events
		WHERE id = $1`, id).Scan(
		&event.ID, &event.Name, &event.Description, &event.Date, &event.Time, &event.LocationID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error finding event: %w", err)
	}

	return &event, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (name, description, date, time, location_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		event.Name, event.Description, event.Date, event.Time, event.LocationID).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

// Update replaces an event's fields
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE events
		SET name = $1, description = $2, date = $3, time = $4, location_id = $5
		WHERE id = $6`,
		event.Name, event.Description, event.Date, event.Time, event.LocationID, event.ID)

	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
