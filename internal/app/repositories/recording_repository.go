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

// RecordingRepository handles recording database operations
type RecordingRepository struct {
	db *pgxpool.Pool
}

// NewRecordingRepository creates a new RecordingRepository
func NewRecordingRepository(db *pgxpool.Pool) *RecordingRepository {
	return &RecordingRepository{db: db}
}

// ListWithEvents retrieves all recordings with their parent event and
// that event's location embedded, newest insertion first.
func (r *RecordingRepository) ListWithEvents(ctx context.Context) ([]models.Recording, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.name, r.description, r.recording_url, r.event_id,
		       e.id, e.name, e.description, e.date, e.time, e.location_id,
		       l.id, l.name, l.description
		FROM recordings r
		JOIN events e ON e.id = r.event_id
		LEFT JOIN locations l ON l.id = e.location_id
		ORDER BY r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing recordings: %w", err)
	}
	defer rows.Close()

	var result []models.Recording
	for rows.Next() {
		var recording models.Recording
		var event models.Event
		var locID *int64
		var locName, locDescription *string

		err := rows.Scan(
			&recording.ID, &recording.Name, &recording.Description, &recording.RecordingURL, &recording.EventID,
			&event.ID, &event.Name, &event.Description, &event.Date, &event.Time, &event.LocationID,
			&locID, &locName, &locDescription)
		if err != nil {
			return nil, fmt.Errorf("error scanning recording row: %w", err)
		}

		if locID != nil && locName != nil {
			event.Location = &models.Location{
				ID:          *locID,
				Name:        *locName,
				Description: locDescription,
			}
		}
		recording.Event = &event
		result = append(result, recording)
	}

	return result, rows.Err()
}

// GetByID retrieves a recording by ID
func (r *RecordingRepository) GetByID(ctx context.Context, id int64) (*models.Recording, error) {
	var recording models.Recording
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, recording_url, event_id
		FROM recordings
		WHERE id = $1`, id).Scan(
		&recording.ID, &recording.Name, &recording.Description,
		&recording.RecordingURL, &recording.EventID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordingNotFound
		}
		return nil, fmt.Errorf("error finding recording: %w", err)
	}

	return &recording, nil
}

// Create inserts a new recording
func (r *RecordingRepository) Create(ctx context.Context, recording *models.Recording) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO recordings (name, description, recording_url, event_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		recording.Name, recording.Description, recording.RecordingURL, recording.EventID).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating recording: %w", err)
	}

	return id, nil
}

// Update replaces a recording's fields
func (r *RecordingRepository) Update(ctx context.Context, recording *models.Recording) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE recordings
		SET name = $1, description = $2, recording_url = $3, event_id = $4
		WHERE id = $5`,
		recording.Name, recording.Description, recording.RecordingURL, recording.EventID, recording.ID)

	if err != nil {
		return fmt.Errorf("error updating recording: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecordingNotFound
	}

	return nil
}

// Delete removes a recording
func (r *RecordingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recordings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting recording: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecordingNotFound
	}

	return nil
}
