package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/pkg/apperrors"
)

// HighlightRepository handles highlight database operations
type HighlightRepository struct {
	db *pgxpool.Pool
}

// NewHighlightRepository creates a new HighlightRepository
func NewHighlightRepository(db *pgxpool.Pool) *HighlightRepository {
	return &HighlightRepository{db: db}
}

// List retrieves all highlights, newest first
func (r *HighlightRepository) List(ctx context.Context) ([]models.Highlight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, media_url, added_at
		FROM highlights
		ORDER BY added_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing highlights: %w", err)
	}
	defer rows.Close()

	var result []models.Highlight
	for rows.Next() {
		var highlight models.Highlight
		err := rows.Scan(&highlight.ID, &highlight.Title, &highlight.Description,
			&highlight.MediaURL, &highlight.AddedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning highlight row: %w", err)
		}
		result = append(result, highlight)
	}

	return result, rows.Err()
}

// Create inserts a new highlight
func (r *HighlightRepository) Create(ctx context.Context, highlight *models.Highlight) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO highlights (id, title, description, media_url, added_at)
		VALUES ($1, $2, $3, $4, $5)`,
		highlight.ID, highlight.Title, highlight.Description, highlight.MediaURL, highlight.AddedAt)

	if err != nil {
		return fmt.Errorf("error creating highlight: %w", err)
	}

	return nil
}

// Update replaces a highlight's fields
func (r *HighlightRepository) Update(ctx context.Context, highlight *models.Highlight) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE highlights
		SET title = $1, description = $2, media_url = $3
		WHERE id = $4`,
		highlight.Title, highlight.Description, highlight.MediaURL, highlight.ID)

	if err != nil {
		return fmt.Errorf("error updating highlight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHighlightNotFound
	}

	return nil
}

// Delete removes a highlight
func (r *HighlightRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM highlights WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting highlight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHighlightNotFound
	}

	return nil
}
