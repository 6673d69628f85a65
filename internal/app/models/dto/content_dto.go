package dto

import "github.com/bayms/backend/internal/app/models"

// ContentPage bundles everything a public page render needs in one
// response. Highlights are present only when the caller asked for them.
type ContentPage struct {
	Events       []models.Event           `json:"events"`
	Recordings   []models.Recording       `json:"recordings,omitempty"`
	Performances []models.PerformanceView `json:"performances,omitempty"`
	Highlights   []models.Highlight       `json:"highlights,omitempty"`
}

// EventRequest represents event create/update data for the dashboard
type EventRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Date        string  `json:"date" validate:"required,dateonly"`
	Time        *string `json:"time" validate:"omitempty,max=20"`
	LocationID  int64   `json:"location_id" validate:"required,min=1"`
}

// LocationRequest represents location create/update data
type LocationRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// RecordingRequest represents recording create/update data
type RecordingRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	RecordingURL string  `json:"recording_url" validate:"required,url"`
	EventID      int64   `json:"event_id" validate:"required,min=1"`
}

// HighlightRequest represents highlight create data
type HighlightRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	MediaURL    string `json:"youtubeUrl" validate:"required,url"`
}

// HighlightPatchRequest represents a partial highlight update; nil
// fields are left unchanged
type HighlightPatchRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	MediaURL    *string `json:"youtubeUrl" validate:"omitempty,url"`
}
