package models

import "time"

// Highlight defines a featured media entry. Persisted rows live in the
// 'highlights' table; the display cache holds the same shape in memory.
type Highlight struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	MediaURL    string    `json:"youtubeUrl" db:"media_url"`
	AddedAt     time.Time `json:"addedAt" db:"added_at"`
}
