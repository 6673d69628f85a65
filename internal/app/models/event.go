package models

// Event defines the event model based on the 'events' table
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Date        string    `json:"date" db:"date"` // Calendar date, YYYY-MM-DD
	Time        *string   `json:"time,omitempty" db:"time"`
	LocationID  *int64    `json:"locationId,omitempty" db:"location_id"`
	Location    *Location `json:"locations,omitempty"` // Relation, no db tag; nil when the reference does not resolve
}

// Location defines the location model based on the 'locations' table
type Location struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

// Recording defines the recording model based on the 'recordings' table.
// Every recording references exactly one event.
type Recording struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description,omitempty" db:"description"`
	RecordingURL string  `json:"recording_url" db:"recording_url"`
	EventID      int64   `json:"eventId" db:"event_id"`
	Event        *Event  `json:"events,omitempty"` // Relation, no db tag
}

// PerformanceView is one event with its location and the recordings that
// reference it, as consumed by the performances page.
type PerformanceView struct {
	Event      Event       `json:"event"`
	Recordings []Recording `json:"recordings"`
}
