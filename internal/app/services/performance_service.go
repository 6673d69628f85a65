package services

import (
	"context"
	"time"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/models/dto"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/validation"
)

// upcomingLimit caps how many future events a home page load returns
const upcomingLimit = 6

// PerformanceFilter selects which slice of the event catalog a page
// load wants.
type PerformanceFilter int

const (
	// FilterAll returns every event with its recordings
	FilterAll PerformanceFilter = iota
	// FilterUpcomingOnly returns future events only, soonest first
	FilterUpcomingOnly
	// FilterWithRecordingsOnly returns only events that at least one
	// recording references
	FilterWithRecordingsOnly
)

// EventStore is the subset of the event repository the aggregator needs
type EventStore interface {
	ListWithLocations(ctx context.Context) ([]models.Event, error)
	ListUpcoming(ctx context.Context, from string, limit int) ([]models.Event, error)
}

// RecordingStore is the subset of the recording repository the
// aggregator needs
type RecordingStore interface {
	ListWithEvents(ctx context.Context) ([]models.Recording, error)
}

// HighlightStore is the subset of the highlight repository the
// aggregator needs
type HighlightStore interface {
	List(ctx context.Context) ([]models.Highlight, error)
}

// PerformanceService aggregates events, recordings, and highlights into
// page-shaped responses. Any failed sub-fetch fails the whole load and
// names the fetch that failed.
type PerformanceService struct {
	events     EventStore
	recordings RecordingStore
	highlights HighlightStore
	now        func() time.Time
}

// NewPerformanceService creates a new PerformanceService
func NewPerformanceService(events EventStore, recordings RecordingStore, highlights HighlightStore) *PerformanceService {
	return &PerformanceService{
		events:     events,
		recordings: recordings,
		highlights: highlights,
		now:        time.Now,
	}
}

// LoadPerformances assembles one page of content. FilterUpcomingOnly
// skips the recording fetch entirely; the other filters join events
// with their recordings, and FilterWithRecordingsOnly then drops events
// no recording references, preserving the events' order.
func (s *PerformanceService) LoadPerformances(ctx context.Context, filter PerformanceFilter, withHighlights bool) (*dto.ContentPage, error) {
	page := &dto.ContentPage{}

	if filter == FilterUpcomingOnly {
		from := s.now().Format(validation.DateOnlyLayout)
		events, err := s.events.ListUpcoming(ctx, from, upcomingLimit)
		if err != nil {
			return nil, apperrors.NewStorageError("load upcoming events", err)
		}
		page.Events = events
	} else {
		events, err := s.events.ListWithLocations(ctx)
		if err != nil {
			return nil, apperrors.NewStorageError("load events", err)
		}

		recordings, err := s.recordings.ListWithEvents(ctx)
		if err != nil {
			return nil, apperrors.NewStorageError("load recordings", err)
		}

		if filter == FilterWithRecordingsOnly {
			events = filterRecorded(events, recordings)
		}

		page.Events = events
		page.Recordings = recordings
		page.Performances = groupPerformances(events, recordings)
	}

	if withHighlights {
		highlights, err := s.highlights.List(ctx)
		if err != nil {
			return nil, apperrors.NewStorageError("load highlights", err)
		}
		page.Highlights = highlights
	}

	return page, nil
}

// filterRecorded keeps only events that at least one recording
// references, in their incoming order.
func filterRecorded(events []models.Event, recordings []models.Recording) []models.Event {
	recorded := make(map[int64]struct{}, len(recordings))
	for _, r := range recordings {
		recorded[r.EventID] = struct{}{}
	}

	result := make([]models.Event, 0, len(events))
	for _, e := range events {
		if _, ok := recorded[e.ID]; ok {
			result = append(result, e)
		}
	}
	return result
}

// groupPerformances nests each event's recordings under it, keeping the
// events' order. Recordings keep their own order within an event.
func groupPerformances(events []models.Event, recordings []models.Recording) []models.PerformanceView {
	byEvent := make(map[int64][]models.Recording, len(events))
	for _, r := range recordings {
		// The nested event copy is redundant inside a grouped view
		r.Event = nil
		byEvent[r.EventID] = append(byEvent[r.EventID], r)
	}

	views := make([]models.PerformanceView, 0, len(events))
	for _, e := range events {
		views = append(views, models.PerformanceView{
			Event:      e,
			Recordings: byEvent[e.ID],
		})
	}
	return views
}
