package highlights

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bayms/backend/internal/app/models"
)

// Cache is an in-memory ordered collection of highlights for display
// contexts, newest first. It is a convenience layer only, not the system
// of record, and does not reconcile with persisted highlight rows.
//
// Every operation returns a fresh snapshot; callers never observe
// in-place mutation of a previously returned slice.
type Cache struct {
	mu      sync.Mutex
	entries []models.Highlight
	now     func() time.Time
	newID   func() string
}

// NewCache creates an empty highlight cache
func NewCache() *Cache {
	return &Cache{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Patch describes a partial update to a cached highlight. Nil fields are
// left unchanged.
type Patch struct {
	Title       *string
	Description *string
	MediaURL    *string
}

// Add inserts a new highlight at the front of the collection, assigning
// it a fresh identity and creation timestamp, and returns the entry
// together with the resulting snapshot.
func (c *Cache) Add(title, description, mediaURL string) (models.Highlight, []models.Highlight) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := models.Highlight{
		ID:          c.newID(),
		Title:       title,
		Description: description,
		MediaURL:    mediaURL,
		AddedAt:     c.now(),
	}

	next := make([]models.Highlight, 0, len(c.entries)+1)
	next = append(next, entry)
	next = append(next, c.entries...)
	c.entries = next

	return entry, c.snapshotLocked()
}

// Remove deletes the highlight with the given id. Removing an absent id
// is a no-op, not an error.
func (c *Cache) Remove(id string) []models.Highlight {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]models.Highlight, 0, len(c.entries))
	for _, e := range c.entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	c.entries = next

	return c.snapshotLocked()
}

// Update merges the patch into the highlight with the given id, leaving
// its position unchanged. An absent id is a no-op.
func (c *Cache) Update(id string, patch Patch) []models.Highlight {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]models.Highlight, len(c.entries))
	copy(next, c.entries)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if patch.Title != nil {
			next[i].Title = *patch.Title
		}
		if patch.Description != nil {
			next[i].Description = *patch.Description
		}
		if patch.MediaURL != nil {
			next[i].MediaURL = *patch.MediaURL
		}
		break
	}
	c.entries = next

	return c.snapshotLocked()
}

// Replace swaps the whole collection, typically to warm the cache from
// the system of record. The entries are copied in.
func (c *Cache) Replace(entries []models.Highlight) []models.Highlight {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]models.Highlight, len(entries))
	copy(next, entries)
	c.entries = next

	return c.snapshotLocked()
}

// Snapshot returns the current collection, newest first
func (c *Cache) Snapshot() []models.Highlight {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Len returns the number of cached highlights
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) snapshotLocked() []models.Highlight {
	snapshot := make([]models.Highlight, len(c.entries))
	copy(snapshot, c.entries)
	return snapshot
}
