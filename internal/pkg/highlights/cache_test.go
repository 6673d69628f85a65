package highlights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPrepends(t *testing.T) {
	cache := NewCache()

	first, snapshot := cache.Add("Spring Concert", "", "https://youtu.be/first")
	require.Len(t, snapshot, 1)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.AddedAt.IsZero())

	second, snapshot := cache.Add("Winter Recital", "solo set", "https://youtu.be/second")
	require.Len(t, snapshot, 2)
	assert.Equal(t, second.ID, snapshot[0].ID)
	assert.Equal(t, first.ID, snapshot[1].ID)
}

func TestAddThenRemoveRoundTrips(t *testing.T) {
	cache := NewCache()
	_, before := cache.Add("Kept", "", "https://youtu.be/kept")

	added, _ := cache.Add("Temporary", "", "https://youtu.be/tmp")
	after := cache.Remove(added.ID)

	assert.Equal(t, before, after)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	cache := NewCache()
	_, before := cache.Add("Only", "", "https://youtu.be/only")

	after := cache.Remove("no-such-id")
	assert.Equal(t, before, after)
}

func TestUpdateMergesInPlace(t *testing.T) {
	cache := NewCache()
	older, _ := cache.Add("Older", "keep me", "https://youtu.be/older")
	newer, _ := cache.Add("Newer", "", "https://youtu.be/newer")

	title := "Older (remastered)"
	snapshot := cache.Update(older.ID, Patch{Title: &title})

	require.Len(t, snapshot, 2)
	// position unchanged, untouched fields kept
	assert.Equal(t, newer.ID, snapshot[0].ID)
	assert.Equal(t, older.ID, snapshot[1].ID)
	assert.Equal(t, "Older (remastered)", snapshot[1].Title)
	assert.Equal(t, "keep me", snapshot[1].Description)
	assert.Equal(t, "https://youtu.be/older", snapshot[1].MediaURL)
}

func TestUpdateAbsentIsNoop(t *testing.T) {
	cache := NewCache()
	_, before := cache.Add("Only", "", "https://youtu.be/only")

	title := "changed"
	after := cache.Update("no-such-id", Patch{Title: &title})
	assert.Equal(t, before, after)
}

func TestSnapshotIsImmutable(t *testing.T) {
	cache := NewCache()
	cache.Add("One", "", "https://youtu.be/one")

	snapshot := cache.Snapshot()
	snapshot[0].Title = "mutated"

	assert.Equal(t, "One", cache.Snapshot()[0].Title)
}
