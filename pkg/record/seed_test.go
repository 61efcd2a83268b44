package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trep/trep/internal/utils"
)

func TestSeed(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)}
	store := NewStore()

	Seed(store, clock)

	require.Equal(t, 5, store.Len())
	assert.False(t, store.Dirty(), "seeding is not an unsaved change")

	dates := store.Dates()
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), dates[len(dates)-1])

	earliest, _ := store.Get(dates[0])
	assert.NotEmpty(t, earliest.Note, "earliest seeded day carries the demo note")

	for _, day := range dates {
		entry, _ := store.Get(day)
		require.NotNil(t, entry.Came)
		require.NotNil(t, entry.Went)
		// came jitters around 08:30 and went around 17:00, each within an hour
		assert.InDelta(t, (8*time.Hour + 30*time.Minute).Seconds(), entry.Came.Duration().Seconds(), 3601)
		assert.InDelta(t, (17 * time.Hour).Seconds(), entry.Went.Duration().Seconds(), 3601)
	}
}
