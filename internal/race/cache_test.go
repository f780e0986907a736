package race

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oakfield/trackside/internal/domain"
)

func resultSummary(raceID int64) *domain.RaceResultSummary {
	return &domain.RaceResultSummary{
		RaceID:  raceID,
		Results: []domain.RaceResult{{RaceID: raceID, HorseID: 3, Position: 1}},
	}
}

func TestResultCache(t *testing.T) {
	cache := newResultCache(2, time.Minute)

	summary := resultSummary(1)
	cache.Set(1, summary)

	got, ok := cache.Get(1)
	assert.True(t, ok)
	assert.Equal(t, summary, got)

	_, ok = cache.Get(99)
	assert.False(t, ok)
}

func TestResultCache_Eviction(t *testing.T) {
	cache := newResultCache(2, time.Minute)

	cache.Set(1, resultSummary(1))
	cache.Set(2, resultSummary(2))
	cache.Set(3, resultSummary(3))

	// Oldest entry evicted at capacity
	_, ok := cache.Get(1)
	assert.False(t, ok)

	_, ok = cache.Get(3)
	assert.True(t, ok)
}

func TestResultCache_VersionMismatchInvalidates(t *testing.T) {
	cache := newResultCache(2, time.Minute)
	cache.lru.Add(1, &cachedResultEntry{
		Version: "0.9",
		Summary: resultSummary(1),
	})

	_, ok := cache.Get(1)
	assert.False(t, ok)

	// The stale entry is removed, not just skipped
	_, found := cache.lru.Get(1)
	assert.False(t, found)
}

func TestResultCache_Clear(t *testing.T) {
	cache := newResultCache(2, time.Minute)
	cache.Set(1, resultSummary(1))
	cache.Clear()

	_, ok := cache.Get(1)
	assert.False(t, ok)
}
