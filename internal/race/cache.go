package race

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/oakfield/trackside/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// cachedResultEntry wraps a race result summary with version metadata
type cachedResultEntry struct {
	Version  string                    `json:"version"`
	Summary  *domain.RaceResultSummary `json:"summary"`
	CachedAt time.Time                 `json:"cached_at"`
}

// resultCache provides an in-memory LRU cache for settled race results.
// Results never change once written, so entries are only evicted by
// capacity, TTL or a schema version bump.
type resultCache struct {
	lru *expirable.LRU[int64, *cachedResultEntry]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	return &resultCache{
		lru: expirable.NewLRU[int64, *cachedResultEntry](size, nil, ttl),
	}
}

func (c *resultCache) Get(raceID int64) (*domain.RaceResultSummary, bool) {
	entry, found := c.lru.Get(raceID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(raceID)
		return nil, false
	}

	return entry.Summary, true
}

func (c *resultCache) Set(raceID int64, summary *domain.RaceResultSummary) {
	c.lru.Add(raceID, &cachedResultEntry{
		Version:  CacheSchemaVersion,
		Summary:  summary,
		CachedAt: time.Now(),
	})
}

func (c *resultCache) Clear() {
	c.lru.Purge()
}
