package leaderboard

import (
	"sync"
	"time"
)

// DefaultTTL bounds how stale a cached leaderboard may be served.
const DefaultTTL = 60 * time.Second

type cacheKey struct {
	period Period
	limit  int
}

type cacheEntry struct {
	entries   []Entry
	expiresAt time.Time
}

// boardCache is an explicit TTL cache keyed by (period, limit). The clock
// is injected so expiry is deterministic under test. Keys include the
// period, so a hit can never serve a window mismatched to the request.
type boardCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[cacheKey]cacheEntry
}

func newBoardCache(ttl time.Duration, now func() time.Time) *boardCache {
	return &boardCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[cacheKey]cacheEntry),
	}
}

func (c *boardCache) get(period Period, limit int) ([]Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[cacheKey{period, limit}]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.entries, true
}

func (c *boardCache) put(period Period, limit int, entries []Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{period, limit}] = cacheEntry{
		entries:   entries,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *boardCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}
