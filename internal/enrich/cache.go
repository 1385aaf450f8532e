package enrich

import (
	"sync"
	"time"
)

// cacheTTL bounds how long a fetched payload is reused.
const cacheTTL = 60 * time.Second

type cacheEntry struct {
	findings []string
	at       time.Time
}

// cache is a TTL-bounded memo of enrichment findings keyed by tool+target.
type cache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]cacheEntry
}

func newCache(now func() time.Time) *cache {
	if now == nil {
		now = time.Now
	}
	return &cache{now: now, entries: make(map[string]cacheEntry)}
}

func (c *cache) get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.at) >= cacheTTL {
		delete(c.entries, key)
		return nil, false
	}
	return e.findings, true
}

func (c *cache) set(key string, findings []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{findings: findings, at: c.now()}
}
