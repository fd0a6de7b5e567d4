package render

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"cv-backend/cv/model"
	"cv-backend/internal/shared/util"
)

// OutputCache is a bounded, TTL-bound cache of rendered outputs. It is an
// optimization owned by whoever constructs the renderer, never a correctness
// requirement: evicting or losing entries only costs a re-render. Insertion
// order drives eviction (oldest first) once the size cap is reached.
type OutputCache struct {
	mu      sync.Mutex
	max     int
	ttl     time.Duration
	entries map[string]cacheEntry
	order   []string
	now     func() time.Time
}

type cacheEntry struct {
	data       []byte
	insertedAt time.Time
}

// NewOutputCache builds a cache holding at most max entries for at most ttl.
func NewOutputCache(max int, ttl time.Duration) *OutputCache {
	if max <= 0 {
		max = 50
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &OutputCache{
		max:     max,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached output for key if present and not expired.
func (c *OutputCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.insertedAt) > c.ttl {
		delete(c.entries, key)
		c.dropFromOrder(key)
		return nil, false
	}
	return e.data, true
}

// Put stores output under key, evicting the oldest-inserted entries while
// over capacity. Overwriting an existing key counts as a fresh insertion for
// eviction ordering.
func (c *OutputCache) Put(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		c.dropFromOrder(key)
	}
	c.order = append(c.order, key)
	c.entries[key] = cacheEntry{data: data, insertedAt: c.now()}
	for len(c.entries) > c.max && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// dropFromOrder removes key from the insertion-order queue so order and
// entries never disagree. Caller holds the lock.
func (c *OutputCache) dropFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Len reports the number of live entries, expired ones included until read.
func (c *OutputCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fingerprint derives the cache key for one render: profile identity fields,
// template name, output format and per-section item counts. Anything else
// changing without one of these changing is close enough to serve cached.
func Fingerprint(p model.Profile, templateName string, format Format) string {
	counts := p.SectionCounts()
	countStrs := make([]string, len(counts))
	for i, n := range counts {
		countStrs[i] = fmt.Sprintf("%d", n)
	}
	return util.Hash(
		p.PersonalInfo.FirstName,
		p.PersonalInfo.LastName,
		p.PersonalInfo.Email,
		templateName,
		string(format),
		strings.Join(countStrs, ","),
	)
}
