package template

import "sync"

// Cache holds parsed template trees keyed by template name. Templates are
// read-only resources, so entries never expire; the store owning the source
// text decides when a name means something new (by process restart).
type Cache struct {
	mu     sync.RWMutex
	byName map[string]*Template
}

// NewCache returns an empty parsed-template cache.
func NewCache() *Cache {
	return &Cache{byName: make(map[string]*Template)}
}

// Get returns the cached tree for name, if present.
func (c *Cache) Get(name string) (*Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.byName[name]
	return t, ok
}

// Put stores a parsed tree under its name.
func (c *Cache) Put(t *Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName[t.Name] = t
}
