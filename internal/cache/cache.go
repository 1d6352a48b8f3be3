// Package cache is a small in-memory query cache. Entries are keyed by an
// operation name plus its encoded parameters and dropped either by TTL or by
// explicit invalidation after a mutation.
package cache

import (
	"net/url"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Cache struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]entry
	now func() time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl: ttl,
		m:   make(map[string]entry),
		now: time.Now,
	}
}

// Key builds a cache key from an operation name and its parameters.
// Encoding sorts parameters, so equivalent queries share a key.
func Key(op string, params url.Values) string {
	if len(params) == 0 {
		return op
	}
	return op + "?" + params.Encode()
}

// Get returns the cached value for key, or false when absent or expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.m, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate drops every entry whose key starts with prefix. Callers use the
// operation name as the prefix after create/delete.
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.m {
		if strings.HasPrefix(k, prefix) {
			delete(c.m, k)
		}
	}
}
