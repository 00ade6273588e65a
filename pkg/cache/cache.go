package cache

import (
	"sync"
	"time"
)

// Cache is a concurrency safe map whose entries can expire.
// Expired entries are dropped lazily when they are read.
type Cache[K comparable, V any] struct {
	entries map[K]entry[V]
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
}

type entry[V any] struct {
	value   V
	expires time.Time
}

type config struct {
	ttl time.Duration
	now func() time.Time
}

// Option configures a Cache
type Option func(*config)

// WithTTL makes entries expire ttl after they are set. A non-positive ttl never expires.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     cfg.ttl,
		now:     cfg.now,
	}
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry[V]{value: value}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	c.entries[key] = e
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if c.expired(e) {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && c.expired(current) {
			delete(c.entries, key)
		}
		c.mu.Unlock()

		var zero V
		return zero, false
	}

	return e.value, true
}

// Size is the number of live entries
func (c *Cache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, e := range c.entries {
		if !c.expired(e) {
			n++
		}
	}
	return n
}

// Keys returns the keys of live entries in no particular order
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]K, 0, len(c.entries))
	for k, e := range c.entries {
		if !c.expired(e) {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Cache[K, V]) expired(e entry[V]) bool {
	return !e.expires.IsZero() && !c.now().Before(e.expires)
}
