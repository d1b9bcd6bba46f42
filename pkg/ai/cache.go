package ai

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Cache keeps successful LLM answers in memory for a fixed TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	value  any
	stored time.Time
}

// NewCache creates a cache; a non-positive ttl disables it.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{entries: make(map[string]cacheEntry), ttl: ttl, now: time.Now}
}

func (c *Cache) get(key string) (any, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.stored) > c.ttl {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) set(key string, v any) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: v, stored: c.now()}
}

// CleanExpired drops stale entries; scheduled next to the health probe.
func (c *Cache) CleanExpired() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.stored) > c.ttl {
			delete(c.entries, k)
		}
	}
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func cacheKey(op string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%x", op, md5.Sum(data))
}
