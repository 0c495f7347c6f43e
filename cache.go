package main

import (
	"sync"
	"time"
)

// QueryCache is a TTL map for response payloads. The dataset never
// changes at runtime, so cached derivations only expire, they are
// never invalidated by writes.
type QueryCache struct {
	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

func NewQueryCache() *QueryCache {
	return &QueryCache{cache: make(map[string]cacheEntry)}
}

// Get returns a live entry. Expired entries are dropped on read.
func (c *QueryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.Delete(key)
		return nil, false
	}
	return entry.value, true
}

// Set stores a value for the given TTL.
func (c *QueryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.cache[key] = cacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Delete removes a single entry.
func (c *QueryCache) Delete(key string) {
	c.mu.Lock()
	delete(c.cache, key)
	c.mu.Unlock()
}

// Clear empties the cache.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Size returns the number of entries, expired or not.
func (c *QueryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// RateLimiter is a per-client token bucket. Each client starts with a
// full burst and refills at ratePerMin tokens per minute.
type RateLimiter struct {
	mu         sync.Mutex
	ratePerMin int
	burst      int
	buckets    map[string]*tokenBucket
}

type tokenBucket struct {
	tokens     float64
	lastRefill time.Time
}

func NewRateLimiter(ratePerMin, burst int) *RateLimiter {
	return &RateLimiter{
		ratePerMin: ratePerMin,
		burst:      burst,
		buckets:    make(map[string]*tokenBucket),
	}
}

// Allow reports whether the client may make a request now, consuming a
// token when it can.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	bucket, ok := rl.buckets[client]
	if !ok {
		bucket = &tokenBucket{tokens: float64(rl.burst), lastRefill: now}
		rl.buckets[client] = bucket
	}

	elapsed := now.Sub(bucket.lastRefill).Minutes()
	bucket.tokens += elapsed * float64(rl.ratePerMin)
	if bucket.tokens > float64(rl.burst) {
		bucket.tokens = float64(rl.burst)
	}
	bucket.lastRefill = now

	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}
