// Package cache provides a bounded memoization cache for evaluation results.
//
// Evaluation is a pure function of the input string, so caching results is
// observationally transparent. Keys are xxhash digests of the raw input text;
// the full text is kept alongside to guard against hash collisions.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/nlstn/go-calc/internal/expr"
)

// Result is a cached evaluation outcome. Errors are cached too: a failing
// expression fails identically on every evaluation.
type Result struct {
	Value expr.Value
	Err   error
}

type entry struct {
	input  string
	result Result
}

// Cache is a bounded, concurrency-safe result cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint64]entry
	maxSize int

	hits   uint64
	misses uint64
}

// New creates a cache holding at most maxSize entries. Sizes below 1 fall
// back to a small default.
func New(maxSize int) *Cache {
	if maxSize < 1 {
		maxSize = 128
	}
	return &Cache{
		entries: make(map[uint64]entry, maxSize),
		maxSize: maxSize,
	}
}

// Get returns the cached result for input, if present.
func (c *Cache) Get(input string) (Result, bool) {
	key := xxhash.Sum64String(input)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || e.input != input {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return Result{}, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return e.result, true
}

// Put stores the result for input, evicting an arbitrary entry when full.
func (c *Cache) Put(input string, result Result) {
	key := xxhash.Sum64String(input)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		// Evict an arbitrary entry. Map iteration order is randomized, which
		// is good enough here; evaluation is cheap to redo on a miss.
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}

	c.entries[key] = entry{input: input, result: result}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
