// Package cache provides a bounded, thread-safe LRU cache for derived
// view data (sampled timelines, chart series) keyed by render fingerprint.
package cache

import (
	"container/list"
	"fmt"
	"sync"
)

// entry is the unit stored in the recency list. The map points at the
// list element so lookup and reorder are both O(1).
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-capacity key-value store with LRU eviction.
// All operations take one exclusive lock per call; instances are
// independent and never serialize on each other.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	data     map[K]*list.Element
	lru      *list.List
	capacity int
	stats    Stats
	onEvict  func(key K, value V)
}

// New creates a cache holding at most capacity entries. Capacity must be
// positive; this is the only rejected input in the package.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cache capacity must be positive, got %d", capacity)
	}

	c := &Cache[K, V]{
		data:     make(map[K]*list.Element, capacity),
		lru:      list.New(),
		capacity: capacity,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get returns the value for key and marks it most recently used.
// A lookup updates recency even though it is a read.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, found := c.data[key]
	if !found {
		c.stats.Misses++
		var zero V
		return zero, false
	}

	c.lru.MoveToFront(elem)
	c.stats.Hits++
	return elem.Value.(*entry[K, V]).value, true
}

// Put inserts or overwrites key. An overwrite never evicts; a new key
// that pushes the count above capacity evicts exactly one LRU entry
// before Put returns.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, found := c.data[key]; found {
		elem.Value.(*entry[K, V]).value = value
		c.lru.MoveToFront(elem)
		return
	}

	if c.lru.Len() >= c.capacity {
		c.evictOldest()
	}

	elem := c.lru.PushFront(&entry[K, V]{key: key, value: value})
	c.data[key] = elem
}

// Remove deletes key if present; missing keys are ignored.
func (c *Cache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, found := c.data[key]; found {
		c.removeElement(elem)
	}
}

// Clear drops every entry. Capacity and accumulated stats are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[K]*list.Element, c.capacity)
	c.lru.Init()
}

// RemoveWhere deletes every entry the predicate matches, visiting
// entries from most to least recently used. The next element is
// captured before each unlink so removal mid-scan is safe.
//
// The predicate must not call back into the same cache instance.
func (c *Cache[K, V]) RemoveWhere(pred func(key K, value V) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for elem := c.lru.Front(); elem != nil; {
		next := elem.Next()
		e := elem.Value.(*entry[K, V])
		if pred(e.key, e.value) {
			c.removeElement(elem)
		}
		elem = next
	}
}

// Len reports the current number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Cache[K, V]) evictOldest() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}

	e := elem.Value.(*entry[K, V])
	c.removeElement(elem)
	c.stats.Evictions++
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}

func (c *Cache[K, V]) removeElement(elem *list.Element) {
	c.lru.Remove(elem)
	delete(c.data, elem.Value.(*entry[K, V]).key)
}
