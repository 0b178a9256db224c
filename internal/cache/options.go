package cache

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithEvictionCallback registers fn to run whenever a capacity eviction
// removes an entry. It is called synchronously under the cache lock, so
// fn must be fast and must not touch the same cache instance.
func WithEvictionCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}
