package cache

// Stats tracks cache effectiveness. Fields are mutated under the cache
// lock; Stats() hands out a snapshot copy.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
