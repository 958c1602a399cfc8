package render

// Cache memoizes derived drawable resources keyed by a content-derived
// key type. The key must encode every input the resource depends on:
// cached shaped text for a score of 12 and a score of 13 are distinct
// entries, never aliases.
type Cache[K comparable, V any] struct {
	entries map[K]V
	hits    int
	misses  int
}

// NewCache creates an empty cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// GetOrCreate returns the cached value for key, invoking factory exactly
// once per distinct key to build it.
func (c *Cache[K, V]) GetOrCreate(key K, factory func() V) V {
	if v, ok := c.entries[key]; ok {
		c.hits++
		return v
	}
	c.misses++
	v := factory()
	c.entries[key] = v
	return v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// HitRate returns the fraction of lookups served from the cache,
// or 0 before any lookup.
func (c *Cache[K, V]) HitRate() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}

// Clear drops all cached entries and counters.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]V)
	c.hits = 0
	c.misses = 0
}
