package render

import "sync"

// EvictionPolicy picks the victim index in the insertion-ordered key list
// when the cache is full.
type EvictionPolicy func(order []string) int

// EvictOldest evicts the oldest-inserted entry. Insertion order only:
// reads do not refresh an entry's position.
func EvictOldest(order []string) int {
	return 0
}

// Cache is a bounded render cache keyed by content hash. It is safe for
// concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]string
	order    []string
	evict    EvictionPolicy
}

// NewCache creates a cache holding at most capacity entries, evicting per
// the given policy. A nil policy or non-positive capacity falls back to
// oldest-inserted eviction over 100 entries.
func NewCache(capacity int, evict EvictionPolicy) *Cache {
	if capacity <= 0 {
		capacity = 100
	}
	if evict == nil {
		evict = EvictOldest
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]string, capacity),
		order:    make([]string, 0, capacity),
		evict:    evict,
	}
}

// Get returns the cached value for key
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

// Set stores a value, evicting one entry when full. Overwriting an
// existing key does not change its insertion position.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}

	if len(c.order) >= c.capacity {
		victim := c.evict(c.order)
		if victim < 0 || victim >= len(c.order) {
			victim = 0
		}
		delete(c.entries, c.order[victim])
		c.order = append(c.order[:victim], c.order[victim+1:]...)
	}

	c.entries[key] = value
	c.order = append(c.order, key)
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
