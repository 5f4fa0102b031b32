package hawk

import "sync"

// filterCache is a simple bounded cache that maps query text to its
// compiled Filter. Parsed trees are immutable and shared read-only, so
// handing the same *Filter to every caller is safe.
//
// Eviction strategy: when the cache reaches its capacity limit the
// entire map is replaced. This is simpler than a true LRU and
// sufficient for the target use-case (a small number of distinct
// queries repeated over many rows).
//
// Thread safety: all methods are safe for concurrent use.
type filterCache struct {
	mu    sync.RWMutex
	items map[string]*Filter
	max   int
}

var globalFilterCache = &filterCache{
	items: make(map[string]*Filter, 64),
	max:   64,
}

func (c *filterCache) get(queryText string) (*Filter, bool) {
	c.mu.RLock()
	f, ok := c.items[queryText]
	c.mu.RUnlock()
	return f, ok
}

func (c *filterCache) put(queryText string, f *Filter) {
	c.mu.Lock()
	if len(c.items) >= c.max {
		// Evict everything and start fresh rather than tracking
		// individual entry ages.
		c.items = make(map[string]*Filter, c.max)
	}
	c.items[queryText] = f
	c.mu.Unlock()
}
