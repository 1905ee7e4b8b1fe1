package binning

import (
	"sync"

	"github.com/claireguyot/root/internal/collision"
)

// TableCache shares overflow lookup tables between layouts.
//
// A table only depends on the bin count and kind of each axis, so layouts
// with the same shape reuse one table. Tables are keyed by the layout
// fingerprint; a fingerprint claimed by another shape is never shared, the
// colliding layout gets a private table instead.
//
// TableCache is safe for concurrent use.
type TableCache struct {
	mu      sync.RWMutex
	tracker *collision.Tracker
	tables  map[uint64][]int
	hits    uint64
	misses  uint64
}

// NewTableCache creates an empty cache.
func NewTableCache() *TableCache {
	return &TableCache{
		tracker: collision.NewTracker(),
		tables:  make(map[uint64][]int),
	}
}

var defaultTableCache = NewTableCache()

// DefaultTableCache returns the process-wide cache used by WithOverflowTable.
func DefaultTableCache() *TableCache { return defaultTableCache }

// table returns the overflow table of l, building it on a miss.
func (c *TableCache) table(l *Layout) []int {
	fp, key := l.Fingerprint(), l.Key()

	c.mu.RLock()
	t, ok := c.tables[fp]
	if ok && c.tracker.Matches(fp, key) {
		c.mu.RUnlock()
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()

		return t
	}
	c.mu.RUnlock()

	t = buildOverflowTable(l)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.misses++
	if err := c.tracker.Track(fp, key); err != nil {
		return t
	}
	// Another goroutine may have stored the same table meanwhile.
	if existing, ok := c.tables[fp]; ok {
		return existing
	}
	c.tables[fp] = t

	return t
}

// Len returns the number of cached tables.
func (c *TableCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tables)
}

// Stats returns the number of lookups served from the cache and the number
// that had to build a table.
func (c *TableCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.hits, c.misses
}

// HasCollision reports whether two different layout shapes produced the
// same fingerprint since the last Reset.
func (c *TableCache) HasCollision() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tracker.HasCollision()
}

// Reset drops every cached table. Layouts built earlier keep their tables.
func (c *TableCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.tables)
	c.tracker.Reset()
	c.hits, c.misses = 0, 0
}

// buildOverflowTable records the row-major position of every non-regular
// combination, in the order All assigns their indices.
func buildOverflowTable(l *Layout) []int {
	table := make([]int, 0, l.nOverflow)

	pos := 0
	for global := range l.All() {
		if global < 0 {
			table = append(table, pos)
		}
		pos++
	}

	return table
}
