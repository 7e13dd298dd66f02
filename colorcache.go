package termpix

import "sync"

// ColorCache memoizes the SGR parameter string for each colour, layer and
// colour mode. It is safe for concurrent use.
//
// The key packs the 24-bit colour with the layer and mode in the top
// byte, so a single map serves all four combinations.
type ColorCache struct {
	mu      sync.Mutex
	entries map[uint32]string
	hits    int
	misses  int
}

// NewColorCache creates an empty cache.
func NewColorCache() *ColorCache {
	return &ColorCache{entries: make(map[uint32]string)}
}

func cacheKey(c RGB, l layer, trueColor bool) uint32 {
	k := c.toUint32()
	if l == background {
		k |= 1 << 24
	}
	if trueColor {
		k |= 1 << 25
	}
	return k
}

// param returns the cached SGR parameter for c, computing it on a miss.
func (cc *ColorCache) param(c RGB, l layer, trueColor bool) string {
	k := cacheKey(c, l, trueColor)

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if p, ok := cc.entries[k]; ok {
		cc.hits++
		return p
	}

	p := sgrParam(c, l, trueColor)
	cc.entries[k] = p
	cc.misses++
	return p
}

// Stats returns cache hit/miss statistics.
func (cc *ColorCache) Stats() (hits, misses int, hitRate float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	total := cc.hits + cc.misses
	if total == 0 {
		return 0, 0, 0
	}
	return cc.hits, cc.misses, float64(cc.hits) / float64(total)
}

// Len returns the number of cached entries.
func (cc *ColorCache) Len() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return len(cc.entries)
}

// Reset clears all entries and statistics.
func (cc *ColorCache) Reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.entries = make(map[uint32]string)
	cc.hits = 0
	cc.misses = 0
}
