package geotiff

import (
	"container/list"
	"sync"
)

// tileCache keeps decoded tiles in memory with LRU eviction.
//
// Sampling through the cache trades one large read per tile for one small
// read per pixel, which pays off for any scan that touches a tile more
// than a handful of times. Capacity is counted in tiles, not bytes; every
// tile in one raster has the same size.
type tileCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[int]*list.Element
	lru      *list.List // most recent at front
	hits     int
	misses   int
}

// tileEntry tracks one cached tile.
type tileEntry struct {
	index int
	data  []byte
}

func newTileCache(capacity int) *tileCache {
	return &tileCache{
		capacity: capacity,
		entries:  make(map[int]*list.Element),
		lru:      list.New(),
	}
}

// get returns the cached tile for index or loads it with the provided
// loader function.
//
// Concurrent callers may race to load the same missing tile; both loads
// succeed and the later insert wins. Tile reads are deterministic, so the
// duplicates are identical and the race is harmless.
func (c *tileCache) get(index int, load func() ([]byte, error)) ([]byte, error) {
	c.mu.Lock()
	if elem, ok := c.entries[index]; ok {
		c.lru.MoveToFront(elem)
		c.hits++
		data := elem.Value.(*tileEntry).data
		c.mu.Unlock()
		return data, nil
	}
	c.misses++
	c.mu.Unlock()

	data, err := load()
	if err != nil {
		return nil, err
	}
	c.add(index, data)
	return data, nil
}

// add inserts a tile, evicting from the LRU tail until it fits.
func (c *tileCache) add(index int, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[index]; ok {
		elem.Value.(*tileEntry).data = data
		c.lru.MoveToFront(elem)
		return
	}

	for c.lru.Len() >= c.capacity {
		back := c.lru.Back()
		if back == nil {
			break
		}
		c.lru.Remove(back)
		delete(c.entries, back.Value.(*tileEntry).index)
	}

	c.entries[index] = c.lru.PushFront(&tileEntry{index: index, data: data})
}

func (c *tileCache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Entries:  len(c.entries),
		Capacity: c.capacity,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// CacheStats holds tile-cache metrics.
type CacheStats struct {
	Entries  int // tiles currently cached
	Capacity int // maximum cached tiles
	Hits     int // samples served from cache
	Misses   int // samples that loaded a tile
}
