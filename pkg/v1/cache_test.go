package geotiff

import (
	"fmt"
	"testing"
)

func TestTileCacheGet(t *testing.T) {
	cache := newTileCache(4)

	loads := 0
	load := func() ([]byte, error) {
		loads++
		return []byte{1, 2}, nil
	}

	if _, err := cache.get(0, load); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if _, err := cache.get(0, load); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loads != 1 {
		t.Errorf("Expected 1 load for repeated get, got %d", loads)
	}

	stats := cache.stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Expected 1 hit / 1 miss, got %d / %d", stats.Hits, stats.Misses)
	}
}

func TestTileCacheEviction(t *testing.T) {
	cache := newTileCache(2)

	for i := 0; i < 3; i++ {
		index := i
		_, err := cache.get(index, func() ([]byte, error) {
			return []byte{byte(index)}, nil
		})
		if err != nil {
			t.Fatalf("get(%d) failed: %v", index, err)
		}
	}

	stats := cache.stats()
	if stats.Entries != 2 {
		t.Errorf("Expected 2 entries after eviction, got %d", stats.Entries)
	}

	// Tile 0 was least recently used and must reload.
	loads := 0
	_, err := cache.get(0, func() ([]byte, error) {
		loads++
		return []byte{0}, nil
	})
	if err != nil {
		t.Fatalf("get(0) failed: %v", err)
	}
	if loads != 1 {
		t.Errorf("Expected evicted tile to reload, loads=%d", loads)
	}

	// Tile 2 is still resident.
	loads = 0
	_, err = cache.get(2, func() ([]byte, error) {
		loads++
		return []byte{2}, nil
	})
	if err != nil {
		t.Fatalf("get(2) failed: %v", err)
	}
	if loads != 0 {
		t.Errorf("Expected resident tile to hit, loads=%d", loads)
	}
}

func TestTileCacheLRUOrder(t *testing.T) {
	cache := newTileCache(2)

	noop := func(index int) func() ([]byte, error) {
		return func() ([]byte, error) { return []byte{byte(index)}, nil }
	}

	cache.get(0, noop(0))
	cache.get(1, noop(1))
	cache.get(0, noop(0)) // touch 0 so 1 becomes LRU
	cache.get(2, noop(2)) // evicts 1

	loads := 0
	cache.get(0, func() ([]byte, error) { loads++; return []byte{0}, nil })
	if loads != 0 {
		t.Errorf("Tile 0 should have survived, loads=%d", loads)
	}
	cache.get(1, func() ([]byte, error) { loads++; return []byte{1}, nil })
	if loads != 1 {
		t.Errorf("Tile 1 should have been evicted, loads=%d", loads)
	}
}

func TestTileCacheLoadError(t *testing.T) {
	cache := newTileCache(2)

	want := fmt.Errorf("broken tile")
	_, err := cache.get(5, func() ([]byte, error) { return nil, want })
	if err == nil {
		t.Fatal("Expected load error to propagate")
	}

	// A failed load caches nothing.
	if stats := cache.stats(); stats.Entries != 0 {
		t.Errorf("Expected no entries after failed load, got %d", stats.Entries)
	}
}
