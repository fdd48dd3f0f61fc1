package geotiff

// OpenOptions configures raster opening and validation.
type OpenOptions struct {
	// StrictTileCount requires the tile-offset table length to match the
	// tile grid at open time. When false, an inconsistent table only
	// surfaces later as an out-of-range error during sampling.
	// Default: true
	StrictTileCount bool

	// RequireSampleDepth requires BitsPerSample to be exactly 16.
	// Default: true
	RequireSampleDepth bool

	// TileCacheSize is the number of decoded tiles to keep in an LRU
	// cache. 0 disables caching; every sample then performs one small
	// read at the pixel's file offset. Cached and uncached sampling
	// return identical values for well-formed files.
	// Default: 0 (disabled)
	TileCacheSize int
}

// DefaultOpenOptions returns open options with defaults.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{
		StrictTileCount:    true,
		RequireSampleDepth: true,
		TileCacheSize:      0,
	}
}
