package geotiff

import (
	"github.com/beetlebugorg/geotiff/internal/raster"
)

// NoData is the sentinel sample value meaning "no measurement". Point
// extraction drops pixels carrying this value; all other values pass
// through verbatim.
const NoData int16 = 32767

// Raster is an open tiled raster file.
//
// The tag directory is parsed once at open time; all metadata accessors
// return immutable values. Pixel data is read on demand through an
// offset-addressed handle, so Sample is safe for concurrent use.
//
// Create with OpenRaster or OpenRasterWithOptions and release with Close.
type Raster struct {
	file  *raster.File
	cache *tileCache
}

// OpenRaster opens a raster file with default options.
func OpenRaster(path string) (*Raster, error) {
	return OpenRasterWithOptions(path, DefaultOpenOptions())
}

// OpenRasterWithOptions opens a raster file with custom validation and
// caching options.
//
// Example:
//
//	raster, err := geotiff.OpenRasterWithOptions("terrain.tif", geotiff.OpenOptions{
//	    StrictTileCount:    true,
//	    RequireSampleDepth: true,
//	    TileCacheSize:      64, // keep 64 decoded tiles in memory
//	})
func OpenRasterWithOptions(path string, opts OpenOptions) (*Raster, error) {
	file, err := raster.OpenWithOptions(path, raster.ParseOptions{
		StrictTileCount:    opts.StrictTileCount,
		RequireSampleDepth: opts.RequireSampleDepth,
	})
	if err != nil {
		return nil, err
	}

	r := &Raster{file: file}
	if opts.TileCacheSize > 0 {
		r.cache = newTileCache(opts.TileCacheSize)
	}
	return r, nil
}

// Sample returns the 16-bit signed sample at pixel (x, y).
//
// Coordinates outside the raster extent fail with an out-of-range error
// rather than reading garbage. With caching enabled the pixel's whole
// tile is fetched and retained; the returned value is identical either
// way.
func (r *Raster) Sample(x, y int) (int16, error) {
	if r.cache == nil {
		return r.file.SamplePixel(x, y)
	}

	index, xt, yt, err := r.file.TileIndex(x, y)
	if err != nil {
		return 0, err
	}
	tile, err := r.cache.get(index, func() ([]byte, error) {
		return r.file.ReadTile(index)
	})
	if err != nil {
		return 0, err
	}
	return raster.SampleFromTile(tile, r.file.TileWidth(), xt, yt), nil
}

// Close releases the underlying file handle.
func (r *Raster) Close() error {
	return r.file.Close()
}

// CacheStats returns tile-cache metrics. Zero-valued when caching is
// disabled.
func (r *Raster) CacheStats() CacheStats {
	if r.cache == nil {
		return CacheStats{}
	}
	return r.cache.stats()
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.file.Width() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.file.Height() }

// TileWidth returns the width of one tile in pixels.
func (r *Raster) TileWidth() int { return r.file.TileWidth() }

// TileLength returns the height of one tile in pixels.
func (r *Raster) TileLength() int { return r.file.TileLength() }

// TilesAcross returns the number of tile columns.
func (r *Raster) TilesAcross() int { return r.file.TilesAcross() }

// TilesDown returns the number of tile rows.
func (r *Raster) TilesDown() int { return r.file.TilesDown() }

// BitsPerSample returns the sample depth declared by the tag directory.
func (r *Raster) BitsPerSample() int { return r.file.BitsPerSample() }

// Identifier returns the raw 2-byte format identifier for diagnostics.
func (r *Raster) Identifier() uint16 { return r.file.Identifier() }

// Version returns the raw 2-byte format version for diagnostics.
func (r *Raster) Version() uint16 { return r.file.Version() }
