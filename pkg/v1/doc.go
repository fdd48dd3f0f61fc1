// Package geotiff reads tiled 16-bit grayscale GeoTIFF subsets paired
// with affine world files.
//
// The package targets exactly one raster profile: uncompressed, single
// sample per pixel, 16-bit signed integers, tiled layout, little-endian.
// It parses the tag directory once at open time and then serves random
// pixel reads without ever loading the full raster into memory, which
// makes it suitable for sampling small windows out of very large terrain
// files.
//
// # Basic Usage
//
//	raster, err := geotiff.OpenRaster("terrain.tif")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer raster.Close()
//
//	z, err := raster.Sample(120, 340)
//
// # World Coordinates
//
// A world file is a six-line text sidecar holding the affine
// pixel-to-world transform:
//
//	world, err := geotiff.OpenWorldFile("terrain.tfw")
//	x, y := world.PixelToWorld(120, 340)
//
// Pixel resolutions are in arc-degrees; PixelToWorld approximates surface
// meters by taking one degree as 110 km (the latitude figure at the
// equator). WorldToPixel is intentionally not its algebraic inverse; see
// the method documentation.
//
// # Point Extraction
//
// A Dataset pairs a raster with its world file and extracts world-space
// point clouds from pixel windows, skipping the 32767 no-data sentinel:
//
//	ds, err := geotiff.OpenDatasetAuto("terrain.tif") // finds terrain.tfw
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ds.Close()
//
//	points, err := ds.ExtractPoints(geotiff.Window{EndX: 512, EndY: 512},
//	    geotiff.ExtractOptions{Parallel: true})
//
// # Spatial Queries
//
// Extracted points can be indexed in an R-tree for fast box queries:
//
//	idx := geotiff.NewPointIndex(points)
//	near := idx.Search(geotiff.Bounds{MinX: 0, MaxX: 500, MinY: -500, MaxY: 0})
//
// # Concurrency
//
// Rasters read through an offset-addressed handle with no shared cursor,
// so Sample and ExtractPoints are safe for concurrent use on the same
// open raster. The tile cache, when enabled, serializes internally.
package geotiff
