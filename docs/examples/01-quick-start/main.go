package main

import (
	"fmt"
	"log"

	geotiff "github.com/beetlebugorg/geotiff/pkg/v1"
)

func main() {
	// Open a raster with its world-file sidecar
	ds, err := geotiff.OpenDatasetAuto("terrain.tif")
	if err != nil {
		log.Fatal(err)
	}
	defer ds.Close()

	// Print raster info
	r := ds.Raster()
	fmt.Printf("Size: %dx%d pixels\n", r.Width(), r.Height())
	fmt.Printf("Tiles: %dx%d pixels, %d total\n", r.TileWidth(), r.TileLength(), r.TileCount())

	// Get dataset extent in world coordinates
	bounds := ds.WorldBounds()
	fmt.Printf("Extent: [%.1f,%.1f] to [%.1f,%.1f] meters\n",
		bounds.MinX, bounds.MinY,
		bounds.MaxX, bounds.MaxY)

	// Sample one pixel
	z, err := r.Sample(100, 100)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Elevation at (100,100): %d\n", z)
}
