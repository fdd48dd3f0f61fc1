package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	geotiff "github.com/beetlebugorg/geotiff/pkg/v1"
)

func main() {
	// Enable the tile cache for repeated sampling of the same region
	opts := geotiff.DefaultOpenOptions()
	opts.TileCacheSize = 64

	r, err := geotiff.OpenRasterWithOptions("terrain.tif", opts)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	start := time.Now()
	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			if _, err := r.Sample(x, y); err != nil {
				log.Fatal(err)
			}
		}
	}
	fmt.Printf("Sampled 512x512 block in %v\n", time.Since(start))

	stats := r.CacheStats()
	fmt.Printf("Cache: %d/%d tiles, %d hits, %d misses\n",
		stats.Entries, stats.Capacity, stats.Hits, stats.Misses)

	// Parallel extraction spreads rows across workers
	ds, err := geotiff.OpenDatasetAuto("terrain.tif")
	if err != nil {
		log.Fatal(err)
	}
	defer ds.Close()

	start = time.Now()
	points, err := ds.ExtractPoints(ds.FullWindow(), geotiff.ExtractOptions{
		Parallel: true,
		Workers:  runtime.NumCPU(),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Extracted %d points in %v with %d workers\n",
		len(points), time.Since(start), runtime.NumCPU())
}
