package main

import (
	"fmt"
	"log"

	geotiff "github.com/beetlebugorg/geotiff/pkg/v1"
)

func main() {
	ds, err := geotiff.OpenDatasetAuto("terrain.tif")
	if err != nil {
		log.Fatal(err)
	}
	defer ds.Close()

	// Extract every valid pixel as an (x, y, z) point, recentered on
	// the window midpoint. No-data pixels are skipped.
	opts := geotiff.DefaultExtractOptions()
	opts.Recenter = true
	opts.Progress = func(done, total int) {
		if done%100 == 0 || done == total {
			fmt.Printf("\rRows: %d/%d", done, total)
		}
	}

	points, err := ds.ExtractPoints(ds.FullWindow(), opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()

	fmt.Printf("Extracted %d points\n", len(points))

	// Extract a sub-window only
	window := geotiff.Window{StartX: 0, StartY: 0, EndX: 256, EndY: 256}
	subset, err := ds.ExtractPoints(window, geotiff.ExtractOptions{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Top-left 256x256 block: %d points\n", len(subset))

	for _, p := range subset[:min(len(subset), 3)] {
		fmt.Printf("  (%.1f, %.1f) -> %.0f\n", p.X, p.Y, p.Z)
	}
}
