package main

import (
	"fmt"
	"log"

	geotiff "github.com/beetlebugorg/geotiff/pkg/v1"
)

func main() {
	// Index a directory of raster/world-file pairs
	idx, err := geotiff.BuildIndexFromDir("./data", geotiff.DefaultLoadOptions())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Indexed %d datasets\n", idx.Count())

	// Find datasets covering a region of interest
	region := geotiff.Bounds{MinX: 0, MaxX: 5000, MinY: -5000, MaxY: 0}
	for _, meta := range idx.Query(region) {
		fmt.Printf("  %s (%dx%d)\n", meta.Path, meta.Width, meta.Height)
	}

	// Build an R-tree over extracted points for fast box queries
	covering := idx.Query(region)
	if len(covering) == 0 {
		return
	}

	ds, err := geotiff.OpenDatasetAuto(covering[0].Path)
	if err != nil {
		log.Fatal(err)
	}
	defer ds.Close()

	points, err := ds.ExtractPoints(ds.FullWindow(), geotiff.ExtractOptions{})
	if err != nil {
		log.Fatal(err)
	}

	ptIndex := geotiff.NewPointIndex(points)
	fmt.Printf("Indexed %d points, extent %+v\n", ptIndex.Count(), ptIndex.Bounds())

	// Query a 100m box around the origin
	nearby := ptIndex.Search(geotiff.Bounds{MinX: -50, MaxX: 50, MinY: -50, MaxY: 50})
	fmt.Printf("Points within 50m of origin: %d\n", len(nearby))
}
