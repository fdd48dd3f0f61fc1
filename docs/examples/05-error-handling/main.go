package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	geotiff "github.com/beetlebugorg/geotiff/pkg/v1"
)

func safeOpenDataset(path string) (*geotiff.Dataset, error) {
	ds, err := geotiff.OpenDatasetAuto(path)
	if err != nil {
		// Check if file exists
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("raster not found: %s", path)
		}

		// Malformed tag directory or world file
		var missing *geotiff.ErrMissingTag
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%s is not a tiled raster: %w", path, err)
		}

		log.Printf("Failed to open %s: %v", path, err)
		return nil, err
	}

	return ds, nil
}

func main() {
	ds, err := safeOpenDataset("terrain.tif")
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}
	defer ds.Close()

	fmt.Printf("Loaded %dx%d raster\n", ds.Raster().Width(), ds.Raster().Height())

	// Out-of-range sampling returns a typed error
	_, err = ds.Raster().Sample(-1, 0)
	var oob *geotiff.ErrPixelOutOfRange
	if errors.As(err, &oob) {
		log.Printf("Expected error: %v", err)
	}

	// Extraction windows are validated the same way
	_, err = ds.ExtractPoints(geotiff.Window{EndX: 1 << 20, EndY: 1 << 20}, geotiff.ExtractOptions{})
	var badWin *geotiff.ErrWindowOutOfRange
	if errors.As(err, &badWin) {
		log.Printf("Expected error: %v", err)
	}

	// Try a raster that does not exist
	if _, err := safeOpenDataset("NONEXISTENT.tif"); err != nil {
		log.Printf("Expected error: %v", err)
	}
}
