package geotiff

import (
	"fmt"
	"os"
	"time"
)

// DatasetMetadata contains lightweight metadata for one raster/world pair.
//
// Extraction reads only the tag directory and the six-line world file,
// never pixel data, so it is cheap enough to run over whole directory
// trees when building an index.
type DatasetMetadata struct {
	Path       string    // raster file path
	WorldPath  string    // world-file sidecar path
	Width      int       // raster width in pixels
	Height     int       // raster height in pixels
	TileWidth  int       // tile width in pixels
	TileLength int       // tile height in pixels
	Bounds     Bounds    // world-space extent
	FileSize   int64     // raster file size in bytes
	ModTime    time.Time // raster file modification time
}

// ExtractMetadata reads the tag directory and world-file sidecar of the
// raster at tifPath and returns its metadata. The files are closed before
// returning.
func ExtractMetadata(tifPath string) (*DatasetMetadata, error) {
	ds, err := OpenDatasetAuto(tifPath)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	info, err := os.Stat(tifPath)
	if err != nil {
		return nil, fmt.Errorf("stat raster: %w", err)
	}

	return &DatasetMetadata{
		Path:       tifPath,
		WorldPath:  worldPathFor(tifPath),
		Width:      ds.raster.Width(),
		Height:     ds.raster.Height(),
		TileWidth:  ds.raster.TileWidth(),
		TileLength: ds.raster.TileLength(),
		Bounds:     ds.WorldBounds(),
		FileSize:   info.Size(),
		ModTime:    info.ModTime(),
	}, nil
}
