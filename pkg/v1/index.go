package geotiff

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadOptions controls directory indexing and error handling.
type LoadOptions struct {
	// SkipErrors causes indexing to continue even when individual
	// datasets fail to parse. Failed datasets are skipped.
	// When false, the first error stops indexing and is returned.
	SkipErrors bool

	// Progress is an optional callback for tracking indexing progress.
	// Called after each dataset is processed with (loaded, total).
	Progress func(loaded, total int)

	// ErrorLog is an optional writer for detailed error reporting. Each
	// indexing error is written here with the dataset path.
	ErrorLog io.Writer
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		SkipErrors: true,
		Progress:   nil,
		ErrorLog:   nil,
	}
}

// DatasetIndex provides spatial queries over a collection of raster
// datasets.
//
// The index stores lightweight metadata for each dataset (extent, tile
// geometry, file info) without holding any files open. Use it to find
// which rasters cover a region before opening them.
//
// Example:
//
//	idx, err := geotiff.BuildIndexFromDir("/data/terrain", geotiff.DefaultLoadOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	covering := idx.Query(regionOfInterest)
type DatasetIndex struct {
	entries []DatasetMetadata
}

// BuildIndexFromDir builds a dataset index by scanning a directory tree.
//
// The scan collects every .tif/.tiff file that has a .tfw world-file
// sidecar next to it; rasters without a sidecar are not datasets and are
// ignored. Metadata extraction failures follow LoadOptions.
func BuildIndexFromDir(root string, opts LoadOptions) (*DatasetIndex, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".tif" && ext != ".tiff" {
			return nil
		}
		if _, err := os.Stat(worldPathFor(path)); err != nil {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no datasets found in %s", root)
	}

	entries := make([]DatasetMetadata, 0, len(paths))
	for i, path := range paths {
		meta, err := ExtractMetadata(path)

		if opts.Progress != nil {
			opts.Progress(i+1, len(paths))
		}
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error indexing dataset: %v\n", err)
			}
			if opts.SkipErrors {
				continue
			}
			return nil, err
		}

		entries = append(entries, *meta)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no datasets could be indexed in %s", root)
	}

	// Deterministic order regardless of Walk order.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return &DatasetIndex{entries: entries}, nil
}

// Query returns datasets whose world extent intersects the given bounds.
func (idx *DatasetIndex) Query(bounds Bounds) []DatasetMetadata {
	var result []DatasetMetadata
	for _, entry := range idx.entries {
		if bounds.Intersects(entry.Bounds) {
			result = append(result, entry)
		}
	}
	return result
}

// Count returns the total number of datasets in the index.
func (idx *DatasetIndex) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all dataset extents in the index.
func (idx *DatasetIndex) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}
	bounds := idx.entries[0].Bounds
	for i := 1; i < len(idx.entries); i++ {
		bounds = bounds.Union(idx.entries[i].Bounds)
	}
	return bounds
}

// All returns all dataset entries in the index.
func (idx *DatasetIndex) All() []DatasetMetadata {
	return idx.entries
}
