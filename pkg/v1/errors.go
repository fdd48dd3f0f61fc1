package geotiff

import "github.com/beetlebugorg/geotiff/internal/raster"

// Error types surfaced by raster and world-file parsing. Use errors.As
// to match them.
type (
	// ErrTruncatedRead reports a read past the end of the raster file.
	ErrTruncatedRead = raster.ErrTruncatedRead

	// ErrMissingTag reports a tag directory without a required tag.
	ErrMissingTag = raster.ErrMissingTag

	// ErrTileCountMismatch reports an offset table whose length does not
	// match the tile grid.
	ErrTileCountMismatch = raster.ErrTileCountMismatch

	// ErrSampleDepth reports a raster that is not 16 bits per sample.
	ErrSampleDepth = raster.ErrSampleDepth

	// ErrPixelOutOfRange reports a sample request outside the raster.
	ErrPixelOutOfRange = raster.ErrPixelOutOfRange

	// ErrShortWorldFile reports a world file with fewer than six lines.
	ErrShortWorldFile = raster.ErrShortWorldFile

	// ErrWorldFileSyntax reports a world-file line that is not a number.
	ErrWorldFileSyntax = raster.ErrWorldFileSyntax

	// ErrZeroResolution reports a world-to-pixel transform against a
	// zero resolution axis.
	ErrZeroResolution = raster.ErrZeroResolution
)
