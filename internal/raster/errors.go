package raster

import (
	"fmt"
)

// ErrTruncatedRead indicates a read that returned fewer bytes than the
// format requires at that position.
type ErrTruncatedRead struct {
	Offset int64
	Want   int
	Got    int
	Err    error
}

func (e *ErrTruncatedRead) Error() string {
	return fmt.Sprintf("truncated read at offset %d: want %d bytes, got %d: %v",
		e.Offset, e.Want, e.Got, e.Err)
}

func (e *ErrTruncatedRead) Unwrap() error { return e.Err }

// ErrMissingTag indicates a tag required by the profile is absent from
// the tag directory.
type ErrMissingTag struct {
	Tag uint16
}

func (e *ErrMissingTag) Error() string {
	return fmt.Sprintf("tag directory missing required tag %d (%s)", e.Tag, tagName(e.Tag))
}

// ErrZeroTileSize indicates a tile dimension tag carried a zero value.
type ErrZeroTileSize struct {
	TileWidth, TileLength int
}

func (e *ErrZeroTileSize) Error() string {
	return fmt.Sprintf("zero tile dimension: tile width=%d, tile length=%d",
		e.TileWidth, e.TileLength)
}

// ErrTileCountMismatch indicates the tile-offset table length disagrees
// with the tile grid implied by the image and tile dimensions.
type ErrTileCountMismatch struct {
	Got, Want int
}

func (e *ErrTileCountMismatch) Error() string {
	return fmt.Sprintf("tile offset table has %d entries, tile grid needs %d",
		e.Got, e.Want)
}

// ErrSampleDepth indicates a bits-per-sample value other than the 16 the
// profile supports.
type ErrSampleDepth struct {
	Bits int
}

func (e *ErrSampleDepth) Error() string {
	return fmt.Sprintf("unsupported sample depth: %d bits per sample (profile requires 16)", e.Bits)
}

// ErrTagDataTooLarge indicates an out-of-line tag value with an
// implausible element count.
type ErrTagDataTooLarge struct {
	Tag   uint16
	Count uint32
}

func (e *ErrTagDataTooLarge) Error() string {
	return fmt.Sprintf("tag %d (%s) data count %d exceeds sanity limit",
		e.Tag, tagName(e.Tag), e.Count)
}

// ErrPixelOutOfRange indicates a pixel coordinate outside the raster extent.
type ErrPixelOutOfRange struct {
	X, Y          int
	Width, Height int
}

func (e *ErrPixelOutOfRange) Error() string {
	return fmt.Sprintf("pixel (%d,%d) outside raster bounds %dx%d",
		e.X, e.Y, e.Width, e.Height)
}

// ErrTileOutOfRange indicates a computed tile index outside the offset table.
type ErrTileOutOfRange struct {
	Index, Count int
}

func (e *ErrTileOutOfRange) Error() string {
	return fmt.Sprintf("tile index %d outside offset table of %d entries",
		e.Index, e.Count)
}

// ErrShortWorldFile indicates a world file with fewer than the six
// required lines.
type ErrShortWorldFile struct {
	Lines int
}

func (e *ErrShortWorldFile) Error() string {
	return fmt.Sprintf("world file has %d lines, need 6", e.Lines)
}

// ErrWorldFileSyntax indicates a world-file line that does not parse as a
// floating-point number.
type ErrWorldFileSyntax struct {
	Line int
	Text string
}

func (e *ErrWorldFileSyntax) Error() string {
	return fmt.Sprintf("world file line %d is not a number: %q", e.Line, e.Text)
}

// ErrZeroResolution indicates a degenerate world file whose resolution
// would divide by zero in the inverse transform.
type ErrZeroResolution struct {
	Axis string
}

func (e *ErrZeroResolution) Error() string {
	return fmt.Sprintf("world file %s resolution is zero, inverse transform undefined", e.Axis)
}

// tagName returns the profile name for a recognized tag id.
func tagName(tag uint16) string {
	switch tag {
	case tagImageWidth:
		return "ImageWidth"
	case tagImageHeight:
		return "ImageLength"
	case tagBitsPerSample:
		return "BitsPerSample"
	case tagTileWidth:
		return "TileWidth"
	case tagTileLength:
		return "TileLength"
	case tagTileOffsets:
		return "TileOffsets"
	default:
		return "unknown"
	}
}
