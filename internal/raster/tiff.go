package raster

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Tag ids recognized by the profile. All other tags in the directory are
// skipped without interpretation.
//
// Reference: TIFF 6.0 §8 (baseline tags) and §15 (tiled images).
const (
	tagImageWidth    = 256
	tagImageHeight   = 257
	tagBitsPerSample = 258
	tagTileWidth     = 322
	tagTileLength    = 323
	tagTileOffsets   = 324
)

const (
	headerSize     = 8
	tagRecordSize  = 12
	bytesPerSample = 2

	// maxTileCount bounds the out-of-line tile-offset table so a corrupt
	// data count cannot drive a multi-gigabyte allocation.
	maxTileCount = 1 << 24
)

// ParseOptions configures directory validation.
type ParseOptions struct {
	// StrictTileCount: if true, require the tile-offset table length to
	// equal tilesAcross*tilesDown at parse time.
	// If false, an inconsistent table only surfaces later as an
	// out-of-range tile index during sampling.
	// Default: true
	StrictTileCount bool

	// RequireSampleDepth: if true, require BitsPerSample to be exactly 16.
	// Default: true
	RequireSampleDepth bool
}

// DefaultParseOptions returns parse options with defaults.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		StrictTileCount:    true,
		RequireSampleDepth: true,
	}
}

// File is an open tiled 16-bit grayscale raster.
//
// The tag directory is read once at open time; every field is immutable
// afterwards. Pixel data is read lazily through an io.ReaderAt, so there
// is no shared cursor and concurrent SamplePixel calls on the same File
// are safe.
//
// The profile is fixed: uncompressed, single sample per pixel, 16-bit
// signed integers, tiled layout, little-endian throughout.
type File struct {
	r      io.ReaderAt
	closer io.Closer

	identifier uint16
	version    uint16
	dirOffset  int32

	bitsPerSample int
	imageWidth    int
	imageHeight   int
	tileWidth     int
	tileLength    int
	tilesAcross   int
	tilesDown     int
	tileOffsets   []uint32
}

// Open opens path and parses its tag directory with default options.
func Open(path string) (*File, error) {
	return OpenWithOptions(path, DefaultParseOptions())
}

// OpenWithOptions opens path for random access and parses its tag directory.
// The returned File holds the file handle open for lazy pixel reads until
// Close is called. On any parse failure the handle is released before
// returning.
func OpenWithOptions(path string, opts ParseOptions) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}
	file, err := NewFile(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	file.closer = f
	return file, nil
}

// NewFile parses a tag directory from r.
//
// Close on the returned File is a no-op; the caller keeps ownership of r.
func NewFile(r io.ReaderAt, opts ParseOptions) (*File, error) {
	f := &File{r: r}
	if err := f.parseDirectory(opts); err != nil {
		return nil, err
	}
	return f, nil
}

// parseDirectory reads the fixed header, walks the tag directory once, and
// validates that the profile's required tags are all present.
func (f *File) parseDirectory(opts ParseOptions) error {
	header := make([]byte, headerSize)
	if err := f.readAt(header, 0); err != nil {
		return err
	}
	f.identifier = binary.LittleEndian.Uint16(header[0:2])
	f.version = binary.LittleEndian.Uint16(header[2:4])
	f.dirOffset = int32(binary.LittleEndian.Uint32(header[4:8]))

	count := make([]byte, 2)
	if err := f.readAt(count, int64(f.dirOffset)); err != nil {
		return err
	}
	numTags := int(binary.LittleEndian.Uint16(count))

	records := make([]byte, numTags*tagRecordSize)
	if err := f.readAt(records, int64(f.dirOffset)+2); err != nil {
		return err
	}

	var haveWidth, haveHeight, haveTileWidth, haveTileLength bool
	for i := 0; i < numTags; i++ {
		rec := records[i*tagRecordSize : (i+1)*tagRecordSize]
		tag := binary.LittleEndian.Uint16(rec[0:2])
		// rec[2:4] is the data type; the profile fixes every field's
		// encoding, so it is not interpreted.
		dataCount := binary.LittleEndian.Uint32(rec[4:8])
		value := binary.LittleEndian.Uint32(rec[8:12])

		switch tag {
		case tagImageWidth:
			f.imageWidth = int(value)
			haveWidth = true
		case tagImageHeight:
			f.imageHeight = int(value)
			haveHeight = true
		case tagBitsPerSample:
			f.bitsPerSample = int(value)
		case tagTileWidth:
			f.tileWidth = int(value)
			haveTileWidth = true
		case tagTileLength:
			f.tileLength = int(value)
			haveTileLength = true
		case tagTileOffsets:
			// The offset table never fits in the 4-byte value field, so
			// the value is itself a file offset to dataCount consecutive
			// u32 entries, ordered left to right then top to bottom.
			if err := f.readTileOffsets(dataCount, int64(value)); err != nil {
				return err
			}
		}
	}

	// A 4-byte next-directory offset trails the record block by format
	// convention. Multi-directory files are unsupported, so the value is
	// read for structural validation and discarded.
	next := make([]byte, 4)
	if err := f.readAt(next, int64(f.dirOffset)+2+int64(numTags)*tagRecordSize); err != nil {
		return err
	}

	switch {
	case !haveWidth:
		return &ErrMissingTag{Tag: tagImageWidth}
	case !haveHeight:
		return &ErrMissingTag{Tag: tagImageHeight}
	case !haveTileWidth:
		return &ErrMissingTag{Tag: tagTileWidth}
	case !haveTileLength:
		return &ErrMissingTag{Tag: tagTileLength}
	case f.tileOffsets == nil:
		return &ErrMissingTag{Tag: tagTileOffsets}
	}
	if f.tileWidth == 0 || f.tileLength == 0 {
		return &ErrZeroTileSize{TileWidth: f.tileWidth, TileLength: f.tileLength}
	}
	if opts.RequireSampleDepth && f.bitsPerSample != 16 {
		return &ErrSampleDepth{Bits: f.bitsPerSample}
	}

	f.tilesAcross = (f.imageWidth + f.tileWidth - 1) / f.tileWidth
	f.tilesDown = (f.imageHeight + f.tileLength - 1) / f.tileLength

	if opts.StrictTileCount {
		if want := f.tilesAcross * f.tilesDown; len(f.tileOffsets) != want {
			return &ErrTileCountMismatch{Got: len(f.tileOffsets), Want: want}
		}
	}

	return nil
}

// readTileOffsets reads the out-of-line tile-offset table at off.
func (f *File) readTileOffsets(dataCount uint32, off int64) error {
	if dataCount > maxTileCount {
		return &ErrTagDataTooLarge{Tag: tagTileOffsets, Count: dataCount}
	}
	raw := make([]byte, int(dataCount)*4)
	if err := f.readAt(raw, off); err != nil {
		return err
	}
	f.tileOffsets = make([]uint32, dataCount)
	for i := range f.tileOffsets {
		f.tileOffsets[i] = binary.LittleEndian.Uint32(raw[i*4 : (i+1)*4])
	}
	return nil
}

// readAt fills p from the underlying reader at off, converting any short
// read into a truncation error carrying the file position.
func (f *File) readAt(p []byte, off int64) error {
	n, err := f.r.ReadAt(p, off)
	if err != nil {
		return &ErrTruncatedRead{Offset: off, Want: len(p), Got: n, Err: err}
	}
	return nil
}

// SamplePixel reads the 16-bit signed sample at pixel (x, y).
//
// Each call performs one small read at the computed file offset; reads
// are deterministic given the file contents, so repeated calls with the
// same coordinates return the same value.
func (f *File) SamplePixel(x, y int) (int16, error) {
	index, xt, yt, err := f.TileIndex(x, y)
	if err != nil {
		return 0, err
	}
	off := int64(f.tileOffsets[index]) + int64(yt*f.tileWidth+xt)*bytesPerSample
	var buf [bytesPerSample]byte
	if err := f.readAt(buf[:], off); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), nil
}

// TileIndex decomposes a pixel coordinate into its tile index in the
// offset table and the within-tile offsets (xt, yt).
//
// Tiles are numbered row-major: index = tileY*tilesAcross + tileX.
func (f *File) TileIndex(x, y int) (index, xt, yt int, err error) {
	if x < 0 || x >= f.imageWidth || y < 0 || y >= f.imageHeight {
		return 0, 0, 0, &ErrPixelOutOfRange{X: x, Y: y, Width: f.imageWidth, Height: f.imageHeight}
	}
	tileX := x / f.tileWidth
	tileY := y / f.tileLength
	index = tileY*f.tilesAcross + tileX
	if index >= len(f.tileOffsets) {
		return 0, 0, 0, &ErrTileOutOfRange{Index: index, Count: len(f.tileOffsets)}
	}
	return index, x % f.tileWidth, y % f.tileLength, nil
}

// ReadTile reads one whole tile as raw little-endian sample bytes.
//
// The returned slice is tileWidth*tileLength*2 bytes, row-major within
// the tile. Used by callers that cache tiles; sampling from the returned
// bytes with SampleFromTile matches SamplePixel exactly.
func (f *File) ReadTile(index int) ([]byte, error) {
	if index < 0 || index >= len(f.tileOffsets) {
		return nil, &ErrTileOutOfRange{Index: index, Count: len(f.tileOffsets)}
	}
	buf := make([]byte, f.tileWidth*f.tileLength*bytesPerSample)
	if err := f.readAt(buf, int64(f.tileOffsets[index])); err != nil {
		return nil, err
	}
	return buf, nil
}

// SampleFromTile decodes the sample at within-tile position (xt, yt) from
// raw tile bytes previously returned by ReadTile.
func SampleFromTile(tile []byte, tileWidth, xt, yt int) int16 {
	off := (yt*tileWidth + xt) * bytesPerSample
	return int16(binary.LittleEndian.Uint16(tile[off : off+bytesPerSample]))
}

// Close releases the underlying file handle.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// Identifier returns the 2-byte format identifier from the header.
// It is not validated; exposed for diagnostics.
func (f *File) Identifier() uint16 { return f.identifier }

// Version returns the 2-byte format version from the header.
func (f *File) Version() uint16 { return f.version }

// DirectoryOffset returns the byte offset of the tag directory.
func (f *File) DirectoryOffset() int32 { return f.dirOffset }

// BitsPerSample returns the sample depth declared by the directory.
func (f *File) BitsPerSample() int { return f.bitsPerSample }

// Width returns the raster width in pixels.
func (f *File) Width() int { return f.imageWidth }

// Height returns the raster height in pixels.
func (f *File) Height() int { return f.imageHeight }

// TileWidth returns the width of one tile in pixels.
func (f *File) TileWidth() int { return f.tileWidth }

// TileLength returns the height of one tile in pixels.
func (f *File) TileLength() int { return f.tileLength }

// TilesAcross returns the number of tile columns.
func (f *File) TilesAcross() int { return f.tilesAcross }

// TilesDown returns the number of tile rows.
func (f *File) TilesDown() int { return f.tilesDown }

// TileCount returns the number of entries in the tile-offset table.
func (f *File) TileCount() int { return len(f.tileOffsets) }
