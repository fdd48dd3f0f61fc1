package geotiff

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// buildRasterBytes assembles a complete raster file in memory: header,
// tile data, tile-offset table, then the tag directory. samples overrides
// individual pixels; everything else reads as fill.
func buildRasterBytes(width, height, tileWidth, tileLength int, fill int16, samples map[[2]int]int16) []byte {
	le := binary.LittleEndian

	tilesAcross := (width + tileWidth - 1) / tileWidth
	tilesDown := (height + tileLength - 1) / tileLength
	numTiles := tilesAcross * tilesDown
	tileBytes := tileWidth * tileLength * 2

	dataStart := 8
	tableStart := dataStart + numTiles*tileBytes
	dirStart := tableStart + numTiles*4

	buf := make([]byte, dirStart+2+6*12+4)

	le.PutUint16(buf[0:], 0x4949)
	le.PutUint16(buf[2:], 42)
	le.PutUint32(buf[4:], uint32(dirStart))

	writeSample := func(x, y int, v int16) {
		tileX, tileY := x/tileWidth, y/tileLength
		index := tileY*tilesAcross + tileX
		xt, yt := x%tileWidth, y%tileLength
		off := dataStart + index*tileBytes + (yt*tileWidth+xt)*2
		le.PutUint16(buf[off:], uint16(v))
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			writeSample(x, y, fill)
		}
	}
	for xy, v := range samples {
		writeSample(xy[0], xy[1], v)
	}

	for i := 0; i < numTiles; i++ {
		le.PutUint32(buf[tableStart+i*4:], uint32(dataStart+i*tileBytes))
	}

	le.PutUint16(buf[dirStart:], 6)
	writeTag := func(i int, id uint16, count, value uint32) {
		off := dirStart + 2 + i*12
		le.PutUint16(buf[off:], id)
		le.PutUint16(buf[off+2:], 3)
		le.PutUint32(buf[off+4:], count)
		le.PutUint32(buf[off+8:], value)
	}
	writeTag(0, 256, 1, uint32(width))
	writeTag(1, 257, 1, uint32(height))
	writeTag(2, 258, 1, 16)
	writeTag(3, 322, 1, uint32(tileWidth))
	writeTag(4, 323, 1, uint32(tileLength))
	writeTag(5, 324, uint32(numTiles), uint32(tableStart))

	return buf
}

// writeTestDataset writes a raster and its .tfw sidecar into dir and
// returns the raster path.
func writeTestDataset(t *testing.T, dir, name string, width, height, tileWidth, tileLength int, fill int16, samples map[[2]int]int16, world [6]float64) string {
	t.Helper()

	tifPath := filepath.Join(dir, name+".tif")
	if err := os.WriteFile(tifPath, buildRasterBytes(width, height, tileWidth, tileLength, fill, samples), 0o644); err != nil {
		t.Fatalf("write raster: %v", err)
	}

	tfw := ""
	for _, v := range world {
		tfw += fmt.Sprintf("%g\n", v)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".tfw"), []byte(tfw), 0o644); err != nil {
		t.Fatalf("write world file: %v", err)
	}
	return tifPath
}

// defaultWorld is a plausible mid-latitude world file: 0.0001 deg/px,
// north-up, origin at 45N 93W.
var defaultWorld = [6]float64{0.0001, 0, 0, -0.0001, 45.0, -93.0}
