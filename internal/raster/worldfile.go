package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// metersPerDegree is the ground distance of one arc-degree of latitude at
// the equator, in meters. World-file resolutions in this profile are in
// arc-degrees, so the forward transform scales by this factor to produce
// surface meters. It is an approximation, not a geodesic projection.
const metersPerDegree = 110_000

const worldFileLines = 6

// WorldFile is a parsed six-line affine world file.
//
// Line order: x-resolution, rotation, rotation, y-resolution, origin
// latitude, origin longitude. The two rotation terms are parsed but
// dropped: the transform supports axis-aligned scaling only.
//
// All fields are populated at parse time and immutable afterwards.
type WorldFile struct {
	xRes      float64
	yRes      float64
	originLat float64
	originLon float64
}

// OpenWorldFile reads and parses the world file at path.
func OpenWorldFile(path string) (*WorldFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open world file: %w", err)
	}
	defer f.Close()
	return ParseWorldFile(f)
}

// ParseWorldFile parses six numeric lines from r.
func ParseWorldFile(r io.Reader) (*WorldFile, error) {
	values := make([]float64, 0, worldFileLines)
	scanner := bufio.NewScanner(r)
	for len(values) < worldFileLines && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, &ErrWorldFileSyntax{Line: len(values) + 1, Text: line}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}
	if len(values) < worldFileLines {
		return nil, &ErrShortWorldFile{Lines: len(values)}
	}

	return &WorldFile{
		xRes:      values[0],
		yRes:      values[3],
		originLat: values[4],
		originLon: values[5],
	}, nil
}

// PixelToWorld maps a pixel coordinate to approximate surface meters.
//
// worldX = xRes * 110000 * x, worldY = yRes * 110000 * y. Inputs are not
// range-restricted; the mapping is linear and pure.
func (w *WorldFile) PixelToWorld(x, y float64) (worldX, worldY float64) {
	return w.xRes * metersPerDegree * x, w.yRes * metersPerDegree * y
}

// WorldToPixel maps a latitude/longitude pair to pixel coordinates.
//
// x = (lat - originLat) / xRes, y = (lon - originLon) / yRes.
//
// This is not the algebraic inverse of PixelToWorld: the forward mapping
// scales by the meters-per-degree factor, the inverse divides unscaled
// degree offsets by the resolution alone. Consumers depend on this exact
// pairing of formulas, so both are kept as-is.
//
// Returns a zero-resolution error instead of dividing by zero when the
// world file is degenerate.
func (w *WorldFile) WorldToPixel(lat, lon float64) (x, y float64, err error) {
	if w.xRes == 0 {
		return 0, 0, &ErrZeroResolution{Axis: "x"}
	}
	if w.yRes == 0 {
		return 0, 0, &ErrZeroResolution{Axis: "y"}
	}
	return (lat - w.originLat) / w.xRes, (lon - w.originLon) / w.yRes, nil
}

// XRes returns the pixel size along the x axis, in arc-degrees per pixel.
func (w *WorldFile) XRes() float64 { return w.xRes }

// YRes returns the pixel size along the y axis, in arc-degrees per pixel.
// Typically negative: raster rows grow southward.
func (w *WorldFile) YRes() float64 { return w.yRes }

// OriginLat returns the world-space latitude of the top-left pixel center.
func (w *WorldFile) OriginLat() float64 { return w.originLat }

// OriginLon returns the world-space longitude of the top-left pixel center.
func (w *WorldFile) OriginLon() float64 { return w.originLon }
