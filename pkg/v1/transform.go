package geotiff

import (
	"github.com/beetlebugorg/geotiff/internal/raster"
)

// WorldFile is a parsed affine world file mapping pixel coordinates to
// world coordinates.
//
// A value is immutable after construction; all methods are pure.
type WorldFile struct {
	wf *raster.WorldFile
}

// OpenWorldFile reads and parses the six-line world file at path.
//
// The file handle is released before returning; unlike Raster, a
// WorldFile holds no resources.
func OpenWorldFile(path string) (*WorldFile, error) {
	wf, err := raster.OpenWorldFile(path)
	if err != nil {
		return nil, err
	}
	return &WorldFile{wf: wf}, nil
}

// PixelToWorld maps a pixel coordinate to approximate surface meters.
//
// Resolutions are in arc-degrees; one degree is taken as 110 km, the
// latitude figure at the equator. The mapping is linear and accepts any
// real inputs.
func (w *WorldFile) PixelToWorld(x, y float64) (worldX, worldY float64) {
	return w.wf.PixelToWorld(x, y)
}

// WorldToPixel maps a latitude/longitude pair to pixel coordinates by
// dividing degree offsets from the origin by the resolution.
//
// This direction deliberately omits the meters-per-degree scaling the
// forward transform applies, so the two methods are not algebraic
// inverses. Returns an error when either resolution is zero.
func (w *WorldFile) WorldToPixel(lat, lon float64) (x, y float64, err error) {
	return w.wf.WorldToPixel(lat, lon)
}

// XRes returns the pixel size along the x axis in arc-degrees per pixel.
func (w *WorldFile) XRes() float64 { return w.wf.XRes() }

// YRes returns the pixel size along the y axis in arc-degrees per pixel.
func (w *WorldFile) YRes() float64 { return w.wf.YRes() }

// OriginLat returns the latitude of the top-left pixel center.
func (w *WorldFile) OriginLat() float64 { return w.wf.OriginLat() }

// OriginLon returns the longitude of the top-left pixel center.
func (w *WorldFile) OriginLon() float64 { return w.wf.OriginLon() }
