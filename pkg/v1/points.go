package geotiff

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// Point is one sampled pixel in world space.
type Point struct {
	X float64 // world x in approximate meters
	Y float64 // world y in approximate meters
	Z float64 // raw 16-bit sample value
}

// Window is a half-open pixel rectangle: x in [StartX, EndX), y in
// [StartY, EndY).
type Window struct {
	StartX, StartY int
	EndX, EndY     int
}

// Width returns the window width in pixels.
func (w Window) Width() int { return w.EndX - w.StartX }

// Height returns the window height in pixels.
func (w Window) Height() int { return w.EndY - w.StartY }

// ErrWindowOutOfRange indicates an extraction window that does not fit
// inside the raster extent.
type ErrWindowOutOfRange struct {
	Window        Window
	Width, Height int
}

func (e *ErrWindowOutOfRange) Error() string {
	return fmt.Sprintf("window [%d,%d)x[%d,%d) outside raster bounds %dx%d",
		e.Window.StartX, e.Window.EndX, e.Window.StartY, e.Window.EndY,
		e.Width, e.Height)
}

// Dataset pairs an open raster with its world file.
//
// The two components are parsed independently; Dataset only ties them
// together for point extraction and world-space queries.
type Dataset struct {
	raster *Raster
	world  *WorldFile
}

// OpenDataset opens a raster and its world file with default options.
func OpenDataset(tifPath, tfwPath string) (*Dataset, error) {
	return OpenDatasetWithOptions(tifPath, tfwPath, DefaultOpenOptions())
}

// OpenDatasetWithOptions opens a raster and its world file with custom
// raster options. On any failure both files are released before
// returning.
func OpenDatasetWithOptions(tifPath, tfwPath string, opts OpenOptions) (*Dataset, error) {
	r, err := OpenRasterWithOptions(tifPath, opts)
	if err != nil {
		return nil, err
	}
	w, err := OpenWorldFile(tfwPath)
	if err != nil {
		r.Close()
		return nil, err
	}
	return &Dataset{raster: r, world: w}, nil
}

// OpenDatasetAuto opens a raster and derives the world-file path from the
// raster path by swapping the extension for .tfw.
//
// Example: "terrain.tif" loads "terrain.tfw" from the same directory.
func OpenDatasetAuto(tifPath string) (*Dataset, error) {
	return OpenDataset(tifPath, worldPathFor(tifPath))
}

// worldPathFor returns the conventional world-file sidecar path for a
// raster path.
func worldPathFor(tifPath string) string {
	return strings.TrimSuffix(tifPath, filepath.Ext(tifPath)) + ".tfw"
}

// Raster returns the underlying raster component.
func (d *Dataset) Raster() *Raster { return d.raster }

// World returns the underlying world-file component.
func (d *Dataset) World() *WorldFile { return d.world }

// Close releases the raster's file handle. The world file holds none.
func (d *Dataset) Close() error {
	return d.raster.Close()
}

// FullWindow returns the window covering the entire raster.
func (d *Dataset) FullWindow() Window {
	return Window{EndX: d.raster.Width(), EndY: d.raster.Height()}
}

// WorldBounds returns the world-space box spanned by the raster corners.
func (d *Dataset) WorldBounds() Bounds {
	x0, y0 := d.world.PixelToWorld(0, 0)
	x1, y1 := d.world.PixelToWorld(float64(d.raster.Width()-1), float64(d.raster.Height()-1))
	return Bounds{
		MinX: math.Min(x0, x1),
		MaxX: math.Max(x0, x1),
		MinY: math.Min(y0, y1),
		MaxY: math.Max(y0, y1),
	}
}

// ExtractPoints samples every pixel in the window row-major, drops the
// NoData sentinel, and maps the rest to world-space points.
//
// The output order is rows top to bottom, pixels left to right within a
// row, regardless of whether extraction runs serially or in parallel.
//
// Example:
//
//	points, err := ds.ExtractPoints(geotiff.Window{EndX: 512, EndY: 512},
//	    geotiff.ExtractOptions{
//	        Recenter: true,
//	        Parallel: true,
//	        Progress: func(done, total int) {
//	            fmt.Printf("\rExtracting: %d/%d rows", done, total)
//	        },
//	    })
func (d *Dataset) ExtractPoints(win Window, opts ExtractOptions) ([]Point, error) {
	if err := d.validateWindow(win); err != nil {
		return nil, err
	}
	if win.Width() == 0 || win.Height() == 0 {
		return []Point{}, nil
	}

	var centerX, centerY float64
	if opts.Recenter {
		// Midpoint in integer pixel space, then mapped to world space.
		cx := (win.StartX + win.EndX) / 2
		cy := (win.StartY + win.EndY) / 2
		centerX, centerY = d.world.PixelToWorld(float64(cx), float64(cy))
	}

	if opts.Parallel {
		return d.extractParallel(win, centerX, centerY, opts)
	}
	return d.extractSerial(win, centerX, centerY, opts)
}

func (d *Dataset) validateWindow(win Window) error {
	if win.StartX < 0 || win.StartY < 0 ||
		win.EndX > d.raster.Width() || win.EndY > d.raster.Height() ||
		win.StartX > win.EndX || win.StartY > win.EndY {
		return &ErrWindowOutOfRange{Window: win, Width: d.raster.Width(), Height: d.raster.Height()}
	}
	return nil
}

func (d *Dataset) extractSerial(win Window, centerX, centerY float64, opts ExtractOptions) ([]Point, error) {
	points := make([]Point, 0, win.Width()*win.Height())
	rows := win.Height()

	for y := win.StartY; y < win.EndY; y++ {
		row, err := d.extractRow(y, win, centerX, centerY)
		if err != nil {
			return nil, err
		}
		points = append(points, row...)

		if opts.Progress != nil {
			opts.Progress(y-win.StartY+1, rows)
		}
	}
	return points, nil
}

// extractRow samples one pixel row of the window.
func (d *Dataset) extractRow(y int, win Window, centerX, centerY float64) ([]Point, error) {
	points := make([]Point, 0, win.Width())
	for x := win.StartX; x < win.EndX; x++ {
		z, err := d.raster.Sample(x, y)
		if err != nil {
			return nil, err
		}
		if z == NoData {
			continue
		}
		wx, wy := d.world.PixelToWorld(float64(x), float64(y))
		points = append(points, Point{X: wx - centerX, Y: wy - centerY, Z: float64(z)})
	}
	return points, nil
}
