package raster

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func parseWorld(t *testing.T, content string) *WorldFile {
	t.Helper()
	w, err := ParseWorldFile(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseWorldFile failed: %v", err)
	}
	return w
}

func TestParseWorldFile(t *testing.T) {
	w := parseWorld(t, "0.0001\n0\n0\n-0.0001\n45.0\n-93.0\n")

	if w.XRes() != 0.0001 {
		t.Errorf("Expected XRes=0.0001, got %v", w.XRes())
	}
	if w.YRes() != -0.0001 {
		t.Errorf("Expected YRes=-0.0001, got %v", w.YRes())
	}
	if w.OriginLat() != 45.0 {
		t.Errorf("Expected OriginLat=45.0, got %v", w.OriginLat())
	}
	if w.OriginLon() != -93.0 {
		t.Errorf("Expected OriginLon=-93.0, got %v", w.OriginLon())
	}
}

func TestParseWorldFileRotationIgnored(t *testing.T) {
	// Non-zero rotation terms parse fine and have no effect.
	w := parseWorld(t, "0.5\n0.1\n-0.2\n-0.5\n10\n20\n")
	x, y := w.PixelToWorld(1, 1)
	if x != 0.5*metersPerDegree || y != -0.5*metersPerDegree {
		t.Errorf("PixelToWorld(1,1) = (%v,%v), rotation terms leaked in", x, y)
	}
}

func TestParseWorldFileShort(t *testing.T) {
	_, err := ParseWorldFile(strings.NewReader("0.0001\n0\n0\n-0.0001\n"))
	var short *ErrShortWorldFile
	if !errors.As(err, &short) {
		t.Fatalf("Expected ErrShortWorldFile, got %v", err)
	}
	if short.Lines != 4 {
		t.Errorf("Expected 4 lines reported, got %d", short.Lines)
	}
}

func TestParseWorldFileBadNumber(t *testing.T) {
	_, err := ParseWorldFile(strings.NewReader("0.0001\n0\nnorth\n-0.0001\n45\n-93\n"))
	var syntax *ErrWorldFileSyntax
	if !errors.As(err, &syntax) {
		t.Fatalf("Expected ErrWorldFileSyntax, got %v", err)
	}
	if syntax.Line != 3 {
		t.Errorf("Expected failure on line 3, got line %d", syntax.Line)
	}
}

func TestPixelToWorld(t *testing.T) {
	w := parseWorld(t, "0.0001\n0\n0\n-0.0001\n45.0\n-93.0\n")

	// Concrete scenario: 0.0001 deg/px * 110000 m/deg * 10 px = 110 m.
	x, y := w.PixelToWorld(10, 10)
	if math.Abs(x-110.0) > 1e-9 || math.Abs(y+110.0) > 1e-9 {
		t.Errorf("PixelToWorld(10,10) = (%v,%v), want (110,-110)", x, y)
	}

	// Origin maps to origin.
	if x, y := w.PixelToWorld(0, 0); x != 0 || y != 0 {
		t.Errorf("PixelToWorld(0,0) = (%v,%v), want (0,0)", x, y)
	}
}

func TestPixelToWorldLinear(t *testing.T) {
	w := parseWorld(t, "0.0003\n0\n0\n-0.0002\n45.0\n-93.0\n")

	x1, y1 := w.PixelToWorld(7, 13)
	x2, y2 := w.PixelToWorld(14, 26)
	if math.Abs(x2-2*x1) > 1e-9 || math.Abs(y2-2*y1) > 1e-9 {
		t.Errorf("Doubling inputs did not double outputs: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}
}

func TestWorldToPixel(t *testing.T) {
	w := parseWorld(t, "0.0001\n0\n0\n-0.0001\n45.0\n-93.0\n")

	// The origin maps to pixel (0,0).
	x, y, err := w.WorldToPixel(45.0, -93.0)
	if err != nil {
		t.Fatalf("WorldToPixel failed: %v", err)
	}
	if x != 0 || y != 0 {
		t.Errorf("WorldToPixel(origin) = (%v,%v), want (0,0)", x, y)
	}

	// One resolution step of latitude is one pixel.
	x, y, err = w.WorldToPixel(45.0001, -93.0002)
	if err != nil {
		t.Fatalf("WorldToPixel failed: %v", err)
	}
	if math.Abs(x-1) > 1e-6 || math.Abs(y-2) > 1e-6 {
		t.Errorf("WorldToPixel(45.0001,-93.0002) = (%v,%v), want (1,2)", x, y)
	}
}

// TestTransformAsymmetry pins the deliberate mismatch between the two
// directions: the forward transform scales degrees to meters, the inverse
// divides raw degree offsets by resolution without that factor.
func TestTransformAsymmetry(t *testing.T) {
	w := parseWorld(t, "0.0001\n0\n0\n0.0001\n0\n0\n")

	wx, wy := w.PixelToWorld(1, 1)
	px, py, err := w.WorldToPixel(wx, wy)
	if err != nil {
		t.Fatalf("WorldToPixel failed: %v", err)
	}
	// Round-tripping multiplies by metersPerDegree; anything else means a
	// formula was "fixed".
	if math.Abs(px-metersPerDegree) > 1e-6 || math.Abs(py-metersPerDegree) > 1e-6 {
		t.Errorf("Round trip of (1,1) = (%v,%v), want (%v,%v)",
			px, py, float64(metersPerDegree), float64(metersPerDegree))
	}
}

func TestWorldToPixelZeroResolution(t *testing.T) {
	w := parseWorld(t, "0\n0\n0\n-0.0001\n45.0\n-93.0\n")
	_, _, err := w.WorldToPixel(45.0, -93.0)
	var zero *ErrZeroResolution
	if !errors.As(err, &zero) {
		t.Fatalf("Expected ErrZeroResolution, got %v", err)
	}
	if zero.Axis != "x" {
		t.Errorf("Expected x axis reported, got %q", zero.Axis)
	}

	w = parseWorld(t, "0.0001\n0\n0\n0\n45.0\n-93.0\n")
	_, _, err = w.WorldToPixel(45.0, -93.0)
	if !errors.As(err, &zero) {
		t.Fatalf("Expected ErrZeroResolution for y axis, got %v", err)
	}
	if zero.Axis != "y" {
		t.Errorf("Expected y axis reported, got %q", zero.Axis)
	}
}

func TestParseWorldFileWhitespace(t *testing.T) {
	// Trailing spaces and CRLF endings appear in files written on Windows.
	w := parseWorld(t, "0.0001 \r\n0\r\n0\r\n-0.0001\r\n45.0\r\n-93.0\r\n")
	if w.XRes() != 0.0001 || w.OriginLon() != -93.0 {
		t.Errorf("CRLF world file parsed wrong: xRes=%v originLon=%v", w.XRes(), w.OriginLon())
	}
}
