package geotiff

import (
	"github.com/dhconnelly/rtreego"
)

// Bounds is an axis-aligned box in world coordinates (approximate meters).
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Union returns the smallest bounds containing both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	result := b
	if other.MinX < result.MinX {
		result.MinX = other.MinX
	}
	if other.MaxX > result.MaxX {
		result.MaxX = other.MaxX
	}
	if other.MinY < result.MinY {
		result.MinY = other.MinY
	}
	if other.MaxY > result.MaxY {
		result.MaxY = other.MaxY
	}
	return result
}

// Expand returns a new Bounds grown by the given margin in all directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MaxX: b.MaxX + margin,
		MinY: b.MinY - margin,
		MaxY: b.MaxY + margin,
	}
}

// PointIndex answers box queries over an extracted point cloud using an
// R-tree. Build once, query many times; the index is immutable and safe
// for concurrent reads.
type PointIndex struct {
	rtree  *rtreego.Rtree
	bounds Bounds
}

// indexedPoint wraps a point for R-tree storage.
type indexedPoint struct {
	point Point
}

// Bounds implements rtreego.Spatial. R-tree rects need non-zero extent,
// so each point gets a small epsilon box.
func (p *indexedPoint) Bounds() rtreego.Rect {
	const epsilon = 0.001
	rect, _ := rtreego.NewRect(rtreego.Point{p.point.X, p.point.Y}, []float64{epsilon, epsilon})
	return rect
}

// NewPointIndex builds an R-tree over the given points.
func NewPointIndex(points []Point) *PointIndex {
	idx := &PointIndex{rtree: rtreego.NewTree(2, 25, 50)}

	for i, p := range points {
		if i == 0 {
			idx.bounds = Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
		} else {
			idx.bounds = idx.bounds.Union(Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y})
		}
		idx.rtree.Insert(&indexedPoint{point: p})
	}
	return idx
}

// Search returns all indexed points inside b.
func (idx *PointIndex) Search(b Bounds) []Point {
	// Degenerate query boxes still need positive rect extents.
	const epsilon = 0.001
	lengths := []float64{b.MaxX - b.MinX, b.MaxY - b.MinY}
	for i := range lengths {
		if lengths[i] < epsilon {
			lengths[i] = epsilon
		}
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, lengths)

	spatials := idx.rtree.SearchIntersect(rect)

	// The epsilon boxes make the R-tree pass near-misses at the border;
	// filter to exact containment.
	result := make([]Point, 0, len(spatials))
	for _, spatial := range spatials {
		p := spatial.(*indexedPoint).point
		if b.Contains(p.X, p.Y) {
			result = append(result, p)
		}
	}
	return result
}

// Count returns the number of indexed points.
func (idx *PointIndex) Count() int {
	return idx.rtree.Size()
}

// Bounds returns the bounding box of all indexed points. Zero-valued for
// an empty index.
func (idx *PointIndex) Bounds() Bounds {
	return idx.bounds
}
