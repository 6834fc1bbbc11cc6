package internal

import "fmt"

// Point is a raster grid coordinate. Mesh vertices always sit exactly on grid
// cells, which is what lets every predicate below run in exact integer
// arithmetic. There is no epsilon anywhere in the mesh code.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Twice the signed area of abc. Positive when a, b, c wind counterclockwise
// (x right, y up), zero when they are collinear.
func Orient(a, b, c Point) int64 {
	return int64(b.X-a.X)*int64(c.Y-a.Y) - int64(b.Y-a.Y)*int64(c.X-a.X)
}

func IsCCW(a, b, c Point) bool {
	return Orient(a, b, c) > 0
}

func Collinear(a, b, c Point) bool {
	return Orient(a, b, c) == 0
}

// InCircle is positive when d lies strictly inside the circumcircle of the
// counterclockwise triangle abc, negative when it is outside and zero when the
// four points are cocircular.
//
// Coordinates are raster indices, so the lifted determinant stays far away from
// overflowing an int64 for any raster that fits in memory.
func InCircle(a, b, c, d Point) int64 {
	adx, ady := int64(a.X-d.X), int64(a.Y-d.Y)
	bdx, bdy := int64(b.X-d.X), int64(b.Y-d.Y)
	cdx, cdy := int64(c.X-d.X), int64(c.Y-d.Y)

	ad := adx*adx + ady*ady
	bd := bdx*bdx + bdy*bdy
	cd := cdx*cdx + cdy*cdy

	return adx*(bdy*cd-bd*cdy) -
		ady*(bdx*cd-bd*cdx) +
		ad*(bdx*cdy-bdy*cdx)
}

// Bounds returns the inclusive bounding box of the three points.
func Bounds(a, b, c Point) (min, max Point) {
	min = Point{minInt(a.X, b.X, c.X), minInt(a.Y, b.Y, c.Y)}
	max = Point{maxInt(a.X, b.X, c.X), maxInt(a.Y, b.Y, c.Y)}
	return min, max
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Vertex is an exported mesh point: raster x, raster y flipped to a y-up frame,
// and the scaled elevation.
type Vertex struct {
	X, Y, Z float64
}

// Face holds three indexes into a Vertex slice, wound counterclockwise in the
// y-up frame of Vertex, so face normals point towards +Z.
type Face struct {
	A, B, C int
}
