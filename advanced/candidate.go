package advanced

import (
	"math"

	"github.com/osuushi/heightmesh/internal"
)

// Unsplittable is the error recorded for a triangle that has no usable
// candidate. It sorts below every real error, so such triangles sink to the
// bottom of the queue and are only ever popped once nothing else is left.
const Unsplittable = -1.0

// Find the raster cell inside triangle abc that deviates the most from the
// plane through its three corners. The triangle must be counterclockwise;
// anything else is reported as unsplittable, as is a triangle whose cells all
// lie on the plane.
//
// Cells are visited row by row and the first strict maximum wins, so the
// result only depends on the triangle and the height field.
func findCandidate(hf HeightField, a, b, c Point) (Point, float64) {
	area := internal.Orient(a, b, c)
	if area <= 0 {
		return Point{}, Unsplittable
	}
	va, vb, vc := hf.ValueAt(a.X, a.Y), hf.ValueAt(b.X, b.Y), hf.ValueAt(c.X, c.Y)
	fArea := float64(area)

	lo, hi := internal.Bounds(a, b, c)

	// Edge function steps for moving one cell to the right
	step0 := int64(b.Y - c.Y)
	step1 := int64(c.Y - a.Y)
	step2 := int64(a.Y - b.Y)

	best := 0.0
	var candidate Point
	found := false
	for y := lo.Y; y <= hi.Y; y++ {
		start := Point{X: lo.X, Y: y}
		w0 := internal.Orient(b, c, start)
		w1 := internal.Orient(c, a, start)
		w2 := internal.Orient(a, b, start)
		for x := lo.X; x <= hi.X; x, w0, w1, w2 = x+1, w0+step0, w1+step1, w2+step2 {
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			q := Point{X: x, Y: y}
			if q == a || q == b || q == c {
				continue
			}
			z := (float64(w0)*va + float64(w1)*vb + float64(w2)*vc) / fArea
			dz := math.Abs(z - hf.ValueAt(x, y))
			if dz > best {
				best = dz
				candidate = q
				found = true
			}
		}
	}
	if !found {
		return Point{}, Unsplittable
	}
	return candidate, best
}
