package stl

import (
	"sort"

	"github.com/osuushi/heightmesh/internal"
)

// AddBase closes a terrain mesh into a solid. The mesh must cover the
// rectangle (0, 0)-(w-1, h-1) in the xy plane, as a triangulator's output
// does. Every boundary vertex gets a copy dropped to elevation z, walls join
// the two rings, and the bottom is a fan around the center of the rectangle.
//
// The returned slices extend the inputs, so the original points keep their
// indexes.
func AddBase(points []internal.Vertex, faces []internal.Face, w, h int, z float64) ([]internal.Vertex, []internal.Face) {
	ring := boundaryRing(points, float64(w-1), float64(h-1))
	if len(ring) < 3 {
		return points, faces
	}

	bottom := make([]int, len(ring))
	for i, index := range ring {
		p := points[index]
		bottom[i] = len(points)
		points = append(points, internal.Vertex{X: p.X, Y: p.Y, Z: z})
	}
	center := len(points)
	points = append(points, internal.Vertex{X: float64(w-1) / 2, Y: float64(h-1) / 2, Z: z})

	for i := range ring {
		j := (i + 1) % len(ring)
		// The ring runs counterclockwise seen from above, so the outside is on
		// the right of each step
		faces = append(faces,
			internal.Face{A: ring[i], B: bottom[i], C: bottom[j]},
			internal.Face{A: ring[i], B: bottom[j], C: ring[j]},
			internal.Face{A: center, B: bottom[j], C: bottom[i]},
		)
	}
	return points, faces
}

// Indexes of the points on the rectangle's edge, counterclockwise from the
// origin, each corner once.
func boundaryRing(points []internal.Vertex, maxX, maxY float64) []int {
	var south, east, north, west []int
	for i, p := range points {
		switch {
		case p.Y == 0 && p.X < maxX:
			south = append(south, i)
		case p.X == maxX && p.Y < maxY:
			east = append(east, i)
		case p.Y == maxY && p.X > 0:
			north = append(north, i)
		case p.X == 0 && p.Y > 0:
			west = append(west, i)
		}
	}
	sort.Slice(south, func(i, j int) bool { return points[south[i]].X < points[south[j]].X })
	sort.Slice(east, func(i, j int) bool { return points[east[i]].Y < points[east[j]].Y })
	sort.Slice(north, func(i, j int) bool { return points[north[i]].X > points[north[j]].X })
	sort.Slice(west, func(i, j int) bool { return points[west[i]].Y > points[west[j]].Y })

	ring := append(south, east...)
	ring = append(ring, north...)
	return append(ring, west...)
}
