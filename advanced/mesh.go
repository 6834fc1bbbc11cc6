package advanced

import (
	"github.com/osuushi/heightmesh/internal"
)

// The mesh is stored as flat arrays in the style of delaunator. Triangle t
// owns halfedges 3t, 3t+1 and 3t+2; halfedge h runs from triangles[h] to
// triangles[next(h)], and halfedges[h] is the opposite halfedge in the
// neighboring triangle, or -1 on the raster boundary. Every triangle winds
// counterclockwise.
//
// Triangles are never deleted. A split or flip overwrites the slots of the
// triangles it replaces, so every slot below len(triangles)/3 is live.
type mesh struct {
	heightField HeightField

	points     []Point
	triangles  []int
	halfedges  []int
	candidates []Point // triangle id -> best insertion point

	// Every live triangle is either queued with its candidate error, or pending
	// evaluation. Never both.
	queue   *internal.ErrorQueue
	pending []int

	legalizeStack []int
}

const noHalfedge = -1

func next(h int) int {
	if h%3 == 2 {
		return h - 2
	}
	return h + 1
}

// Cover the raster rectangle with two triangles split along the diagonal from
// the origin to the far corner.
func (m *mesh) seed() {
	x1, y1 := m.heightField.Width()-1, m.heightField.Height()-1
	p0 := m.addPoint(Point{X: 0, Y: 0})
	p1 := m.addPoint(Point{X: x1, Y: 0})
	p2 := m.addPoint(Point{X: 0, Y: y1})
	p3 := m.addPoint(Point{X: x1, Y: y1})
	e0 := m.addTriangle(p0, p1, p3, noHalfedge, noHalfedge, noHalfedge, -1)
	m.addTriangle(p0, p3, p2, e0+2, noHalfedge, noHalfedge, -1)
	m.flush()
}

func (m *mesh) addPoint(p Point) int {
	m.points = append(m.points, p)
	return len(m.points) - 1
}

// Write triangle abc with the given opposite halfedges for its edges ab, bc
// and ca, and mark it pending. The triangle goes into the slot owning
// halfedge e, or a new slot when e is negative. Returns the first halfedge of
// the triangle.
func (m *mesh) addTriangle(a, b, c, ab, bc, ca, e int) int {
	if e < 0 {
		e = len(m.triangles)
		m.triangles = append(m.triangles, a, b, c)
		m.halfedges = append(m.halfedges, ab, bc, ca)
		m.candidates = append(m.candidates, Point{})
		m.queue.Grow(len(m.candidates))
	} else {
		m.triangles[e], m.triangles[e+1], m.triangles[e+2] = a, b, c
		m.halfedges[e], m.halfedges[e+1], m.halfedges[e+2] = ab, bc, ca
	}

	for i, opposite := range [3]int{ab, bc, ca} {
		if opposite >= 0 {
			m.halfedges[opposite] = e + i
		}
	}

	m.pending = append(m.pending, e/3)
	return e
}

// Take t out of the queue or the pending list before its slot is overwritten.
func (m *mesh) retire(t int) {
	if m.queue.Remove(t) {
		return
	}
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
	internal.Fatalf("retiring triangle %d, which is neither queued nor pending", t)
}

// Evaluate every pending triangle and queue it.
func (m *mesh) flush() {
	for _, t := range m.pending {
		a, b, c := m.corners(t)
		candidate, err := findCandidate(m.heightField, a, b, c)
		m.candidates[t] = candidate
		m.queue.Push(t, err)
	}
	m.pending = m.pending[:0]
}

func (m *mesh) corners(t int) (a, b, c Point) {
	e := 3 * t
	return m.points[m.triangles[e]], m.points[m.triangles[e+1]], m.points[m.triangles[e+2]]
}

func (m *mesh) numTriangles() int {
	return m.queue.Len() + len(m.pending)
}

// Find the edge of t that p lies on, or -1 when p is strictly inside.
func (m *mesh) edgeContaining(t int, p Point) int {
	for e := 3 * t; e < 3*t+3; e++ {
		a, b := m.points[m.triangles[e]], m.points[m.triangles[next(e)]]
		if internal.Collinear(a, b, p) {
			return e
		}
	}
	return -1
}

// Number of triangles the mesh gains by inserting p into t.
func (m *mesh) splitGrowth(t int, p Point) int {
	if e := m.edgeContaining(t, p); e >= 0 && m.halfedges[e] < 0 {
		return 1
	}
	return 2
}

// Check that p lies inside t or on one of its edges, but not on a corner. A
// split at any other point would leave inverted or flat triangles behind.
func (m *mesh) canSplit(t int, p Point) bool {
	a, b, c := m.corners(t)
	if p == a || p == b || p == c {
		return false
	}
	return internal.Orient(a, b, p) >= 0 &&
		internal.Orient(b, c, p) >= 0 &&
		internal.Orient(c, a, p) >= 0
}

// Insert p into triangle t, which must already be out of the queue, and
// restore the Delaunay condition around it. The new triangles are left pending.
func (m *mesh) split(t int, p Point) {
	if e := m.edgeContaining(t, p); e >= 0 {
		m.splitEdge(e, m.addPoint(p))
		return
	}

	pn := m.addPoint(p)
	e0 := 3 * t
	p0, p1, p2 := m.triangles[e0], m.triangles[e0+1], m.triangles[e0+2]
	h0, h1, h2 := m.halfedges[e0], m.halfedges[e0+1], m.halfedges[e0+2]

	t0 := m.addTriangle(p0, p1, pn, h0, noHalfedge, noHalfedge, e0)
	t1 := m.addTriangle(p1, p2, pn, h1, noHalfedge, t0+1, -1)
	t2 := m.addTriangle(p2, p0, pn, h2, t0+2, t1+1, -1)

	m.legalize(t0)
	m.legalize(t1)
	m.legalize(t2)
}

// Insert point pn on the edge owned by halfedge a, which runs from pr up to
// pl. The triangle on the other side, if any, is split as well.
//
//	        pl                  pl
//	       /|\                /|\
//	      / | \              / | \
//	     /  |  \            /t3 | t2\
//	   p0  a|b  p1   =>   p0----pn----p1
//	     \  |  /            \t0 | t1/
//	      \ | /              \ | /
//	       \|/                \|/
//	        pr                  pr
//
// On the raster boundary there is no b, and only the left half is rebuilt.
func (m *mesh) splitEdge(a, pn int) {
	a0 := a - a%3
	al := a0 + (a+1)%3
	ar := a0 + (a+2)%3
	p0 := m.triangles[ar]
	pr := m.triangles[a]
	pl := m.triangles[al]
	hal := m.halfedges[al]
	har := m.halfedges[ar]

	b := m.halfedges[a]
	if b < 0 {
		t0 := m.addTriangle(pn, p0, pr, noHalfedge, har, noHalfedge, a0)
		t1 := m.addTriangle(p0, pn, pl, t0, noHalfedge, hal, -1)
		m.legalize(t0 + 1)
		m.legalize(t1 + 2)
		return
	}

	b0 := b - b%3
	bl := b0 + (b+2)%3
	br := b0 + (b+1)%3
	p1 := m.triangles[bl]
	hbl := m.halfedges[bl]
	hbr := m.halfedges[br]
	m.retire(b / 3)

	t0 := m.addTriangle(p0, pr, pn, har, noHalfedge, noHalfedge, a0)
	t1 := m.addTriangle(pr, p1, pn, hbr, noHalfedge, t0+1, b0)
	t2 := m.addTriangle(p1, pl, pn, hbl, noHalfedge, t1+1, -1)
	t3 := m.addTriangle(pl, p0, pn, hal, t0+2, t2+1, -1)

	m.legalize(t0)
	m.legalize(t1)
	m.legalize(t2)
	m.legalize(t3)
}

// Flip edges until every edge reachable from halfedge start satisfies the
// Delaunay condition.
//
//	       pl                    pl
//	      /||\                  /  \
//	   al/ || \bl              /    \
//	    /  ||  \              /  t0  \
//	   /  a||b  \    flip    /        \
//	 p0\   ||   /p1   =>   p0----------p1
//	    \  ||  /              \  t1    /
//	   ar\ || /br              \      /
//	      \||/                  \  /
//	       pr                    pr
//
// A work list stands in for recursion, and visits edges in the same order the
// recursive version would.
func (m *mesh) legalize(start int) {
	stack := append(m.legalizeStack[:0], start)
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b := m.halfedges[a]
		if b < 0 {
			continue
		}

		a0 := a - a%3
		b0 := b - b%3
		al := a0 + (a+1)%3
		ar := a0 + (a+2)%3
		bl := b0 + (b+2)%3
		br := b0 + (b+1)%3

		p0 := m.triangles[ar]
		pr := m.triangles[a]
		pl := m.triangles[al]
		p1 := m.triangles[bl]

		P0, Pr, Pl, P1 := m.points[p0], m.points[pr], m.points[pl], m.points[p1]
		if internal.InCircle(Pr, Pl, P0, P1) <= 0 {
			continue
		}
		// A point strictly inside the circumcircle and across the edge makes
		// the quad strictly convex, so this only trips on a neighbor that is
		// already folded over the edge. Flipping it would fold the mesh further.
		if !internal.IsCCW(P0, P1, Pl) || !internal.IsCCW(P1, P0, Pr) {
			continue
		}

		hal := m.halfedges[al]
		har := m.halfedges[ar]
		hbl := m.halfedges[bl]
		hbr := m.halfedges[br]

		m.retire(a / 3)
		m.retire(b / 3)

		t0 := m.addTriangle(p0, p1, pl, noHalfedge, hbl, hal, a0)
		t1 := m.addTriangle(p1, p0, pr, t0, har, hbr, b0)

		stack = append(stack, t1+2, t0+1)
	}
	m.legalizeStack = stack
}
