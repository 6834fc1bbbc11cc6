package advanced

import (
	"github.com/osuushi/heightmesh/internal"
	"github.com/pkg/errors"
)

var ErrInvalidMesh = errors.New("invalid mesh")

// Validate checks every structural invariant of the mesh, and returns an error
// describing the first violation found. It is O(n) in the number of halfedges
// and is meant for tests and debugging, not for use between every step of a
// production run.
func (t *Triangulator) Validate() error {
	m := &t.mesh
	if len(m.triangles) != len(m.halfedges) {
		return errors.Wrapf(ErrInvalidMesh, "%d triangle corners but %d halfedges", len(m.triangles), len(m.halfedges))
	}
	if len(m.triangles)%3 != 0 {
		return errors.Wrapf(ErrInvalidMesh, "triangle array length %d is not a multiple of 3", len(m.triangles))
	}
	numSlots := len(m.triangles) / 3
	if len(m.candidates) != numSlots {
		return errors.Wrapf(ErrInvalidMesh, "%d candidates for %d triangles", len(m.candidates), numSlots)
	}

	for h, o := range m.halfedges {
		if o == noHalfedge {
			continue
		}
		if o < 0 || o >= len(m.halfedges) {
			return errors.Wrapf(ErrInvalidMesh, "halfedge %d has opposite %d out of range", h, o)
		}
		if m.halfedges[o] != h {
			return errors.Wrapf(ErrInvalidMesh, "halfedge %d has opposite %d, whose opposite is %d", h, o, m.halfedges[o])
		}
		if m.triangles[h] != m.triangles[next(o)] || m.triangles[next(h)] != m.triangles[o] {
			return errors.Wrapf(ErrInvalidMesh, "halfedges %d and %d do not share endpoints", h, o)
		}
	}

	// Every live triangle is queued or pending, exactly once
	seen := make([]bool, numSlots)
	for _, id := range m.queue.Items() {
		if id >= numSlots {
			return errors.Wrapf(ErrInvalidMesh, "queued triangle %d does not exist", id)
		}
		seen[id] = true
	}
	for _, id := range m.pending {
		if id < 0 || id >= numSlots {
			return errors.Wrapf(ErrInvalidMesh, "pending triangle %d does not exist", id)
		}
		if seen[id] {
			return errors.Wrapf(ErrInvalidMesh, "triangle %d is both queued and pending, or pending twice", id)
		}
		seen[id] = true
	}
	for id, ok := range seen {
		if !ok {
			return errors.Wrapf(ErrInvalidMesh, "triangle %d is neither queued nor pending", id)
		}
	}
	if !m.queue.Valid() {
		return errors.Wrap(ErrInvalidMesh, "error queue is not a heap")
	}

	var area int64
	for id := 0; id < numSlots; id++ {
		a, b, c := m.corners(id)
		orientation := internal.Orient(a, b, c)
		if orientation <= 0 {
			return errors.Wrapf(ErrInvalidMesh, "triangle %d (%v %v %v) is not counterclockwise", id, a, b, c)
		}
		area += orientation
	}
	w, h := int64(m.heightField.Width()-1), int64(m.heightField.Height()-1)
	if area != 2*w*h {
		return errors.Wrapf(ErrInvalidMesh, "triangles cover twice-area %d, raster is %d", area, 2*w*h)
	}

	for a, b := range m.halfedges {
		if b < 0 {
			continue
		}
		a0 := a - a%3
		b0 := b - b%3
		p0 := m.points[m.triangles[a0+(a+2)%3]]
		pr := m.points[m.triangles[a]]
		pl := m.points[m.triangles[a0+(a+1)%3]]
		p1 := m.points[m.triangles[b0+(b+2)%3]]
		if internal.InCircle(pr, pl, p0, p1) > 0 {
			return errors.Wrapf(ErrInvalidMesh, "edge %v-%v is not locally Delaunay", pr, pl)
		}
	}
	return nil
}
