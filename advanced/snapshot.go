package advanced

import "github.com/osuushi/heightmesh/internal"

// A snapshot is a full copy of the triangulator state from just before the
// last step. The buffers are reused between steps, so taking one only
// allocates while the mesh is still growing.
type snapshot struct {
	valid bool

	points     []Point
	triangles  []int
	halfedges  []int
	candidates []Point
	queue      internal.ErrorQueue
	pending    []int

	state State
	steps int
}

func (s *snapshot) take(t *Triangulator) {
	m := &t.mesh
	s.points = append(s.points[:0], m.points...)
	s.triangles = append(s.triangles[:0], m.triangles...)
	s.halfedges = append(s.halfedges[:0], m.halfedges...)
	s.candidates = append(s.candidates[:0], m.candidates...)
	s.queue.CopyFrom(m.queue)
	s.pending = append(s.pending[:0], m.pending...)
	s.state = t.state
	s.steps = t.steps
	s.valid = true
}

// Put the snapshot back into t. The current state is swapped into the
// snapshot's buffers rather than thrown away, and the snapshot is spent.
func (s *snapshot) restore(t *Triangulator) bool {
	if !s.valid {
		return false
	}
	m := &t.mesh
	m.points, s.points = s.points, m.points
	m.triangles, s.triangles = s.triangles, m.triangles
	m.halfedges, s.halfedges = s.halfedges, m.halfedges
	m.candidates, s.candidates = s.candidates, m.candidates
	*m.queue, s.queue = s.queue, *m.queue
	m.pending, s.pending = s.pending, m.pending
	t.state = s.state
	t.steps = s.steps
	s.valid = false
	return true
}

func (s *snapshot) clear() {
	s.valid = false
}
