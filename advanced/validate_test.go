package advanced

import (
	"testing"

	"github.com/osuushi/heightmesh/heightmap"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	fresh := func(t *testing.T) *Triangulator {
		tri := newTriangulator(t, spikeField(7, 5, 3, 2, 10), Config{})
		require.True(t, tri.RunStep())
		require.NoError(t, tri.Validate())
		return tri
	}

	cases := []struct {
		name    string
		corrupt func(tri *Triangulator)
	}{
		{"asymmetric twins", func(tri *Triangulator) {
			for _, o := range tri.halfedges {
				if o >= 0 {
					tri.halfedges[o] = noHalfedge
					return
				}
			}
		}},
		{"missing halfedge", func(tri *Triangulator) {
			tri.halfedges = tri.halfedges[:len(tri.halfedges)-1]
		}},
		{"triangle neither queued nor pending", func(tri *Triangulator) {
			tri.queue.Remove(0)
		}},
		{"triangle queued and pending", func(tri *Triangulator) {
			tri.pending = append(tri.pending, 1)
		}},
		{"inverted triangle", func(tri *Triangulator) {
			tri.triangles[0], tri.triangles[1] = tri.triangles[1], tri.triangles[0]
		}},
		{"moved point", func(tri *Triangulator) {
			tri.points[4] = Point{X: -1, Y: 2}
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tri := fresh(t)
			c.corrupt(tri)
			err := tri.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMesh))
		})
	}
}

func TestValidate_NotDelaunay(t *testing.T) {
	tri := newTriangulator(t, heightmap.New(9, 9), Config{})
	m := &tri.mesh
	// Split off a point near the diagonal without legalizing
	m.queue.Pop()
	pn := m.addPoint(Point{X: 7, Y: 6})
	e0 := 0
	p0, p1, p2 := m.triangles[e0], m.triangles[e0+1], m.triangles[e0+2]
	h0, h1, h2 := m.halfedges[e0], m.halfedges[e0+1], m.halfedges[e0+2]
	t0 := m.addTriangle(p0, p1, pn, h0, noHalfedge, noHalfedge, e0)
	t1 := m.addTriangle(p1, p2, pn, h1, noHalfedge, t0+1, -1)
	t2 := m.addTriangle(p2, p0, pn, h2, t0+2, t1+1, -1)
	m.flush()

	err := tri.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not locally Delaunay")

	// Legalizing the edge across the diagonal repairs it
	m.legalize(t2)
	m.flush()
	assert.NoError(t, tri.Validate())
}
