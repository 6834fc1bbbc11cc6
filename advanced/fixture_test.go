package advanced

import (
	"math"
	"math/rand"
	"testing"

	"github.com/osuushi/heightmesh/heightmap"
	"github.com/stretchr/testify/require"
)

// Height fields shared by the tests in this package.

// Flat zero field with one spike.
func spikeField(width, height, x, y int, value float64) *heightmap.Grid {
	g := heightmap.New(width, height)
	g.Set(x, y, value)
	return g
}

// Square pyramid peaking at 100 in the middle of a 17x17 field.
func pyramidField() *heightmap.Grid {
	return heightmap.FromFunc(17, 17, func(x, y int) float64 {
		return 100 - 5*math.Max(math.Abs(float64(x-8)), math.Abs(float64(y-8)))
	})
}

// Paraboloid with its low point between the four middle cells.
func bowlField() *heightmap.Grid {
	return heightmap.FromFunc(16, 16, func(x, y int) float64 {
		dx, dy := float64(x)-7.5, float64(y)-7.5
		return dx*dx + dy*dy
	})
}

// Noise in [0, 255], the worst case for the refinement.
func randomField(width, height int, seed int64) *heightmap.Grid {
	r := rand.New(rand.NewSource(seed))
	return heightmap.FromFunc(width, height, func(x, y int) float64 {
		return float64(r.Intn(256))
	})
}

func newTriangulator(t *testing.T, hf HeightField, config Config) *Triangulator {
	t.Helper()
	tri, err := New(hf, config)
	require.NoError(t, err)
	assertValidMesh(t, tri)
	return tri
}

func assertValidMesh(t *testing.T, tri *Triangulator) {
	t.Helper()
	require.NoError(t, tri.Validate())
}

// Run to termination, checking the mesh after every step.
func runValidated(t *testing.T, tri *Triangulator) int {
	t.Helper()
	steps := 0
	for tri.RunStep() {
		steps++
		assertValidMesh(t, tri)
	}
	assertValidMesh(t, tri)
	return steps
}
