package heightmesh

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/osuushi/heightmesh/advanced"
	"github.com/osuushi/heightmesh/heightmap"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	hf := heightmap.FromFunc(5, 5, func(x, y int) float64 {
		if x == 2 && y == 2 {
			return 100
		}
		return 0
	})

	mesh, err := Triangulate(hf, Config{MaxError: 1}, 0.5)
	require.NoError(t, err)
	assert.Len(t, mesh.Points, 9)
	assert.Len(t, mesh.Triangles, 12)
	assert.Zero(t, mesh.Error)
	// Raster (2, 2) is (2, 2) in the flipped frame too
	assert.Contains(t, mesh.Points, Vertex{X: 2, Y: 2, Z: 50})
}

func TestTriangulate_InvalidInput(t *testing.T) {
	_, err := Triangulate(heightmap.New(1, 5), Config{}, 1)
	assert.True(t, errors.Is(err, advanced.ErrHeightFieldTooSmall))

	var missing *heightmap.Grid
	_, err = Triangulate(missing, Config{}, 1)
	assert.True(t, errors.Is(err, advanced.ErrHeightFieldTooSmall))

	_, err = Triangulate(heightmap.New(3, 3), Config{MaxPoints: 3}, 1)
	assert.True(t, errors.Is(err, advanced.ErrBudgetTooSmall))
}

// A height field that lies about its size makes the mesh read out of bounds,
// which is a runtime error and must not be swallowed.
type lyingField struct{}

func (lyingField) Width() int               { return 4 }
func (lyingField) Height() int              { return 4 }
func (lyingField) ValueAt(x, y int) float64 { return []float64{0}[x+y] }

func TestTriangulate_RuntimePanicsPropagate(t *testing.T) {
	assert.Panics(t, func() {
		Triangulate(lyingField{}, Config{}, 1)
	})
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := Triangulate(heightmap.New(3, 3), Config{}, 1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "triangulator seeded")
	assert.Contains(t, buf.String(), "triangulation terminated")
}
