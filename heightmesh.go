// Converts height maps into sparse triangle meshes.
//
// The mesh is refined greedily: starting from two triangles covering the
// raster, the point that deviates the most from the mesh is inserted, and the
// mesh is kept Delaunay, until no point deviates by more than the requested
// error. Flat regions end up with a few large triangles and detailed regions
// with many small ones.
//
// For step by step control (undo, budgets changed between runs, invariant
// checks), use the advanced package directly.
package heightmesh

import (
	"log/slog"

	"github.com/osuushi/heightmesh/advanced"
	"github.com/osuushi/heightmesh/internal"
)

type HeightField = advanced.HeightField
type Config = advanced.Config
type Vertex = advanced.Vertex
type Face = advanced.Face

// Mesh is the output of Triangulate.
type Mesh struct {
	Points    []Vertex
	Triangles []Face
	// Worst remaining deviation of the mesh from the height field
	Error float64
}

// Triangulate refines a mesh for hf until it satisfies config, and returns it
// with elevations multiplied by zScale.
func Triangulate(hf HeightField, config Config, zScale float64) (result *Mesh, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	t, err := advanced.New(hf, config)
	if err != nil {
		return nil, err
	}
	t.Run()
	return &Mesh{
		Points:    t.Points(zScale),
		Triangles: t.Triangles(),
		Error:     t.MaxDeviation(),
	}, nil
}

// SetLogger sets the logger used by every package of the module. Refinement
// logs at debug level only; pass nil to silence it again.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
