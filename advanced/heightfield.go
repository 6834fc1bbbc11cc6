package advanced

import (
	"reflect"

	"github.com/osuushi/heightmesh/internal"
	"github.com/pkg/errors"
)

// HeightField is the raster being approximated. Implementations must be safe
// to read from several goroutines at once; the triangulator never writes to
// it, so one height field can back any number of triangulators.
type HeightField interface {
	Width() int
	Height() int
	// Elevation at integer grid coordinate (x, y), 0 <= x < Width(),
	// 0 <= y < Height().
	ValueAt(x, y int) float64
}

type (
	Point  = internal.Point
	Vertex = internal.Vertex
	Face   = internal.Face
)

func checkHeightField(hf HeightField) error {
	if hf == nil || isNilPointer(hf) {
		return errors.Wrap(ErrHeightFieldTooSmall, "nil height field")
	}
	if w, h := hf.Width(), hf.Height(); w < 2 || h < 2 {
		return errors.Wrapf(ErrHeightFieldTooSmall, "got %dx%d", w, h)
	}
	return nil
}

// A typed nil, like a nil *heightmap.Grid, is a non-nil interface that panics
// on the first method call.
func isNilPointer(hf HeightField) bool {
	v := reflect.ValueOf(hf)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
