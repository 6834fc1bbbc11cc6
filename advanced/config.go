package advanced

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrHeightFieldTooSmall = errors.New("height field must be at least 2x2 cells")
	ErrBudgetTooSmall      = errors.New("budget is below the 4 point, 2 triangle seed")
	ErrInvalidMaxError     = errors.New("max error must be a non-negative number")
)

// The smallest mesh that can cover a height field: its four corners and two
// triangles.
const (
	SeedPoints    = 4
	SeedTriangles = 2
)

// Stop conditions for refinement. Zero budgets mean unbounded.
type Config struct {
	// Refinement stops once no triangle deviates from the height field by more
	// than this, in height field units.
	MaxError float64 `yaml:"max_error"`

	MaxTriangles int `yaml:"max_triangles"`
	MaxPoints    int `yaml:"max_points"`
}

func (c Config) Validate() error {
	if math.IsNaN(c.MaxError) || c.MaxError < 0 {
		return errors.Wrapf(ErrInvalidMaxError, "max error %v", c.MaxError)
	}
	if c.MaxPoints < 0 || (c.MaxPoints > 0 && c.MaxPoints < SeedPoints) {
		return errors.Wrapf(ErrBudgetTooSmall, "max points %d", c.MaxPoints)
	}
	if c.MaxTriangles < 0 || (c.MaxTriangles > 0 && c.MaxTriangles < SeedTriangles) {
		return errors.Wrapf(ErrBudgetTooSmall, "max triangles %d", c.MaxTriangles)
	}
	return nil
}
