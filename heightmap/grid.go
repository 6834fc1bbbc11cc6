// Package heightmap holds elevation rasters and the filters that prepare them
// for triangulation.
package heightmap

import (
	"github.com/pkg/errors"
)

var ErrSizeMismatch = errors.New("values do not match grid size")

// Grid is a dense raster of elevations in row-major order. It implements
// advanced.HeightField. Filters mutate the grid in place and must not run
// while a triangulator is reading it; concurrent reads are fine.
type Grid struct {
	width, height int
	values        []float64
}

func New(width, height int) *Grid {
	return &Grid{width, height, make([]float64, width*height)}
}

func FromFunc(width, height int, f func(x, y int) float64) *Grid {
	g := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.values[y*width+x] = f(x, y)
		}
	}
	return g
}

// FromValues wraps values, which must hold exactly width*height elevations in
// row-major order. The slice is not copied.
func FromValues(width, height int, values []float64) (*Grid, error) {
	if width < 0 || height < 0 || len(values) != width*height {
		return nil, errors.Wrapf(ErrSizeMismatch, "%d values for %dx%d", len(values), width, height)
	}
	return &Grid{width, height, values}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) ValueAt(x, y int) float64 {
	return g.values[y*g.width+x]
}

func (g *Grid) Set(x, y int, v float64) {
	g.values[y*g.width+x] = v
}

// Values returns the backing slice, in row-major order.
func (g *Grid) Values() []float64 {
	return g.values
}

func (g *Grid) Clone() *Grid {
	values := make([]float64, len(g.values))
	copy(values, g.values)
	return &Grid{g.width, g.height, values}
}

// Lowest and highest elevation. Both are 0 for an empty grid.
func (g *Grid) MinMax() (lo, hi float64) {
	if len(g.values) == 0 {
		return 0, 0
	}
	lo, hi = g.values[0], g.values[0]
	for _, v := range g.values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Clamped lookup, for filters that read past the edges.
func (g *Grid) at(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= g.width {
		x = g.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.height {
		y = g.height - 1
	}
	return g.values[y*g.width+x]
}
