package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient(t *testing.T) {
	a, b, c := Point{0, 0}, Point{4, 0}, Point{0, 3}
	assert.Equal(t, int64(12), Orient(a, b, c))
	assert.Equal(t, int64(-12), Orient(a, c, b))
	assert.True(t, IsCCW(a, b, c))
	assert.False(t, IsCCW(c, b, a))

	// Rotating the triple doesn't change the sign
	assert.Equal(t, Orient(a, b, c), Orient(b, c, a))
	assert.Equal(t, Orient(a, b, c), Orient(c, a, b))

	assert.True(t, Collinear(Point{0, 0}, Point{2, 2}, Point{5, 5}))
	assert.True(t, Collinear(Point{1, 1}, Point{1, 1}, Point{3, 7}), "coincident points are collinear")
	assert.False(t, Collinear(Point{0, 0}, Point{2, 2}, Point{5, 4}))
}

func TestInCircle(t *testing.T) {
	// Unit-ish square corners; the circumcircle of the CCW triangle a, b, c
	// passes through all four corners of the square
	a, b, c := Point{0, 0}, Point{2, 0}, Point{2, 2}

	cases := []struct {
		name     string
		d        Point
		expected int
	}{
		{"center is inside", Point{1, 1}, 1},
		{"fourth corner is cocircular", Point{0, 2}, 0},
		{"far point is outside", Point{5, 5}, -1},
		{"point near an edge but outside", Point{-1, 1}, -1},
	}
	for _, c2 := range cases {
		t.Run(c2.name, func(t *testing.T) {
			got := InCircle(a, b, c, c2.d)
			switch c2.expected {
			case 1:
				assert.Positive(t, got)
			case 0:
				assert.Zero(t, got)
			default:
				assert.Negative(t, got)
			}
		})
	}

	t.Run("large raster coordinates don't overflow", func(t *testing.T) {
		const n = 1 << 15
		got := InCircle(Point{0, 0}, Point{n, 0}, Point{n, n}, Point{n / 2, n / 2})
		assert.Positive(t, got)
	})
}

func TestBounds(t *testing.T) {
	min, max := Bounds(Point{3, 9}, Point{-1, 4}, Point{7, 5})
	assert.Equal(t, Point{-1, 4}, min)
	assert.Equal(t, Point{7, 9}, max)
}
