package advanced

import (
	"testing"

	"github.com/osuushi/heightmesh/heightmap"
	"github.com/stretchr/testify/assert"
)

func TestFindCandidate(t *testing.T) {
	a, b, c := Point{X: 0, Y: 0}, Point{X: 4, Y: 0}, Point{X: 0, Y: 4}

	t.Run("plane is unsplittable", func(t *testing.T) {
		plane := heightmap.FromFunc(5, 5, func(x, y int) float64 { return 3*float64(x) - 2*float64(y) + 1 })
		_, err := findCandidate(plane, a, b, c)
		assert.Equal(t, Unsplittable, err)
	})

	t.Run("spike inside", func(t *testing.T) {
		p, err := findCandidate(spikeField(5, 5, 1, 2, -7), a, b, c)
		assert.Equal(t, Point{X: 1, Y: 2}, p)
		assert.Equal(t, 7.0, err)
	})

	t.Run("spike outside is ignored", func(t *testing.T) {
		_, err := findCandidate(spikeField(5, 5, 3, 3, 50), a, b, c)
		assert.Equal(t, Unsplittable, err)
	})

	t.Run("cells on edges count", func(t *testing.T) {
		p, err := findCandidate(spikeField(5, 5, 2, 2, 9), a, b, c)
		assert.Equal(t, Point{X: 2, Y: 2}, p)
		assert.Equal(t, 9.0, err)
	})

	t.Run("corners are never candidates", func(t *testing.T) {
		// A corner far above everything else makes its neighbors the worst
		// cells, but the corner itself is on the plane
		hf := spikeField(5, 5, 0, 0, 1000)
		p, err := findCandidate(hf, a, b, c)
		assert.NotEqual(t, a, p)
		assert.Equal(t, Point{X: 1, Y: 0}, p, "first of the deviating cells in scan order")
		assert.Equal(t, 750.0, err)
	})

	t.Run("ties go to the first cell in scan order", func(t *testing.T) {
		hf := heightmap.New(5, 5)
		hf.Set(2, 1, 10)
		hf.Set(1, 1, 10)
		hf.Set(1, 2, 10)
		p, _ := findCandidate(hf, a, b, c)
		assert.Equal(t, Point{X: 1, Y: 1}, p)
	})

	t.Run("interpolates across the plane", func(t *testing.T) {
		// Corners at 0, 8 and 4, so the plane is z = 2x + y; (1, 1) is 2 above
		hf := heightmap.FromFunc(5, 5, func(x, y int) float64 { return 2*float64(x) + float64(y) })
		hf.Set(1, 1, 5)
		p, err := findCandidate(hf, a, b, c)
		assert.Equal(t, Point{X: 1, Y: 1}, p)
		assert.InDelta(t, 2.0, err, 1e-12)
	})

	t.Run("clockwise or flat triangles are unsplittable", func(t *testing.T) {
		hf := spikeField(5, 5, 1, 1, 10)
		_, err := findCandidate(hf, a, c, b)
		assert.Equal(t, Unsplittable, err)
		_, err = findCandidate(hf, Point{X: 0, Y: 0}, Point{X: 2, Y: 2}, Point{X: 4, Y: 4})
		assert.Equal(t, Unsplittable, err)
	})
}
