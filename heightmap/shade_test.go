package heightmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormal(t *testing.T) {
	flat := New(3, 3)
	nx, ny, nz := flat.Normal(1, 1, 10)
	assert.Equal(t, [3]float64{0, 0, 1}, [3]float64{nx, ny, nz})

	// Rising to the right at 45 degrees
	ramp := FromFunc(3, 3, func(x, y int) float64 { return float64(x) })
	nx, ny, nz = ramp.Normal(1, 1, 1)
	assert.InDelta(t, -0.7071, nx, 1e-4)
	assert.Zero(t, ny)
	assert.InDelta(t, 0.7071, nz, 1e-4)
}

func TestNormalMap(t *testing.T) {
	img := New(2, 2).NormalMap(1)
	c := img.NRGBAAt(0, 0)
	assert.Equal(t, uint8(128), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestHillshade(t *testing.T) {
	flat := New(2, 2)
	assert.Equal(t, uint8(255), flat.Hillshade(1, 90, 0).GrayAt(0, 0).Y, "sun overhead")
	assert.Equal(t, uint8(180), flat.Hillshade(1, 45, 0).GrayAt(1, 1).Y)

	// A slope rising towards the bottom of the image faces the top, so a sun
	// at azimuth 0 lights it more than one at 180
	slope := FromFunc(3, 3, func(x, y int) float64 { return float64(y) })
	north := slope.Hillshade(1, 45, 0).GrayAt(1, 1).Y
	south := slope.Hillshade(1, 45, 180).GrayAt(1, 1).Y
	assert.Greater(t, north, south)
}
