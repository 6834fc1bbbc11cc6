package heightmap

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImage(t *testing.T) {
	img := image.NewGray(image.Rect(5, 5, 8, 7))
	img.SetGray(5, 5, color.Gray{Y: 0})
	img.SetGray(6, 5, color.Gray{Y: 255})
	img.SetGray(7, 6, color.Gray{Y: 51})

	g := FromImage(img)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	assert.Equal(t, 0.0, g.ValueAt(0, 0))
	assert.Equal(t, 1.0, g.ValueAt(1, 0))
	assert.InDelta(t, 0.2, g.ValueAt(2, 1), 1e-9)
}

func TestFromImage_Gray16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 1))
	img.SetGray16(1, 0, color.Gray16{Y: 1})
	g := FromImage(img)
	assert.Equal(t, 1.0/0xffff, g.ValueAt(1, 0), "16-bit precision is kept")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	original := FromFunc(4, 3, func(x, y int) float64 { return float64(x+y) / 5 })
	path := filepath.Join(dir, "height.png")
	require.NoError(t, original.SavePNG(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, loaded.Width())
	require.Equal(t, 3, loaded.Height())
	for i, v := range original.Values() {
		assert.InDelta(t, v, loaded.Values()[i], 1.0/0xffff)
	}

	t.Run("8-bit png", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 2, 2))
		img.SetGray(1, 1, color.Gray{Y: 255})
		path := filepath.Join(dir, "gray8.png")
		require.NoError(t, gg.SavePNG(path, img))
		g, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0, 1}, g.Values())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.png"))
		assert.Error(t, err)
	})
}
