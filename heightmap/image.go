package heightmap

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrEmptyImage = errors.New("image has no pixels")

// Load decodes an image file into a grid of elevations in [0, 1], black being
// 0. PNG, JPEG, GIF, BMP, TIFF and WebP are understood. 16-bit grayscale keeps
// its full precision.
func Load(path string) (*Grid, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading height map %s", path)
	}
	g := FromImage(img)
	if g.width == 0 || g.height == 0 {
		return nil, errors.Wrapf(ErrEmptyImage, "loading height map %s", path)
	}
	return g, nil
}

// FromImage converts img to grayscale elevations in [0, 1].
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			g.values[y*g.width+x] = float64(c.Y) / 0xffff
		}
	}
	return g
}

// Image renders the grid as 16-bit grayscale, clamping elevations to [0, 1].
func (g *Grid) Image() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: uint16(clamp01(g.ValueAt(x, y))*0xffff + 0.5)})
		}
	}
	return img
}

func (g *Grid) SavePNG(path string) error {
	return errors.Wrapf(gg.SavePNG(path, g.Image()), "saving height map %s", path)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
