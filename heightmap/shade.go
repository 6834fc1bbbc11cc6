package heightmap

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Surface normal at a cell, from central differences of its neighbors. The
// frame is the raster's: x right, y down, z up, with elevations multiplied by
// zScale.
func (g *Grid) Normal(x, y int, zScale float64) (nx, ny, nz float64) {
	dzdx := (g.at(x+1, y) - g.at(x-1, y)) * zScale / 2
	dzdy := (g.at(x, y+1) - g.at(x, y-1)) * zScale / 2
	nx, ny, nz = -dzdx, -dzdy, 1
	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	return nx / length, ny / length, nz / length
}

// NormalMap encodes the surface normal of every cell as a color, mapping each
// component from [-1, 1] to [0, 255]. Green points down the raster, so a
// slope rising towards the bottom of the image shows up less green.
func (g *Grid) NormalMap(zScale float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			nx, ny, nz := g.Normal(x, y, zScale)
			img.SetNRGBA(x, y, color.NRGBA{
				R: unitToByte(nx),
				G: unitToByte(ny),
				B: unitToByte(nz),
				A: 0xff,
			})
		}
	}
	return img
}

// Hillshade lights the surface from a sun at altitude degrees above the
// horizon and azimuth degrees clockwise from the top of the image.
func (g *Grid) Hillshade(zScale, altitude, azimuth float64) *image.Gray {
	alt := altitude * math.Pi / 180
	az := azimuth * math.Pi / 180
	lx := math.Cos(alt) * math.Sin(az)
	ly := -math.Cos(alt) * math.Cos(az)
	lz := math.Sin(alt)

	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			nx, ny, nz := g.Normal(x, y, zScale)
			d := math.Max(0, nx*lx+ny*ly+nz*lz)
			img.SetGray(x, y, color.Gray{Y: uint8(math.Round(d * 255))})
		}
	}
	return img
}

func (g *Grid) SaveNormalMap(path string, zScale float64) error {
	return errors.Wrapf(gg.SavePNG(path, g.NormalMap(zScale)), "saving normal map %s", path)
}

func (g *Grid) SaveHillshade(path string, zScale, altitude, azimuth float64) error {
	return errors.Wrapf(gg.SavePNG(path, g.Hillshade(zScale, altitude, azimuth)), "saving hillshade %s", path)
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round((v + 1) / 2 * 255))
}
