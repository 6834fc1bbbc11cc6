package heightmap

import (
	"math"
)

// Stretch the elevations to cover [0, 1]. A flat grid is left alone.
func (g *Grid) AutoLevel() {
	lo, hi := g.MinMax()
	if hi <= lo {
		return
	}
	scale := 1 / (hi - lo)
	for i, v := range g.values {
		g.values[i] = (v - lo) * scale
	}
}

// Flip a [0, 1] grid upside down.
func (g *Grid) Invert() {
	for i, v := range g.values {
		g.values[i] = 1 - v
	}
}

// Raise every elevation to the power gamma. Values should be in [0, 1].
func (g *Grid) GammaCurve(gamma float64) {
	for i, v := range g.values {
		g.values[i] = math.Pow(v, gamma)
	}
}

// Blur with a Gaussian kernel of standard deviation sigma, as two separable
// passes. Cells past the edge repeat the edge value.
func (g *Grid) GaussianBlur(sigma float64) {
	if sigma <= 0 || len(g.values) == 0 {
		return
	}
	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	tmp := make([]float64, len(g.values))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			var sum float64
			for i, k := range kernel {
				sum += k * g.at(x+i-radius, y)
			}
			tmp[y*g.width+x] = sum
		}
	}
	horizontal := &Grid{g.width, g.height, tmp}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			var sum float64
			for i, k := range kernel {
				sum += k * horizontal.at(x, y+i-radius)
			}
			g.values[y*g.width+x] = sum
		}
	}
}

// Normalized kernel reaching out to three standard deviations.
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)
	var total float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		total += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= total
	}
	return kernel
}

// AddBorder returns a copy of the grid surrounded by size cells of the given
// elevation on every side.
func (g *Grid) AddBorder(size int, elevation float64) *Grid {
	if size <= 0 {
		return g.Clone()
	}
	result := FromFunc(g.width+2*size, g.height+2*size, func(x, y int) float64 {
		return elevation
	})
	for y := 0; y < g.height; y++ {
		copy(result.values[(y+size)*result.width+size:], g.values[y*g.width:(y+1)*g.width])
	}
	return result
}
