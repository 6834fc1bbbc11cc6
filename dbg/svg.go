package dbg

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/osuushi/heightmesh/internal"
	"github.com/pkg/errors"
)

// WriteSVG writes the mesh outline as an SVG document with one polygon per
// face. SVG y points down, so vertices are flipped back onto raster rows.
func WriteSVG(w io.Writer, points []internal.Vertex, faces []internal.Face) error {
	maxX, maxY := 0.0, 0.0
	for _, p := range points {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	out := bufio.NewWriter(w)
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">`+"\n", maxX, maxY)
	for _, f := range faces {
		fmt.Fprint(out, `  <polygon fill="none" stroke="black" stroke-width="0.1" points="`)
		for i, index := range [3]int{f.A, f.B, f.C} {
			if i > 0 {
				fmt.Fprint(out, " ")
			}
			p := points[index]
			fmt.Fprintf(out, "%g,%g", p.X, maxY-p.Y)
		}
		fmt.Fprint(out, "\"/>\n")
	}
	fmt.Fprint(out, "</svg>\n")
	return errors.Wrap(out.Flush(), "writing svg")
}
