// Command heightmesh converts a height map image into a binary STL terrain
// mesh, optionally with a solid base, and prints statistics about the result.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/heightmesh"
	"github.com/osuushi/heightmesh/dbg"
	"github.com/osuushi/heightmesh/heightmap"
	"github.com/osuushi/heightmesh/stl"
	"github.com/pkg/errors"
)

func main() {
	opts, err := ParseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	if opts.Verbose {
		heightmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, aurora.NewAurora(opts.Color).Red(err))
		os.Exit(1)
	}
}

// Stats about one triangulation, as printed at the end of a run.
type Stats struct {
	Width, Height int
	Points        int
	Triangles     int
	Error         float64
}

// Triangle count as a percentage of the full-resolution grid mesh, two
// triangles per cell.
func (s Stats) VsNaive() float64 {
	naive := (s.Width - 1) * (s.Height - 1) * 2
	if naive <= 0 {
		return 0
	}
	return 100 * float64(s.Triangles) / float64(naive)
}

func run(opts Options, out io.Writer) error {
	au := aurora.NewAurora(opts.Color)
	start := time.Now()

	// Print what's happening, and return a function to print how long it took
	timed := func(message string) func() {
		fmt.Fprintf(out, "%s... ", message)
		stepStart := time.Now()
		return func() {
			fmt.Fprintf(out, "%s\n", au.Faint(time.Since(stepStart).Round(time.Microsecond)))
		}
	}

	done := timed("loading heightmap")
	grid, err := heightmap.Load(opts.Input)
	if err != nil {
		return err
	}
	done()
	w, h := grid.Width(), grid.Height()
	fmt.Fprintf(out, "  %d x %d = %d pixels\n", w, h, w*h)

	if opts.Level {
		grid.AutoLevel()
	}
	if opts.Invert {
		grid.Invert()
	}
	if opts.Blur > 0 {
		done = timed("blurring heightmap")
		grid.GaussianBlur(opts.Blur)
		done()
	}
	if opts.Gamma > 0 {
		grid.GammaCurve(opts.Gamma)
	}
	if opts.BorderSize > 0 {
		grid = grid.AddBorder(opts.BorderSize, opts.BorderHeight)
	}
	w, h = grid.Width(), grid.Height()

	zScale := opts.ZScale * opts.Exaggeration
	done = timed("triangulating")
	mesh, err := heightmesh.Triangulate(grid, opts.Config(), zScale)
	if err != nil {
		return errors.Wrap(err, "triangulating")
	}
	done()
	stats := Stats{Width: w, Height: h, Points: len(mesh.Points), Triangles: len(mesh.Triangles), Error: mesh.Error}

	points, faces := mesh.Points, mesh.Triangles
	if opts.Base > 0 {
		done = timed("adding solid base")
		points, faces = stl.AddBase(points, faces, w, h, -opts.Base*zScale)
		done()
	}

	fmt.Fprintf(out, "  error = %g\n", au.Cyan(stats.Error))
	fmt.Fprintf(out, "  points = %d\n", au.Cyan(stats.Points))
	fmt.Fprintf(out, "  triangles = %d\n", au.Cyan(stats.Triangles))
	fmt.Fprintf(out, "  vs. naive = %.3g%%\n", au.Cyan(stats.VsNaive()))

	done = timed("writing output")
	if err := stl.Save(opts.Output, points, faces); err != nil {
		return err
	}
	done()

	if opts.NormalMap != "" {
		done = timed("computing normal map")
		if err := grid.SaveNormalMap(opts.NormalMap, zScale); err != nil {
			return err
		}
		done()
	}
	if opts.Hillshade != "" {
		done = timed("computing hillshade image")
		if err := grid.SaveHillshade(opts.Hillshade, zScale, opts.ShadeAltitude, opts.ShadeAzimuth); err != nil {
			return err
		}
		done()
	}

	if err := drawMesh(opts, mesh); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", au.Bold(time.Since(start).Round(time.Microsecond)))
	return nil
}

// Debug drawings of the mesh, seen from above. The drawing is scaled so the
// longer side is about 1000 pixels.
func drawMesh(opts Options, mesh *heightmesh.Mesh) error {
	if opts.PNG == "" && opts.SVG == "" && !opts.Imgcat {
		return nil
	}
	var maxX, maxY float64
	for _, p := range mesh.Points {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	scale := 1.0
	if longest := math.Max(maxX, maxY); longest > 0 {
		scale = 1000 / longest
	}

	if opts.PNG != "" {
		if err := dbg.SavePNG(opts.PNG, mesh.Points, mesh.Triangles, scale); err != nil {
			return err
		}
	}
	if opts.SVG != "" {
		file, err := os.Create(opts.SVG)
		if err != nil {
			return errors.Wrap(err, "creating svg file")
		}
		defer file.Close()
		if err := dbg.WriteSVG(file, mesh.Points, mesh.Triangles); err != nil {
			return err
		}
	}
	if opts.Imgcat {
		return dbg.Imgcat(mesh.Points, mesh.Triangles, scale)
	}
	return nil
}
