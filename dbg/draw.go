package dbg

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/heightmesh/internal"
	"github.com/pkg/errors"
)

// Padding around the mesh so boundary edges aren't clipped
const dbgDrawPadding = 10

// Draw a mesh seen from above. Faces are shaded by their mean elevation, from
// black at the lowest to white at the highest, and outlined in green.
func DrawMesh(points []internal.Vertex, faces []internal.Face, scale float64) *gg.Context {
	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		minZ = math.Min(minZ, p.Z)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
		maxZ = math.Max(maxZ, p.Z)
	}
	if len(points) == 0 {
		minX, minY, minZ, maxX, maxY, maxZ = 0, 0, 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, matching the y-up
	// frame of the vertices
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	zRange := maxZ - minZ
	for _, f := range faces {
		a, b, cc := points[f.A], points[f.B], points[f.C]
		shade := 0.5
		if zRange > 0 {
			shade = ((a.Z+b.Z+cc.Z)/3 - minZ) / zRange
		}
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
		c.SetRGB(shade, shade, shade)
		c.FillPreserve()
		c.SetRGBA(0, 1, 0, 0.8)
		// Line width is in user space, so undo the scale to keep it at one pixel
		c.SetLineWidth(1 / scale)
		c.Stroke()
	}
	return c
}

func SavePNG(path string, points []internal.Vertex, faces []internal.Face, scale float64) error {
	c := DrawMesh(points, faces, scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving mesh drawing to %s", path)
	}
	return nil
}

// Helper to draw and print a mesh in the terminal (iTerm only) for debugging.
func Imgcat(points []internal.Vertex, faces []internal.Face, scale float64) error {
	path := filepath.Join(os.TempDir(), "heightmesh.png")
	if err := SavePNG(path, points, faces, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
