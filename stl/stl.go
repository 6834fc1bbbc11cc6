// Package stl writes triangle meshes as binary STL, and closes terrain meshes
// into solids that can be printed.
package stl

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/osuushi/heightmesh/internal"
	"github.com/pkg/errors"
)

const headerSize = 80

// WriteBinary writes faces as a binary STL: an 80 byte header, a little endian
// uint32 face count, then per face a normal and three corners as float32
// triples followed by an unused uint16. Faces must be counterclockwise seen
// from outside the solid.
func WriteBinary(w io.Writer, points []internal.Vertex, faces []internal.Face) error {
	out := bufio.NewWriter(w)

	var header [headerSize]byte
	copy(header[:], "heightmesh")
	if _, err := out.Write(header[:]); err != nil {
		return errors.Wrap(err, "writing stl header")
	}
	if err := binary.Write(out, binary.LittleEndian, uint32(len(faces))); err != nil {
		return errors.Wrap(err, "writing stl face count")
	}

	var record [12]float32
	for _, f := range faces {
		a, b, c := points[f.A], points[f.B], points[f.C]
		n := normal(a, b, c)
		record = [12]float32{
			float32(n.X), float32(n.Y), float32(n.Z),
			float32(a.X), float32(a.Y), float32(a.Z),
			float32(b.X), float32(b.Y), float32(b.Z),
			float32(c.X), float32(c.Y), float32(c.Z),
		}
		if err := binary.Write(out, binary.LittleEndian, record); err != nil {
			return errors.Wrap(err, "writing stl face")
		}
		if err := binary.Write(out, binary.LittleEndian, uint16(0)); err != nil {
			return errors.Wrap(err, "writing stl face")
		}
	}
	return errors.Wrap(out.Flush(), "writing stl")
}

// Save writes a binary STL file at path.
func Save(path string, points []internal.Vertex, faces []internal.Face) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating stl file")
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = errors.Wrap(closeErr, "closing stl file")
		}
	}()
	return WriteBinary(file, points, faces)
}

// Unit normal of the counterclockwise triangle abc, or zero for a degenerate
// one.
func normal(a, b, c internal.Vertex) internal.Vertex {
	ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	n := internal.Vertex{
		X: uy*vz - uz*vy,
		Y: uz*vx - ux*vz,
		Z: ux*vy - uy*vx,
	}
	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if length == 0 {
		return internal.Vertex{}
	}
	return internal.Vertex{X: n.X / length, Y: n.Y / length, Z: n.Z / length}
}
