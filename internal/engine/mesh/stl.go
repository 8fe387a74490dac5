package mesh

import (
	"encoding/binary"
	"io"
	"math"

	"cad-engine/internal/engine/walls"
)

// ============================================================
// STL Writer
// ============================================================

// WriteSTL serializes triangles as binary STL: an 80-byte header, the
// triangle count, then one 50-byte record per face with its computed
// normal vector.
func WriteSTL(w io.Writer, tris []Triangle) error {
	var header [80]byte
	copy(header[:], "cad-engine binary STL")
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return err
	}

	for _, t := range tris {
		n := normal(t)
		record := [12]float32{
			float32(n.X), float32(n.Y), float32(n.Z),
			float32(t.A.X), float32(t.A.Y), float32(t.A.Z),
			float32(t.B.X), float32(t.B.Y), float32(t.B.Z),
			float32(t.C.X), float32(t.C.Y), float32(t.C.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return nil
}

func normal(t Triangle) walls.Vec3 {
	ux := t.B.X - t.A.X
	uy := t.B.Y - t.A.Y
	uz := t.B.Z - t.A.Z
	vx := t.C.X - t.A.X
	vy := t.C.Y - t.A.Y
	vz := t.C.Z - t.A.Z

	n := walls.Vec3{
		X: uy*vz - uz*vy,
		Y: uz*vx - ux*vz,
		Z: ux*vy - uy*vx,
	}
	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if length == 0 {
		return walls.Vec3{}
	}
	return walls.Vec3{X: n.X / length, Y: n.Y / length, Z: n.Z / length}
}
