package writefiles

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/meshio/mesh"
)

// STLOptions controls the STL writers. SolidName labels the solid (ASCII
// grammar and the binary header comment). With Strict set, a degenerate
// triangle whose facet normal cannot be derived is an error; otherwise it is
// written with a zero normal.
type STLOptions struct {
	SolidName string
	Strict    bool
}

// WriteSTL writes an ASCII STL file with default options.
func WriteSTL(w io.Writer, t mesh.Triangulation) error {
	return WriteSTLOpts(w, t, STLOptions{})
}

// WriteSTLOpts writes an ASCII STL file: per facet, the normal and the three
// vertex positions expanded from the indexed triangulation. Vertices keep
// their input order, since STL facet orientation follows the winding. When
// the triangulation carries no normal matrix, each facet normal is the
// normalized right-hand cross product of its edge vectors.
func WriteSTLOpts(w io.Writer, t mesh.Triangulation, opts STLOptions) error {
	if err := t.Validate(); err != nil {
		return err
	}
	var (
		bw   = bufio.NewWriter(w)
		name = solidName(opts)
	)
	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return err
	}
	for i := 0; i < t.NTri(); i++ {
		n, v0, v1, v2, err := facet(t, i, opts.Strict)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(bw, "facet normal "+coordFormat+" "+coordFormat+" "+coordFormat+"\n",
			n[0], n[1], n[2]); err != nil {
			return err
		}
		if _, err = fmt.Fprintf(bw, " outer loop\n"); err != nil {
			return err
		}
		for _, v := range [][]float64{v0, v1, v2} {
			if _, err = fmt.Fprintf(bw, "  vertex "+coordFormat+" "+coordFormat+" "+coordFormat+"\n",
				v[0], v[1], v[2]); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintf(bw, " endloop\nendfacet\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteSTLBinary writes a binary STL file: an 80-byte header, a uint32 facet
// count, then 50 bytes per facet (normal and three vertices as little-endian
// float32 triples plus a zero attribute count), per the STL standard.
func WriteSTLBinary(w io.Writer, t mesh.Triangulation, opts STLOptions) error {
	if err := t.Validate(); err != nil {
		return err
	}
	var header [80]byte
	copy(header[:], solidName(opts))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	var (
		nTri = t.NTri()
		buf  [50]byte
	)
	binary.LittleEndian.PutUint32(buf[:4], uint32(nTri))
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}
	for i := 0; i < nTri; i++ {
		n, v0, v1, v2, err := facet(t, i, opts.Strict)
		if err != nil {
			return err
		}
		off := 0
		for _, vec := range [][]float64{n[:], v0, v1, v2} {
			for _, v := range vec {
				binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(float32(v)))
				off += 4
			}
		}
		buf[48], buf[49] = 0, 0 // attribute byte count
		if _, err = w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// facet resolves triangle i to its normal and vertex positions.
func facet(t mesh.Triangulation, i int, strict bool) (n [3]float64, v0, v1, v2 []float64, err error) {
	v0 = t.Points.Row(t.TriIndex(i, 0))
	v1 = t.Points.Row(t.TriIndex(i, 1))
	v2 = t.Points.Row(t.TriIndex(i, 2))
	if !t.Normals.IsEmpty() {
		row := t.Normals.Row(i)
		n[0], n[1], n[2] = row[0], row[1], row[2]
		return
	}
	var ok bool
	if n, ok = FacetNormal(v0, v1, v2); !ok && strict {
		err = fmt.Errorf("triangle %d is degenerate: zero-area facet has no normal", i)
	}
	return
}

// FacetNormal derives the unit normal of the triangle (v0, v1, v2) as the
// right-hand cross product of (v1-v0) and (v2-v0). A zero-area triangle
// yields a zero normal and ok = false.
func FacetNormal(v0, v1, v2 []float64) (n [3]float64, ok bool) {
	var (
		ax, ay, az = v1[0] - v0[0], v1[1] - v0[1], v1[2] - v0[2]
		bx, by, bz = v2[0] - v0[0], v2[1] - v0[1], v2[2] - v0[2]
	)
	n[0] = ay*bz - az*by
	n[1] = az*bx - ax*bz
	n[2] = ax*by - ay*bx
	mag := floats.Norm(n[:], 2)
	if mag == 0 {
		return n, false
	}
	floats.Scale(1/mag, n[:])
	return n, true
}

func solidName(opts STLOptions) string {
	if opts.SolidName == "" {
		return "meshio"
	}
	return opts.SolidName
}
