package writefiles

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/notargets/meshio/mesh"
	"github.com/notargets/meshio/utils"
)

// Node coordinates and solution states carry 13 significant digits so an
// ASCII round trip does not lose float64 precision visible to CFD tools.
const coordFormat = "%.12e"

// WriteTri writes a Cart3D ASCII triangulation: a "nNode nTri" header line,
// one line of 3 coordinates per node, then one line of 3 one-based node
// indices per triangle. Component IDs are appended separately with
// WriteCompID. nTri = 0 is legal and produces header plus node block.
func WriteTri(w io.Writer, t mesh.Triangulation) error {
	if err := t.Validate(); err != nil {
		return err
	}
	var (
		bw    = bufio.NewWriter(w)
		nNode = t.NNode()
		nTri  = t.NTri()
	)
	if _, err := fmt.Fprintf(bw, "%d %d\n", nNode, nTri); err != nil {
		return err
	}
	if err := writeNodeLines(bw, t.Points); err != nil {
		return err
	}
	if err := writeTriLines(bw, t); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCompID appends one component ID line per triangle to an existing
// triangulation stream. Tags must be integral; a fractional value cannot be
// losslessly written as a component ID.
func WriteCompID(w io.Writer, c utils.Vector) error {
	if c.IsEmpty() {
		return &mesh.ShapeError{Field: "CompID", Detail: "component ID vector is required"}
	}
	for i, v := range c.Data() {
		if v != math.Trunc(v) {
			return &mesh.TypeError{Field: "CompID", Detail: fmt.Sprintf("entry %d: %v is not an integer tag", i, v)}
		}
	}
	bw := bufio.NewWriter(w)
	for _, v := range c.Data() {
		if _, err := fmt.Fprintf(bw, "%d\n", int64(v)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteTriQ writes an annotated .triq triangulation: header "nNode nTri nq",
// nodes, one-based connectivity, component IDs, then nq solution states per
// node.
func WriteTriQ(w io.Writer, t mesh.Triangulation) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.CompID.IsEmpty() {
		return &mesh.ShapeError{Field: "CompID", Detail: "component IDs are required for triq output"}
	}
	if t.Q.IsEmpty() {
		return &mesh.ShapeError{Field: "Q", Detail: "state matrix is required for triq output"}
	}
	var (
		bw    = bufio.NewWriter(w)
		nNode = t.NNode()
		nTri  = t.NTri()
		nq    = t.NQ()
	)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", nNode, nTri, nq); err != nil {
		return err
	}
	if err := writeNodeLines(bw, t.Points); err != nil {
		return err
	}
	if err := writeTriLines(bw, t); err != nil {
		return err
	}
	for _, v := range t.CompID.Data() {
		if _, err := fmt.Fprintf(bw, "%d\n", int64(v)); err != nil {
			return err
		}
	}
	for i := 0; i < nNode; i++ {
		row := t.Q.Row(i)
		for j, q := range row {
			if j != 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, coordFormat, q); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeNodeLines(bw *bufio.Writer, points utils.Matrix) error {
	nNode, _ := points.Dims()
	for i := 0; i < nNode; i++ {
		row := points.Row(i)
		if _, err := fmt.Fprintf(bw, coordFormat+" "+coordFormat+" "+coordFormat+"\n",
			row[0], row[1], row[2]); err != nil {
			return err
		}
	}
	return nil
}

// writeTriLines emits one-based connectivity, converting from the internal
// 0-based indices.
func writeTriLines(bw *bufio.Writer, t mesh.Triangulation) error {
	for i := 0; i < t.NTri(); i++ {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n",
			t.TriIndex(i, 0)+1, t.TriIndex(i, 1)+1, t.TriIndex(i, 2)+1); err != nil {
			return err
		}
	}
	return nil
}
