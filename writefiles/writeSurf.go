package writefiles

import (
	"bufio"
	"fmt"
	"io"

	"github.com/notargets/meshio/mesh"
)

// WriteSurf writes an AFLR3 surface mesh. Header is "nTri nQuad nNode"; node
// lines carry the coordinates plus, when supplied, the boundary-layer
// initial spacing and total thickness columns. Each face line is the
// one-based connectivity followed by component ID, reconnection flag
// (always 0) and BC flag. Triangles precede quads; a reader relies on the
// header counts to find the block boundary.
func WriteSurf(w io.Writer, t mesh.Triangulation) error {
	if err := t.Validate(); err != nil {
		return err
	}
	var (
		nNode = t.NNode()
		nTri  = t.NTri()
		nQuad = t.NQuad()
		hasBL = !t.BLSpacing.IsEmpty()
	)
	if nTri > 0 {
		if t.CompID.IsEmpty() {
			return &mesh.ShapeError{Field: "CompID", Detail: "triangle component IDs are required for surf output"}
		}
		if t.TriBC.IsEmpty() {
			return &mesh.ShapeError{Field: "TriBC", Detail: "triangle BC flags are required for surf output"}
		}
	}
	if nQuad > 0 {
		if t.QuadCompID.IsEmpty() {
			return &mesh.ShapeError{Field: "QuadCompID", Detail: "quad component IDs are required for surf output"}
		}
		if t.QuadBC.IsEmpty() {
			return &mesh.ShapeError{Field: "QuadBC", Detail: "quad BC flags are required for surf output"}
		}
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", nTri, nQuad, nNode); err != nil {
		return err
	}
	for i := 0; i < nNode; i++ {
		row := t.Points.Row(i)
		if _, err := fmt.Fprintf(bw, coordFormat+" "+coordFormat+" "+coordFormat,
			row[0], row[1], row[2]); err != nil {
			return err
		}
		if hasBL {
			if _, err := fmt.Fprintf(bw, " "+coordFormat+" "+coordFormat,
				t.BLSpacing.AtVec(i), t.BLThickness.AtVec(i)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	for i := 0; i < nTri; i++ {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d 0 %d\n",
			t.TriIndex(i, 0)+1, t.TriIndex(i, 1)+1, t.TriIndex(i, 2)+1,
			int64(t.CompID.AtVec(i)), int64(t.TriBC.AtVec(i))); err != nil {
			return err
		}
	}
	for i := 0; i < nQuad; i++ {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %d 0 %d\n",
			t.QuadIndex(i, 0)+1, t.QuadIndex(i, 1)+1, t.QuadIndex(i, 2)+1, t.QuadIndex(i, 3)+1,
			int64(t.QuadCompID.AtVec(i)), int64(t.QuadBC.AtVec(i))); err != nil {
			return err
		}
	}
	return bw.Flush()
}
