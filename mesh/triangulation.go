package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/meshio/utils"
)

// Triangulation is the in-memory surface mesh handed to the writers. Points
// and Tris are the core triangulation; the remaining fields are optional
// annotations used by specific formats. Connectivity is stored 0-based; each
// writer performs its own index-base conversion on output.
//
// All fields are caller-owned, read-only views. A writer never mutates them
// and never retains them past a single write call.
type Triangulation struct {
	Points utils.Matrix // nNode x 3 nodal coordinates
	Tris   utils.Matrix // nTri x 3 node indices, 0-based

	CompID utils.Vector // nTri component IDs (tri/triq/surf)
	TriBC  utils.Vector // nTri AFLR3 BC flags (surf)

	Quads      utils.Matrix // nQuad x 4 node indices, 0-based (surf)
	QuadCompID utils.Vector // nQuad component IDs (surf)
	QuadBC     utils.Vector // nQuad AFLR3 BC flags (surf)

	Q utils.Matrix // nNode x nq solution states (triq)

	Normals utils.Matrix // nTri x 3 facet normals (stl); derived when empty

	// Per-node boundary-layer initial spacing and total thickness columns
	// of the AFLR3 surf format. Both present or both absent.
	BLSpacing   utils.Vector
	BLThickness utils.Vector
}

// ShapeError reports an array rank, dimension or paired-length mismatch.
// It is always returned before any output byte is produced.
type ShapeError struct {
	Field  string
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape error: %s: %s", e.Field, e.Detail)
}

func shapeErrf(field, format string, args ...interface{}) *ShapeError {
	return &ShapeError{Field: field, Detail: fmt.Sprintf(format, args...)}
}

// TypeError reports a value that cannot be losslessly interpreted as the
// required numeric kind, e.g. a fractional value used as a node index.
type TypeError struct {
	Field  string
	Detail string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: %s: %s", e.Field, e.Detail)
}

func typeErrf(field, format string, args ...interface{}) *TypeError {
	return &TypeError{Field: field, Detail: fmt.Sprintf(format, args...)}
}

func (t Triangulation) NNode() int { n, _ := t.Points.Dims(); return n }
func (t Triangulation) NTri() int  { n, _ := t.Tris.Dims(); return n }
func (t Triangulation) NQuad() int { n, _ := t.Quads.Dims(); return n }
func (t Triangulation) NQ() int    { _, nq := t.Q.Dims(); return nq }

// Validate checks every populated field for rank, width, paired lengths,
// index range and integrality. It runs before any writer emits a byte, so
// malformed input never produces partial output.
func (t Triangulation) Validate() error {
	nNode := t.NNode()
	if t.Points.IsEmpty() {
		return shapeErrf("Points", "node matrix is required")
	}
	if _, nc := t.Points.Dims(); nc != 3 {
		return shapeErrf("Points", "want 3 columns, have %d", nc)
	}
	if err := t.checkConnectivity("Tris", t.Tris, 3, nNode); err != nil {
		return err
	}
	if err := t.checkConnectivity("Quads", t.Quads, 4, nNode); err != nil {
		return err
	}
	if err := checkFaceVector("CompID", t.CompID, t.NTri()); err != nil {
		return err
	}
	if err := checkFaceVector("TriBC", t.TriBC, t.NTri()); err != nil {
		return err
	}
	if err := checkFaceVector("QuadCompID", t.QuadCompID, t.NQuad()); err != nil {
		return err
	}
	if err := checkFaceVector("QuadBC", t.QuadBC, t.NQuad()); err != nil {
		return err
	}
	if !t.Q.IsEmpty() {
		if nr, _ := t.Q.Dims(); nr != nNode {
			return shapeErrf("Q", "state rows = %d, nNode = %d", nr, nNode)
		}
	}
	if !t.Normals.IsEmpty() {
		nr, nc := t.Normals.Dims()
		if nc != 3 {
			return shapeErrf("Normals", "want 3 columns, have %d", nc)
		}
		if nr != t.NTri() {
			return shapeErrf("Normals", "normal rows = %d, nTri = %d", nr, t.NTri())
		}
	}
	if t.BLSpacing.IsEmpty() != t.BLThickness.IsEmpty() {
		return shapeErrf("BLSpacing", "boundary layer spacing and thickness must both be present or both absent")
	}
	if !t.BLSpacing.IsEmpty() {
		if t.BLSpacing.Len() != nNode {
			return shapeErrf("BLSpacing", "length = %d, nNode = %d", t.BLSpacing.Len(), nNode)
		}
		if t.BLThickness.Len() != nNode {
			return shapeErrf("BLThickness", "length = %d, nNode = %d", t.BLThickness.Len(), nNode)
		}
	}
	return nil
}

// checkConnectivity validates one face matrix: fixed width, integral values,
// indices in [0, nNode).
func (t Triangulation) checkConnectivity(field string, conn utils.Matrix, width, nNode int) error {
	if conn.IsEmpty() {
		return nil
	}
	nr, nc := conn.Dims()
	if nc != width {
		return shapeErrf(field, "want %d columns, have %d", width, nc)
	}
	for i := 0; i < nr; i++ {
		row := conn.Row(i)
		for j, v := range row {
			if v != math.Trunc(v) {
				return typeErrf(field, "row %d col %d: %v is not an integer index", i, j, v)
			}
			if idx := int(v); idx < 0 || idx >= nNode {
				return shapeErrf(field, "row %d col %d: index %d outside [0, %d)", i, j, idx, nNode)
			}
		}
	}
	return nil
}

// checkFaceVector validates a per-face tag vector: length matches the face
// count it annotates, all values integral.
func checkFaceVector(field string, v utils.Vector, nFace int) error {
	if v.IsEmpty() {
		return nil
	}
	if v.Len() != nFace {
		return shapeErrf(field, "length = %d, face count = %d", v.Len(), nFace)
	}
	for i, val := range v.Data() {
		if val != math.Trunc(val) {
			return typeErrf(field, "entry %d: %v is not an integer tag", i, val)
		}
	}
	return nil
}

// TriIndex returns the 0-based node index at (i, j) of the triangle matrix.
// Validate has already established integrality and range.
func (t Triangulation) TriIndex(i, j int) int { return int(t.Tris.At(i, j)) }

// QuadIndex returns the 0-based node index at (i, j) of the quad matrix.
func (t Triangulation) QuadIndex(i, j int) int { return int(t.Quads.At(i, j)) }
