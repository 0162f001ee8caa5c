package mesh

import (
	graphics2D "github.com/notargets/avs/geometry"

	"github.com/notargets/meshio/utils"
)

// FromGraphicsMesh builds a Triangulation from an avs planar triangle mesh.
// The avs geometry is packed XY coordinate pairs, so Z is zero. The avs type
// carries no per-face tags; supply component IDs separately (nil for none) —
// a length mismatch surfaces through Validate like any other tag vector.
func FromGraphicsMesh(gm graphics2D.TriMesh, compID []int) (t Triangulation) {
	nNode := len(gm.XY) / 2
	if nNode == 0 {
		return
	}
	pts := make([]float64, nNode*3)
	for i := 0; i < nNode; i++ {
		pts[3*i] = float64(gm.XY[2*i])
		pts[3*i+1] = float64(gm.XY[2*i+1])
	}
	t.Points = utils.NewMatrix(nNode, 3, pts)
	nTri := len(gm.TriVerts)
	if nTri == 0 {
		return
	}
	tris := make([]float64, nTri*3)
	for k, tv := range gm.TriVerts {
		tris[3*k] = float64(tv[0])
		tris[3*k+1] = float64(tv[1])
		tris[3*k+2] = float64(tv[2])
	}
	t.Tris = utils.NewMatrix(nTri, 3, tris)
	if len(compID) != 0 {
		comp := make([]float64, len(compID))
		for i, c := range compID {
			comp[i] = float64(c)
		}
		t.CompID = utils.NewVector(len(compID), comp)
	}
	return
}
