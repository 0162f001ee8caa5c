package types

import "strings"

// BCFLAG is an AFLR3 surface boundary-condition flag, written per face in
// .surf files. Values pass through the writer untouched; these constants
// cover the standard AFLR3 grid BC codes.
type BCFLAG int

const (
	BC_FarfieldComposite    BCFLAG = -1 // farfield composite face
	BC_GridBC               BCFLAG = 0  // BC deferred to the volume grid input
	BC_SolidWall            BCFLAG = 1  // viscous solid surface
	BC_TriangulatedFarfield BCFLAG = 2
	BC_Transparent          BCFLAG = 3 // transparent/internal source surface
)

var BCNameMap = map[string]BCFLAG{
	"farfield":    BC_FarfieldComposite,
	"far":         BC_FarfieldComposite,
	"grid":        BC_GridBC,
	"wall":        BC_SolidWall,
	"viscous":     BC_SolidWall,
	"solid":       BC_SolidWall,
	"trifarfield": BC_TriangulatedFarfield,
	"transparent": BC_Transparent,
	"source":      BC_Transparent,
}

func ParseBC(name string) (BCFLAG, bool) {
	bc, ok := BCNameMap[strings.ToLower(strings.Trim(name, " "))]
	return bc, ok
}

func (bc BCFLAG) String() string {
	switch bc {
	case BC_FarfieldComposite:
		return "FarfieldComposite"
	case BC_GridBC:
		return "GridBC"
	case BC_SolidWall:
		return "SolidWall"
	case BC_TriangulatedFarfield:
		return "TriangulatedFarfield"
	case BC_Transparent:
		return "Transparent"
	}
	return "Unknown"
}
