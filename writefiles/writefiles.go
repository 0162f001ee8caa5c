// Package writefiles writes surface meshes to the exchange formats used by
// CFD tool chains: Cart3D ASCII and binary triangulations (.tri/.triq),
// AFLR3 surface meshes (.surf) and STL. Input is always a validated
// mesh.Triangulation; every writer checks shape and type consistency before
// emitting its first byte.
package writefiles

import (
	"fmt"
	"io"
	"os"

	"github.com/notargets/meshio/mesh"
	"github.com/notargets/meshio/types"
)

// Write dispatches a triangulation to the writer for the given format tag.
// FormatASCII picks the .triq layout when a state matrix is present, and
// appends the component ID block when one is supplied.
func Write(w io.Writer, t mesh.Triangulation, format types.Format) error {
	switch format {
	case types.FormatASCII:
		if !t.Q.IsEmpty() {
			return WriteTriQ(w, t)
		}
		if err := WriteTri(w, t); err != nil {
			return err
		}
		if t.CompID.IsEmpty() {
			return nil
		}
		return WriteCompID(w, t.CompID)
	case types.FormatB4:
		return WriteTriB4(w, t)
	case types.FormatLB4:
		return WriteTriLB4(w, t)
	case types.FormatB8:
		return WriteTriB8(w, t)
	case types.FormatLB8:
		return WriteTriLB8(w, t)
	case types.FormatSurf:
		return WriteSurf(w, t)
	case types.FormatSTL:
		return WriteSTL(w, t)
	case types.FormatSTLBinary:
		return WriteSTLBinary(w, t, STLOptions{})
	}
	return fmt.Errorf("unsupported mesh output format: %s", format)
}

// WriteMeshFile writes the triangulation to filename in the given format.
// Validation runs before the file is created, so malformed input leaves no
// file behind.
func WriteMeshFile(filename string, t mesh.Triangulation, format types.Format) error {
	if err := t.Validate(); err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = Write(file, t, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
