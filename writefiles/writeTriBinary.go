package writefiles

import (
	"encoding/binary"
	"io"

	"github.com/notargets/meshio/mesh"
)

// WriteTriBinary writes a Cart3D binary triangulation in the given byte
// order and word width. Each logical block is a single Fortran-unformatted
// record, so a reader can seek past whole blocks using only the leading
// length marker:
//
//	record 1: nNode, nTri (plus nq for triq content)
//	record 2: node coordinates (3 per node)
//	record 3: connectivity, one-based (3 per triangle)
//	record 4: component IDs (only when present)
//	record 5: solution states, nq per node (only when present)
//
// The width selects 4- or 8-byte record markers, indices and floats alike,
// so b4/lb4 files carry float32 coordinates and b8/lb8 float64. A state
// matrix makes this the binary triq layout and, as in the ASCII variant,
// requires component IDs.
func WriteTriBinary(w io.Writer, t mesh.Triangulation, order binary.ByteOrder, width int) error {
	if err := t.Validate(); err != nil {
		return err
	}
	hasQ := !t.Q.IsEmpty()
	if hasQ && t.CompID.IsEmpty() {
		return &mesh.ShapeError{Field: "CompID", Detail: "component IDs are required for binary triq output"}
	}
	var (
		rw    = NewRecordWriter(w, order, width)
		nNode = t.NNode()
		nTri  = t.NTri()
	)
	err := rw.Record(func(r *RecordWriter) error {
		if err := r.WriteInt(int64(nNode)); err != nil {
			return err
		}
		if err := r.WriteInt(int64(nTri)); err != nil {
			return err
		}
		if !hasQ {
			return nil
		}
		return r.WriteInt(int64(t.NQ()))
	})
	if err != nil {
		return err
	}
	err = rw.Record(func(r *RecordWriter) error {
		for i := 0; i < nNode; i++ {
			for _, v := range t.Points.Row(i) {
				if err := r.WriteFloat(v); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	err = rw.Record(func(r *RecordWriter) error {
		for i := 0; i < nTri; i++ {
			for j := 0; j < 3; j++ {
				if err := r.WriteInt(int64(t.TriIndex(i, j) + 1)); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !t.CompID.IsEmpty() {
		err = rw.Record(func(r *RecordWriter) error {
			for _, v := range t.CompID.Data() {
				if err := r.WriteInt(int64(v)); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	if !hasQ {
		return nil
	}
	return rw.Record(func(r *RecordWriter) error {
		for i := 0; i < nNode; i++ {
			for _, v := range t.Q.Row(i) {
				if err := r.WriteFloat(v); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// WriteTriB4 writes a big-endian triangulation with 4-byte words.
func WriteTriB4(w io.Writer, t mesh.Triangulation) error {
	return WriteTriBinary(w, t, binary.BigEndian, 4)
}

// WriteTriLB4 writes a little-endian triangulation with 4-byte words.
func WriteTriLB4(w io.Writer, t mesh.Triangulation) error {
	return WriteTriBinary(w, t, binary.LittleEndian, 4)
}

// WriteTriB8 writes a big-endian triangulation with 8-byte words.
func WriteTriB8(w io.Writer, t mesh.Triangulation) error {
	return WriteTriBinary(w, t, binary.BigEndian, 8)
}

// WriteTriLB8 writes a little-endian triangulation with 8-byte words.
func WriteTriLB8(w io.Writer, t mesh.Triangulation) error {
	return WriteTriBinary(w, t, binary.LittleEndian, 8)
}
