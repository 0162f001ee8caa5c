package writefiles

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshio/mesh"
	"github.com/notargets/meshio/utils"
)

// recordReader decodes Fortran-unformatted records, mirroring what a CFD
// tool's reader does with these files.
type recordReader struct {
	t     *testing.T
	r     *bytes.Reader
	order binary.ByteOrder
	width int
}

func (rr *recordReader) readInt() int64 {
	rr.t.Helper()
	buf := make([]byte, rr.width)
	_, err := rr.r.Read(buf)
	require.NoError(rr.t, err)
	if rr.width == 4 {
		return int64(int32(rr.order.Uint32(buf)))
	}
	return int64(rr.order.Uint64(buf))
}

func (rr *recordReader) readFloat() float64 {
	rr.t.Helper()
	buf := make([]byte, rr.width)
	_, err := rr.r.Read(buf)
	require.NoError(rr.t, err)
	if rr.width == 4 {
		return float64(math.Float32frombits(rr.order.Uint32(buf)))
	}
	return math.Float64frombits(rr.order.Uint64(buf))
}

// record checks the framing invariant and positions the reader at the
// payload, returning the payload length in scalars.
func (rr *recordReader) record(read func()) {
	rr.t.Helper()
	lead := rr.readInt()
	start := rr.r.Size() - int64(rr.r.Len())
	read()
	consumed := rr.r.Size() - int64(rr.r.Len()) - start
	require.Equal(rr.t, lead, consumed, "payload length disagrees with leading marker")
	trail := rr.readInt()
	require.Equal(rr.t, lead, trail, "trailing marker disagrees with leading marker")
}

func TestWriteTriBinaryRoundTrip(t *testing.T) {
	tri := unitSquareTri()
	tri.CompID = utils.NewVector(2, []float64{1, 7})
	for _, tc := range []struct {
		name  string
		write func(w *bytes.Buffer, tr mesh.Triangulation) error
		order binary.ByteOrder
		width int
	}{
		{"b4", func(w *bytes.Buffer, tr mesh.Triangulation) error { return WriteTriB4(w, tr) }, binary.BigEndian, 4},
		{"lb4", func(w *bytes.Buffer, tr mesh.Triangulation) error { return WriteTriLB4(w, tr) }, binary.LittleEndian, 4},
		{"b8", func(w *bytes.Buffer, tr mesh.Triangulation) error { return WriteTriB8(w, tr) }, binary.BigEndian, 8},
		{"lb8", func(w *bytes.Buffer, tr mesh.Triangulation) error { return WriteTriLB8(w, tr) }, binary.LittleEndian, 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.write(&buf, tri))

			rr := &recordReader{t, bytes.NewReader(buf.Bytes()), tc.order, tc.width}
			var nNode, nTri int64
			rr.record(func() {
				nNode = rr.readInt()
				nTri = rr.readInt()
			})
			assert.Equal(t, int64(4), nNode)
			assert.Equal(t, int64(2), nTri)

			rr.record(func() {
				for i := 0; i < int(nNode); i++ {
					row := tri.Points.Row(i)
					for j := 0; j < 3; j++ {
						assert.Equal(t, row[j], rr.readFloat())
					}
				}
			})
			rr.record(func() {
				for i := 0; i < int(nTri); i++ {
					for j := 0; j < 3; j++ {
						// One-based on disk.
						assert.Equal(t, int64(tri.TriIndex(i, j)+1), rr.readInt())
					}
				}
			})
			rr.record(func() {
				assert.Equal(t, int64(1), rr.readInt())
				assert.Equal(t, int64(7), rr.readInt())
			})
			assert.Zero(t, rr.r.Len(), "trailing bytes after last record")
		})
	}
}

func TestWriteTriBinaryStates(t *testing.T) {
	// A populated state matrix produces the binary triq layout: nq in the
	// header record and a trailing state record.
	tri := unitSquareTri()
	tri.CompID = utils.NewVector(2, []float64{1, 1})
	tri.Q = utils.NewMatrix(4, 2, []float64{
		1, 0.5,
		2, 0.5,
		3, 0.5,
		4, 0.5,
	})
	var plain, annotated bytes.Buffer
	require.NoError(t, WriteTriLB8(&annotated, tri))
	bare := unitSquareTri()
	bare.CompID = utils.NewVector(2, []float64{1, 1})
	require.NoError(t, WriteTriLB8(&plain, bare))
	require.NotEqual(t, plain.Bytes(), annotated.Bytes())

	rr := &recordReader{t, bytes.NewReader(annotated.Bytes()), binary.LittleEndian, 8}
	var nNode, nTri, nq int64
	rr.record(func() {
		nNode = rr.readInt()
		nTri = rr.readInt()
		nq = rr.readInt()
	})
	assert.Equal(t, int64(4), nNode)
	assert.Equal(t, int64(2), nTri)
	assert.Equal(t, int64(2), nq)

	rr.record(func() {
		for i := 0; i < 12; i++ {
			rr.readFloat()
		}
	})
	rr.record(func() {
		for i := 0; i < 6; i++ {
			rr.readInt()
		}
	})
	rr.record(func() {
		rr.readInt()
		rr.readInt()
	})
	rr.record(func() {
		for i := 0; i < int(nNode); i++ {
			row := tri.Q.Row(i)
			for j := 0; j < int(nq); j++ {
				assert.Equal(t, row[j], rr.readFloat())
			}
		}
	})
	assert.Zero(t, rr.r.Len(), "trailing bytes after state record")
}

func TestWriteTriBinaryStatesRequireCompID(t *testing.T) {
	tri := unitSquareTri()
	tri.Q = utils.NewMatrix(4, 1, []float64{1, 2, 3, 4})
	var buf bytes.Buffer
	err := WriteTriLB8(&buf, tri)
	var se *mesh.ShapeError
	require.ErrorAs(t, err, &se)
	assert.Zero(t, buf.Len())
}

func TestWriteTriBinaryEndianMirror(t *testing.T) {
	// b8 and lb8 hold identical logical content with every fixed-width
	// field byte-reversed; check the header record field by field.
	tri := unitSquareTri()
	var big, little bytes.Buffer
	require.NoError(t, WriteTriB8(&big, tri))
	require.NoError(t, WriteTriLB8(&little, tri))
	require.Equal(t, big.Len(), little.Len())

	b, l := big.Bytes(), little.Bytes()
	for field := 0; field < 4; field++ {
		bf := b[field*8 : field*8+8]
		lf := l[field*8 : field*8+8]
		for i := 0; i < 8; i++ {
			assert.Equal(t, bf[i], lf[7-i])
		}
	}
}

func TestWriteTriBinaryOmitsCompIDRecord(t *testing.T) {
	tri := unitSquareTri()
	var buf bytes.Buffer
	require.NoError(t, WriteTriLB4(&buf, tri))
	// header(2) + coords(12) + conn(6) scalars, plus 2 markers per record.
	want := 4 * (2 + 12 + 6 + 3*2)
	assert.Equal(t, want, buf.Len())
}

func TestWriteTriBinaryRejectsBadIndex(t *testing.T) {
	tri := unitSquareTri()
	tri.Tris = utils.NewMatrix(1, 3, []float64{0, 1, 9})
	var buf bytes.Buffer
	err := WriteTriLB8(&buf, tri)
	var se *mesh.ShapeError
	require.ErrorAs(t, err, &se)
	assert.Zero(t, buf.Len())
}
