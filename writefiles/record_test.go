package writefiles

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFraming(t *testing.T) {
	// Leading marker == trailing marker == payload byte count, for both
	// marker widths and byte orders.
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01}
	for _, tc := range []struct {
		order binary.ByteOrder
		width int
	}{
		{binary.BigEndian, 4},
		{binary.LittleEndian, 4},
		{binary.BigEndian, 8},
		{binary.LittleEndian, 8},
	} {
		var buf bytes.Buffer
		rw := NewRecordWriter(&buf, tc.order, tc.width)
		require.NoError(t, rw.WriteRecord(payload))

		out := buf.Bytes()
		assert.Equal(t, 2*tc.width+len(payload), len(out))
		lead := readMarker(t, out[:tc.width], tc.order, tc.width)
		trail := readMarker(t, out[tc.width+len(payload):], tc.order, tc.width)
		assert.Equal(t, int64(len(payload)), lead)
		assert.Equal(t, int64(len(payload)), trail)
		assert.Equal(t, payload, out[tc.width:tc.width+len(payload)])
	}
}

func TestRecordScalars(t *testing.T) {
	var buf bytes.Buffer
	rw := NewRecordWriter(&buf, binary.BigEndian, 4)
	require.NoError(t, rw.WriteInt(-7))
	require.NoError(t, rw.WriteFloat(1.5))

	out := buf.Bytes()
	require.Equal(t, 8, len(out))
	assert.Equal(t, int32(-7), int32(binary.BigEndian.Uint32(out[:4])))
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.BigEndian.Uint32(out[4:])))
}

func TestRecordEndiannessReversal(t *testing.T) {
	// The same scalar in opposite byte orders is byte-reversed.
	var big, little bytes.Buffer
	require.NoError(t, NewRecordWriter(&big, binary.BigEndian, 8).WriteFloat(math.Pi))
	require.NoError(t, NewRecordWriter(&little, binary.LittleEndian, 8).WriteFloat(math.Pi))

	b, l := big.Bytes(), little.Bytes()
	require.Equal(t, 8, len(b))
	for i := range b {
		assert.Equal(t, b[i], l[len(l)-1-i])
	}
}

func TestRecordIntOverflow(t *testing.T) {
	var buf bytes.Buffer
	rw := NewRecordWriter(&buf, binary.LittleEndian, 4)
	assert.Error(t, rw.WriteInt(math.MaxInt32+1))
	assert.NoError(t, rw.WriteInt(math.MaxInt32))
}

func TestRecordBuildFailureLeavesSinkUntouched(t *testing.T) {
	var buf bytes.Buffer
	rw := NewRecordWriter(&buf, binary.LittleEndian, 4)
	err := rw.Record(func(r *RecordWriter) error {
		if err := r.WriteInt(42); err != nil {
			return err
		}
		return r.WriteInt(math.MaxInt32 + 1)
	})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func readMarker(t *testing.T, b []byte, order binary.ByteOrder, width int) int64 {
	t.Helper()
	if width == 4 {
		return int64(int32(order.Uint32(b)))
	}
	return int64(order.Uint64(b))
}
