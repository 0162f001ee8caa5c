package writefiles

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// RecordWriter emits fixed-width integers and floats in a selectable byte
// order, and frames payloads in Fortran-unformatted records: a leading
// integer holding the payload byte length, the payload, then the same
// integer repeated. The marker width matches the scalar width (4 or 8).
type RecordWriter struct {
	w     io.Writer
	order binary.ByteOrder
	width int
	buf   [8]byte
}

func NewRecordWriter(w io.Writer, order binary.ByteOrder, width int) *RecordWriter {
	if width != 4 && width != 8 {
		panic(fmt.Errorf("record width must be 4 or 8, have %d", width))
	}
	return &RecordWriter{w: w, order: order, width: width}
}

// WriteInt emits v as a width-byte two's-complement integer.
func (rw *RecordWriter) WriteInt(v int64) error {
	if rw.width == 4 {
		if v > math.MaxInt32 || v < math.MinInt32 {
			return fmt.Errorf("integer %d overflows 4-byte record field", v)
		}
		rw.order.PutUint32(rw.buf[:4], uint32(int32(v)))
	} else {
		rw.order.PutUint64(rw.buf[:8], uint64(v))
	}
	_, err := rw.w.Write(rw.buf[:rw.width])
	return err
}

// WriteFloat emits v as a width-byte IEEE 754 value (float32 for width 4).
func (rw *RecordWriter) WriteFloat(v float64) error {
	if rw.width == 4 {
		rw.order.PutUint32(rw.buf[:4], math.Float32bits(float32(v)))
	} else {
		rw.order.PutUint64(rw.buf[:8], math.Float64bits(v))
	}
	_, err := rw.w.Write(rw.buf[:rw.width])
	return err
}

// WriteRecord frames payload between leading and trailing length markers.
// The framing is what lets Fortran-unformatted readers seek past a record
// without parsing it, so both markers must equal the payload byte count.
func (rw *RecordWriter) WriteRecord(payload []byte) error {
	if err := rw.WriteInt(int64(len(payload))); err != nil {
		return err
	}
	if _, err := rw.w.Write(payload); err != nil {
		return err
	}
	return rw.WriteInt(int64(len(payload)))
}

// Record builds a payload by running build against an in-memory writer of
// the same order and width, then emits it as one framed record. A build
// failure leaves the sink untouched, so no half-framed record can appear.
func (rw *RecordWriter) Record(build func(*RecordWriter) error) error {
	var payload bytes.Buffer
	inner := NewRecordWriter(&payload, rw.order, rw.width)
	if err := build(inner); err != nil {
		return err
	}
	return rw.WriteRecord(payload.Bytes())
}
