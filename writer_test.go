package bitstream

import (
	"bytes"
	"testing"

	"github.com/icza/mighty"
)

func TestWriterAccounting(t *testing.T) {
	eq := mighty.Eq(t)

	w := &Writer{}
	eq(0, w.NumBits())
	eq(0, w.Len())
	eq(uint(0), w.NumBitsUntilByteAligned())

	w.WriteBits(1, 1)
	eq(1, w.NumBits())
	eq(0, w.Len())
	eq(uint(1), w.NumHeldBits())
	eq(uint(7), w.NumBitsUntilByteAligned())

	w.WriteBits(0x7f, 7)
	eq(8, w.NumBits())
	eq(1, w.Len())
	eq(uint(0), w.NumHeldBits())
	eq(uint(0), w.NumBitsUntilByteAligned())

	w.WriteBits(0x3, 2)
	eq(10, w.NumBits())
	eq(1, w.Len())
	eq(uint(2), w.NumHeldBits())

	w.WriteAlignZero()
	eq(16, w.NumBits())
	eq(2, w.Len())
	eq(true, bytes.Equal(w.Bytes(), []byte{0xff, 0xc0}))
}

func TestWriteAlignZeroIdempotent(t *testing.T) {
	eq := mighty.Eq(t)

	w := &Writer{}
	w.WriteBits(0x1, 3)
	w.WriteAlignZero()
	eq(1, w.Len())
	w.WriteAlignZero()
	eq(1, w.Len())
	eq(true, bytes.Equal(w.Bytes(), []byte{0x20}))
}

func TestWriteAlignOne(t *testing.T) {
	eq := mighty.Eq(t)

	w := &Writer{}
	w.WriteBits(0x0, 2)
	w.WriteAlignOne()
	eq(true, bytes.Equal(w.Bytes(), []byte{0x3f}))

	// already aligned, nothing to pad
	w.WriteAlignOne()
	eq(1, w.Len())
}

func TestWriterDirtyHighBitsMasked(t *testing.T) {
	eq := mighty.Eq(t)

	w := &Writer{}
	w.WriteBits(0xffffffff, 3)
	w.WriteBits(0xffffff00, 5)
	eq(true, bytes.Equal(w.Bytes(), []byte{0xe0}))
}

func TestWriterZeroWidth(t *testing.T) {
	eq := mighty.Eq(t)

	w := &Writer{}
	w.WriteBits(0xdeadbeef, 0)
	eq(0, w.NumBits())
	w.WriteBits(0x5, 3)
	w.WriteBits(0xdeadbeef, 0)
	eq(3, w.NumBits())
	w.WriteAlignZero()
	eq(true, bytes.Equal(w.Bytes(), []byte{0xa0}))
}

func TestWriterClear(t *testing.T) {
	eq := mighty.Eq(t)

	w := &Writer{}
	w.WriteBits(0x12345678, 32)
	w.WriteBits(0x3, 3)
	w.Clear()
	eq(0, w.NumBits())
	eq(0, w.Len())

	w.WriteBits(0xab, 8)
	eq(true, bytes.Equal(w.Bytes(), []byte{0xab}))
}

func TestInsertAt(t *testing.T) {
	eq := mighty.Eq(t)

	mkA := func() *Writer {
		a := &Writer{}
		for _, b := range []byte{1, 2, 3, 4} {
			a.WriteBits(uint32(b), 8)
		}
		return a
	}
	b := &Writer{}
	b.WriteBits(0xaabb, 16)

	for k := 0; k <= 4; k++ {
		a := mkA()
		a.InsertAt(b, k)
		eq(6, a.Len())

		want := append([]byte{}, []byte{1, 2, 3, 4}[:k]...)
		want = append(want, 0xaa, 0xbb)
		want = append(want, []byte{1, 2, 3, 4}[k:]...)
		eq(true, bytes.Equal(a.Bytes(), want))
	}
}

func TestInsertAtPreconditions(t *testing.T) {
	a := &Writer{}
	a.WriteBits(0xff, 8)

	unaligned := &Writer{}
	unaligned.WriteBits(0x3, 3)
	mustPanic(t, func() { a.InsertAt(unaligned, 0) })

	b := &Writer{}
	b.WriteBits(0xaa, 8)
	mustPanic(t, func() { a.InsertAt(b, 2) })
	mustPanic(t, func() { a.InsertAt(b, -1) })
}

func TestWriteBitsTooWide(t *testing.T) {
	w := &Writer{}
	mustPanic(t, func() { w.WriteBits(0, 33) })
}
