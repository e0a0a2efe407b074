package bitstream

import (
	"github.com/tyrese/bitstream/pio"
)

// Writer packs bits MSB-first into a growable byte buffer it owns. Bits
// that do not yet complete a byte are held back, so the buffer only ever
// contains fully formed bytes. The zero value is an empty, byte-aligned
// stream ready for use.
type Writer struct {
	buf       []byte
	heldBits  byte
	heldCount uint
}

// WriteBits appends the low n bits of v to the stream, most significant
// bit first. n must be at most 32; anything larger panics.
func (self *Writer) WriteBits(v uint32, n uint) {
	if n > 32 {
		panic("bitstream: WriteBits count out of range")
	}
	if n < 32 {
		v &= 1<<n - 1
	}

	// any mod 8 remainder of the combined bit count cannot be emitted
	// this call and is carried to the next one
	total := n + self.heldCount
	nextHeldCount := total % 8
	nextHeldBits := byte(v << (8 - nextHeldCount))

	if total < 8 {
		self.heldBits |= nextHeldBits
		self.heldCount = nextHeldCount
		return
	}

	// justify the carried bits so they sit directly above the surviving
	// part of v, then emit the completed bytes top first
	top := (n - nextHeldCount) &^ 7
	word := uint32(self.heldBits)<<top | v>>nextHeldCount

	var b [4]byte
	pio.PutU32BE(b[:], word)
	k := total >> 3
	self.buf = append(self.buf, b[4-k:]...)

	self.heldBits = nextHeldBits
	self.heldCount = nextHeldCount
}

// WriteAlignZero pads the stream with zero bits up to the next byte
// boundary and flushes the held bits. No-op when already aligned.
func (self *Writer) WriteAlignZero() {
	if self.heldCount == 0 {
		return
	}
	self.buf = append(self.buf, self.heldBits)
	self.heldBits = 0
	self.heldCount = 0
}

// WriteAlignOne pads the stream with one bits up to the next byte
// boundary, as required by trailing stop-bit patterns.
func (self *Writer) WriteAlignOne() {
	n := self.NumBitsUntilByteAligned()
	self.WriteBits(1<<n-1, n)
}

// Clear empties the buffer and drops any held bits so the writer can be
// reused for another pass.
func (self *Writer) Clear() {
	self.buf = self.buf[:0]
	self.heldBits = 0
	self.heldCount = 0
}

// Bytes returns the completed bytes of the stream. The slice is a view
// into the writer's storage and is invalidated by any further write.
// Held bits are not included; call WriteAlignZero first when the
// trailing partial byte matters.
func (self *Writer) Bytes() []byte {
	return self.buf
}

// Len returns the number of completed bytes in the stream.
func (self *Writer) Len() int {
	return len(self.buf)
}

// NumBits returns the total number of bits written, held bits included.
func (self *Writer) NumBits() int {
	return len(self.buf)*8 + int(self.heldCount)
}

// NumHeldBits returns how many written bits have not yet completed a byte.
func (self *Writer) NumHeldBits() uint {
	return self.heldCount
}

func (self *Writer) NumBitsUntilByteAligned() uint {
	return (8 - self.heldCount) & 7
}

// InsertAt splices the contents of src into the stream at byte offset
// pos, shifting the bytes at and after pos to make room. Retrofits a
// prefix whose length is only known after the payload was written, such
// as a start code or length field. src must be byte aligned and pos must
// be within [0, Len()]; violating either panics.
func (self *Writer) InsertAt(src *Writer, pos int) {
	if src.NumBits()%8 != 0 {
		panic("bitstream: InsertAt source not byte aligned")
	}
	if pos < 0 || pos > len(self.buf) {
		panic("bitstream: InsertAt position out of range")
	}
	self.buf = pio.VecJoin([][]byte{self.buf[:pos], src.buf, self.buf[pos:]})
}
