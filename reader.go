package bitstream

import (
	"github.com/pkg/errors"
)

// Reader consumes bits MSB-first from a byte buffer it borrows. The
// buffer is never copied or written; the caller keeps it alive and
// unmodified for the reader's whole lifetime.
type Reader struct {
	buf       []byte
	pos       int
	heldBits  byte
	heldCount uint
}

// NewReader binds a reader to buf without copying it.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBits returns the next n bits as an unsigned integer, most
// significant bit first, advancing the stream. n must be at most 32 and
// the read must not run past the end of the buffer; either violation is
// a caller bug and panics. Use TryReadBits against untrusted input or
// PeekBits for tolerant lookahead.
func (self *Reader) ReadBits(n uint) (v uint32) {
	if n > 32 {
		panic("bitstream: ReadBits count out of range")
	}

	if n <= self.heldCount {
		v = uint32(self.heldBits >> (self.heldCount - n))
		v &= 1<<n - 1
		self.heldCount -= n
		return
	}

	// all held bits become the top of the result
	n -= self.heldCount
	v = uint32(self.heldBits) & (1<<self.heldCount - 1)
	v <<= n

	// load whole bytes into a left-aligned word, last loaded byte lowest
	load := (n - 1) >> 3
	if self.pos+int(load) >= len(self.buf) {
		panic("bitstream: ReadBits past end of buffer")
	}
	var word uint32
	for i := int(load); i >= 0; i-- {
		word |= uint32(self.buf[self.pos]) << (uint(i) * 8)
		self.pos++
	}

	// the bottom of the freshly loaded word is the new remainder
	nextHeldCount := (32 - n) % 8
	v |= word >> nextHeldCount
	self.heldBits = byte(word)
	self.heldCount = nextHeldCount
	return
}

// PeekBits returns what the next n bits would read as, without moving
// the stream. A lookahead running past the end of the buffer is not an
// error: the missing low bits read as zero. n must be at most 32.
func (self *Reader) PeekBits(n uint) (v uint32) {
	if n > 32 {
		panic("bitstream: PeekBits count out of range")
	}

	savedPos := self.pos
	savedHeldBits := self.heldBits
	savedHeldCount := self.heldCount

	read := n
	if left := uint(self.NumBitsLeft()); read > left {
		read = left
	}
	v = self.ReadBits(read) << (n - read)

	self.pos = savedPos
	self.heldBits = savedHeldBits
	self.heldCount = savedHeldCount
	return
}

// TryReadBits is ReadBits with the precondition checks turned into
// errors, for parsing buffers of untrusted origin. The stream does not
// move when an error is returned.
func (self *Reader) TryReadBits(n uint) (v uint32, err error) {
	if n > 32 {
		err = errors.WithStack(ErrBitCount)
		return
	}
	if int(n) > self.NumBitsLeft() {
		err = errors.WithStack(ErrOverrun)
		return
	}
	v = self.ReadBits(n)
	return
}

// NumBitsLeft returns how many unread bits remain.
func (self *Reader) NumBitsLeft() int {
	return (len(self.buf)-self.pos)*8 + int(self.heldCount)
}

// NumBitsRead returns how many bits have been consumed so far.
func (self *Reader) NumBitsRead() int {
	return self.pos*8 - int(self.heldCount)
}

func (self *Reader) NumBitsUntilByteAligned() uint {
	return self.heldCount & 7
}
