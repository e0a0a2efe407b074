package bitstream

import (
	"io"

	"github.com/tyrese/bitstream/pio"
)

// StreamWriter emits bits MSB-first to an io.Writer, for callers that
// sink straight to a file or socket instead of an owned buffer. Call
// FlushBits when done, or the trailing partial word is lost.
type StreamWriter struct {
	W    io.Writer
	n    uint
	bits uint64
}

// WriteBits64 appends the low n bits of v, most significant bit first.
// n must be at most 64.
func (self *StreamWriter) WriteBits64(v uint64, n uint) (err error) {
	if n > 64 {
		panic("bitstream: WriteBits64 count out of range")
	}
	if n < 64 {
		v &= 1<<n - 1
	}
	if self.n+n > 64 {
		// top up the accumulator with the high bits of v and flush it
		move := 64 - self.n
		self.bits = self.bits<<move | v>>(n-move)
		self.n = 64
		if err = self.FlushBits(); err != nil {
			return
		}
		n -= move
		v &= 1<<n - 1
	}
	self.bits = self.bits<<n | v
	self.n += n
	return
}

func (self *StreamWriter) WriteBits(v uint32, n uint) (err error) {
	if n > 32 {
		panic("bitstream: WriteBits count out of range")
	}
	return self.WriteBits64(uint64(v), n)
}

// Write spreads p over the bit stream; bytes land unshifted when the
// stream happens to be byte aligned.
func (self *StreamWriter) Write(p []byte) (n int, err error) {
	for n < len(p) {
		if err = self.WriteBits64(uint64(p[n]), 8); err != nil {
			return
		}
		n++
	}
	return
}

// FlushBits pads the pending bits with zeros up to a byte boundary and
// writes them out.
func (self *StreamWriter) FlushBits() (err error) {
	if self.n == 0 {
		return
	}
	bits := self.bits
	if self.n%8 != 0 {
		bits <<= 8 - self.n%8
	}
	want := (self.n + 7) / 8
	var b [8]byte
	pio.PutU64BE(b[:], bits)
	if _, err = self.W.Write(b[8-want:]); err != nil {
		return
	}
	self.bits = 0
	self.n = 0
	return
}

// StreamReader pulls bits MSB-first from an io.Reader. A short source
// surfaces as io.EOF or io.ErrUnexpectedEOF from the underlying read.
type StreamReader struct {
	R    io.Reader
	n    uint
	bits uint64
}

// ReadBits64 returns the next n bits, most significant bit first. n must
// be at most 64.
func (self *StreamReader) ReadBits64(n uint) (v uint64, err error) {
	if n > 64 {
		panic("bitstream: ReadBits64 count out of range")
	}
	if n <= self.n {
		shift := self.n - n
		v = self.bits >> shift
		self.bits &= 1<<shift - 1
		self.n = shift
		return
	}

	v = self.bits
	n -= self.n

	var b [8]byte
	want := int(n+7) / 8
	if _, err = io.ReadFull(self.R, b[:want]); err != nil {
		v = 0
		return
	}
	var word uint64
	for i := 0; i < want; i++ {
		word = word<<8 | uint64(b[i])
	}

	left := uint(want)*8 - n
	v = v<<n | word>>left
	self.bits = word & (1<<left - 1)
	self.n = left
	return
}

func (self *StreamReader) ReadBits(n uint) (v uint32, err error) {
	if n > 32 {
		panic("bitstream: ReadBits count out of range")
	}
	var v64 uint64
	if v64, err = self.ReadBits64(n); err != nil {
		return
	}
	v = uint32(v64)
	return
}

// Read fills p from the bit stream, zero-shifted when byte aligned.
func (self *StreamReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		want := len(p) - n
		if want > 8 {
			want = 8
		}
		var bits uint64
		if bits, err = self.ReadBits64(uint(want) * 8); err != nil {
			return
		}
		for i := 0; i < want; i++ {
			p[n+i] = byte(bits >> (uint(want-i-1) * 8))
		}
		n += want
	}
	return
}
