package bitstream

import (
	"errors"
)

var (
	// ErrBitCount reports a per-call bit count outside [0,32].
	ErrBitCount = errors.New("bitstream: bit count out of range")

	// ErrOverrun reports a checked read that would consume bytes past the
	// end of the borrowed buffer, typically a truncated input stream.
	ErrOverrun = errors.New("bitstream: read past end of buffer")
)
