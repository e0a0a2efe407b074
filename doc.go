/*

Package bitstream implements the MSB-first bit level input and output
that block based video codecs build their syntax parsing on.

Writer accumulates bits into a byte buffer it owns, carrying sub-byte
remainders between calls, with byte alignment padding and splicing of one
aligned stream into another. Reader consumes bits from a byte buffer it
borrows, symmetric to Writer, and PeekBits looks ahead without moving the
stream, treating bits past the end of the buffer as zero.

Within each byte the most significant bit is the earliest one written or
read, and bytes appear in the order the bits were requested. Writing
0b101 with width 3 and then 0b0 with width 5 produces the single byte
0b10100000.

StreamWriter and StreamReader carry the same bit order over io.Writer
and io.Reader for callers that stream instead of buffering.

*/
package bitstream
