package pio

// Byte-vector helpers for assembling payloads out of borrowed pieces
// without copying until the final join.

func VecLen(vec [][]byte) (n int) {
	for _, b := range vec {
		n += len(b)
	}
	return
}

// VecSliceTo writes the [s,e) window of in into out as subslices of in's
// pieces, returning how many pieces were produced. e < 0 means to the end.
func VecSliceTo(in [][]byte, out [][]byte, s int, e int) (n int) {
	if s < 0 {
		s = 0
	}
	if e >= 0 && e < s {
		panic("pio: VecSlice start > end")
	}

	i := 0
	off := 0
	for s > 0 && i < len(in) {
		skip := s
		if left := len(in[i]); skip > left {
			skip = left
		}
		off += skip
		s -= skip
		e -= skip
		if off == len(in[i]) {
			i++
			off = 0
		}
	}
	if s > 0 {
		panic("pio: VecSlice start out of range")
	}

	for e != 0 && i < len(in) {
		read := len(in[i]) - off
		if e > 0 && e < read {
			read = e
		}
		out[n] = in[i][off : off+read]
		n++
		e -= read
		off += read
		if off == len(in[i]) {
			i++
			off = 0
		}
	}
	if e > 0 {
		panic("pio: VecSlice end out of range")
	}

	return
}

func VecSlice(in [][]byte, s int, e int) (out [][]byte) {
	out = make([][]byte, len(in))
	n := VecSliceTo(in, out, s, e)
	out = out[:n]
	return
}

// VecJoin copies the pieces of vec into one freshly allocated slice.
func VecJoin(vec [][]byte) (b []byte) {
	b = make([]byte, 0, VecLen(vec))
	for _, p := range vec {
		b = append(b, p...)
	}
	return
}
