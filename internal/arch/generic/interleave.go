// Package generic contains the scalar interleave kernels.
//
// They are the correctness reference for the vector kernels and handle the
// frames left over after the last whole vector step.
package generic

// Sample is the set of element types the scalar kernels accept.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~float32 | ~float64
}

// Interleave2 interleaves two channels: dst[2i] = left[i], dst[2i+1] = right[i].
// Panics if the channel lengths differ or dst is shorter than 2*len(left).
// Returns the number of frames written, always len(left).
func Interleave2(dst, left, right []int16) int {
	n := len(left)
	if len(right) != n || len(dst) < 2*n {
		panic("generic: slice length mismatch")
	}
	dst = dst[:2*n]
	right = right[:n]
	for i, l := range left {
		dst[2*i] = l
		dst[2*i+1] = right[i]
	}
	return n
}

// Interleave4 interleaves four channels: dst[4i+c] = c_c[i].
// Panics if the channel lengths differ or dst is shorter than 4*len(c0).
// Returns the number of frames written, always len(c0).
func Interleave4(dst, c0, c1, c2, c3 []int16) int {
	n := len(c0)
	if len(c1) != n || len(c2) != n || len(c3) != n || len(dst) < 4*n {
		panic("generic: slice length mismatch")
	}
	dst = dst[:4*n]
	c1, c2, c3 = c1[:n], c2[:n], c3[:n]
	for i, s := range c0 {
		frame := dst[4*i : 4*i+4 : 4*i+4]
		frame[0] = s
		frame[1] = c1[i]
		frame[2] = c2[i]
		frame[3] = c3[i]
	}
	return n
}

// Interleave interleaves any number of equal-length channels:
// dst[k*C+c] = channels[c][k] with C = len(channels).
// Panics if the channel lengths differ or dst is too short.
func Interleave[T Sample](dst []T, channels [][]T) {
	c := len(channels)
	if c == 0 {
		return
	}
	n := len(channels[0])
	for _, ch := range channels {
		if len(ch) != n {
			panic("generic: slice length mismatch")
		}
	}
	if len(dst) < n*c {
		panic("generic: slice length mismatch")
	}

	for k := 0; k < n; k++ {
		frame := dst[k*c : k*c+c : k*c+c]
		for j, ch := range channels {
			frame[j] = ch[k]
		}
	}
}
