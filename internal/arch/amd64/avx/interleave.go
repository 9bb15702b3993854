//go:build amd64 && !purego

// Package avx contains the 256-bit stereo interleave kernel for amd64.
package avx

// Width2 is the number of frames Interleave2 consumes per step.
const Width2 = 8

// Interleave2 interleaves whole steps of 8 frames from left and right into
// dst and returns the number of frames written (len(left) rounded down to a
// multiple of 8). Panics if the channel lengths differ or dst is too short.
//
// Each step writes 16 samples with a single 256-bit store.
func Interleave2(dst, left, right []int16) int {
	if len(right) != len(left) || len(dst) < 2*len(left) {
		panic("avx: slice length mismatch")
	}
	if len(left) < Width2 {
		return 0
	}
	return interleave2AVX(dst, left, right)
}

// Assembly function declarations (implemented in interleave_amd64.s)

//go:noescape
func interleave2AVX(dst, left, right []int16) int
