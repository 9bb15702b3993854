//go:build amd64 && !purego

// Package sse2 contains 128-bit interleave kernels for amd64.
package sse2

const (
	// Width2 is the number of frames Interleave2 consumes per step.
	Width2 = 8

	// Width4 is the number of frames Interleave4 consumes per step.
	Width4 = 4
)

// Interleave2 interleaves whole steps of 8 frames from left and right into
// dst and returns the number of frames written (len(left) rounded down to a
// multiple of 8). Panics if the channel lengths differ or dst is too short.
func Interleave2(dst, left, right []int16) int {
	if len(right) != len(left) || len(dst) < 2*len(left) {
		panic("sse2: slice length mismatch")
	}
	if len(left) < Width2 {
		return 0
	}
	return interleave2SSE2(dst, left, right)
}

// Interleave4 interleaves whole steps of 4 frames from four channels into
// dst and returns the number of frames written (len(c0) rounded down to a
// multiple of 4). Panics if the channel lengths differ or dst is too short.
//
// Each step pairs channels 0&1 and 2&3 with word unpacks, then merges the
// two pairs with dword unpacks.
func Interleave4(dst, c0, c1, c2, c3 []int16) int {
	n := len(c0)
	if len(c1) != n || len(c2) != n || len(c3) != n || len(dst) < 4*n {
		panic("sse2: slice length mismatch")
	}
	if n < Width4 {
		return 0
	}
	return interleave4SSE2(dst, c0, c1, c2, c3)
}

// Assembly function declarations (implemented in interleave_amd64.s)

//go:noescape
func interleave2SSE2(dst, left, right []int16) int

//go:noescape
func interleave4SSE2(dst, c0, c1, c2, c3 []int16) int
