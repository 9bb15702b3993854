package testutil

import "testing"

// Reference interleaves channels by walking the output index:
// out[i] = channels[i%C][i/C]. It shares no code with the kernels.
func Reference(channels [][]int16) []int16 {
	c := len(channels)
	if c == 0 {
		return nil
	}
	out := make([]int16, c*len(channels[0]))
	for i := range out {
		out[i] = channels[i%c][i/c]
	}
	return out
}

// FirstMismatch returns the first index at which a and b differ, or -1 if
// they are equal. Slices of different length differ at the shorter length.
func FirstMismatch(a, b []int16) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// RequireEqual fails t at the first element where got and want differ.
// channels is the interleave width used to report the frame and channel.
func RequireEqual(t testing.TB, got, want []int16, channels int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if i := FirstMismatch(got, want); i >= 0 {
		t.Fatalf("index %d (frame %d, channel %d): got %#04x, want %#04x",
			i, i/channels, i%channels, uint16(got[i]), uint16(want[i]))
	}
}

// Fill sets every element of s to v.
func Fill(s []int16, v int16) {
	for i := range s {
		s[i] = v
	}
}
