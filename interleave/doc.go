// Package interleave merges per-channel int16 sample buffers into a single
// interleaved buffer, using the fastest kernel the CPU supports.
//
// For C channels of n samples each, the output satisfies
//
//	dst[k*C + c] == channels[c][k]
//
// for every channel c and sample k, regardless of which kernel ran.
//
// # Kernel selection
//
// A Dispatcher resolves one kernel per supported channel count when it is
// built:
//
//   - 2 channels: the 256-bit AVX kernel if available, else SSE2, else scalar
//   - 4 channels: the 128-bit SSE2 kernel if available, else scalar
//
// Vector kernels consume 8 (stereo) or 4 (quad) frames per step. Frames left
// over after the last whole step are written by the scalar kernel into the
// matching tail of dst, so every frame is written exactly once.
//
// # Usage
//
//	dst := make([]int16, 2*len(left))
//	if err := interleave.Interleave(dst, left, right); err != nil {
//	    // programming error: mismatched lengths or short dst
//	}
//
// Frames interleaves any number of channels of any Sample type with the
// scalar kernel.
//
// # Thread Safety
//
// A Dispatcher is immutable once built. All functions in this package are
// safe for concurrent use on disjoint buffers and do not allocate.
package interleave
