//go:build amd64 && !purego

package avx

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-interleave/cpu"
	"github.com/cwbudde/algo-interleave/internal/arch/generic"
	"github.com/cwbudde/algo-interleave/internal/testutil"
)

func requireAVX(tb testing.TB) {
	tb.Helper()
	if !cpu.Probe().HasAVX {
		tb.Skip("AVX not available on this CPU/OS")
	}
}

// TestInterleave2_AVX compares the vector steps against the scalar kernel.
func TestInterleave2_AVX(t *testing.T) {
	requireAVX(t)

	sizes := []int{0, 1, 7, 8, 9, 15, 16, 17, 64, 100, 1000}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			chans := testutil.NoiseChannels(int64(n), 2, n)
			got := make([]int16, 2*n)
			want := make([]int16, 2*n)

			done := Interleave2(got, chans[0], chans[1])
			if done != n-n%Width2 {
				t.Fatalf("Interleave2 returned %d, want %d", done, n-n%Width2)
			}
			generic.Interleave2(want, chans[0], chans[1])

			testutil.RequireEqual(t, got[:2*done], want[:2*done], 2)
			for i := 2 * done; i < len(got); i++ {
				if got[i] != 0 {
					t.Fatalf("index %d beyond the vector steps was written: %#x", i, got[i])
				}
			}
		})
	}
}

func TestInterleave2_AVX_Ordering(t *testing.T) {
	requireAVX(t)

	left := []int16{10, 20, 30, 40, 50, 60, 70, 80}
	right := []int16{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]int16, 16)

	if done := Interleave2(dst, left, right); done != 8 {
		t.Fatalf("Interleave2 returned %d, want 8", done)
	}

	want := []int16{10, 1, 20, 2, 30, 3, 40, 4, 50, 5, 60, 6, 70, 7, 80, 8}
	testutil.RequireEqual(t, dst, want, 2)
}

func TestInterleave2_AVX_Unaligned(t *testing.T) {
	requireAVX(t)

	backing := testutil.NoiseChannels(11, 2, 70)
	left, right := backing[0][1:65], backing[1][6:70]
	out := make([]int16, 2*64+3)
	dst := out[3:]

	Interleave2(dst, left, right)

	testutil.RequireEqual(t, dst, testutil.Reference([][]int16{left, right}), 2)
}

func BenchmarkInterleave2_AVX(b *testing.B) {
	requireAVX(b)

	for _, n := range []int{64, 1024, 4096} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			chans := testutil.NoiseChannels(1, 2, n)
			dst := make([]int16, 2*n)

			b.ReportAllocs()
			b.SetBytes(int64(n) * 2 * 2)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Interleave2(dst, chans[0], chans[1])
			}
		})
	}
}
