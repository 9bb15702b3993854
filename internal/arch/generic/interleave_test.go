package generic

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-interleave/internal/testutil"
)

func TestInterleave2(t *testing.T) {
	sizes := []int{0, 1, 2, 7, 8, 9, 100}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			chans := testutil.Channels(2, n)
			dst := make([]int16, 2*n)

			if got := Interleave2(dst, chans[0], chans[1]); got != n {
				t.Fatalf("Interleave2 returned %d, want %d", got, n)
			}
			testutil.RequireEqual(t, dst, testutil.Reference(chans), 2)
		})
	}
}

func TestInterleave4(t *testing.T) {
	sizes := []int{0, 1, 3, 4, 5, 64}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			chans := testutil.Channels(4, n)
			dst := make([]int16, 4*n)

			if got := Interleave4(dst, chans[0], chans[1], chans[2], chans[3]); got != n {
				t.Fatalf("Interleave4 returned %d, want %d", got, n)
			}
			testutil.RequireEqual(t, dst, testutil.Reference(chans), 4)
		})
	}
}

func TestInterleaveArbitraryChannels(t *testing.T) {
	for c := 1; c <= 8; c++ {
		t.Run(fmt.Sprintf("c=%d", c), func(t *testing.T) {
			chans := testutil.Channels(c, 33)
			dst := make([]int16, c*33)

			Interleave(dst, chans)

			testutil.RequireEqual(t, dst, testutil.Reference(chans), c)
		})
	}
}

func TestInterleaveFloat64(t *testing.T) {
	left := []float64{0.5, -0.25, 1}
	right := []float64{-1, 0.75, 0}
	dst := make([]float64, 6)

	Interleave(dst, [][]float64{left, right})

	want := []float64{0.5, -1, -0.25, 0.75, 1, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestInterleaveLeavesDestinationTail(t *testing.T) {
	chans := testutil.Channels(2, 3)
	dst := make([]int16, 8)
	testutil.Fill(dst, -1)

	Interleave2(dst, chans[0], chans[1])

	if dst[6] != -1 || dst[7] != -1 {
		t.Errorf("wrote past 2*n: %v", dst[6:])
	}
}

func TestInterleavePanicsOnMismatch(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"stereo lengths", func() { Interleave2(make([]int16, 8), make([]int16, 4), make([]int16, 3)) }},
		{"stereo dst", func() { Interleave2(make([]int16, 7), make([]int16, 4), make([]int16, 4)) }},
		{"quad lengths", func() {
			Interleave4(make([]int16, 16), make([]int16, 4), make([]int16, 4), make([]int16, 4), make([]int16, 5))
		}},
		{"arbitrary dst", func() { Interleave(make([]int16, 5), [][]int16{{1, 2}, {3, 4}, {5, 6}}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func BenchmarkInterleave2(b *testing.B) {
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
