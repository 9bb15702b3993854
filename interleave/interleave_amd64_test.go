//go:build amd64 && !purego

package interleave

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-interleave/cpu"
)

func TestKernelSelectionAMD64(t *testing.T) {
	sse2 := cpu.Features{HasSSE2: true}
	avx := cpu.Features{HasSSE2: true, HasOSXSAVE: true, HasOSAVXState: true, HasAVX: true}
	avx2 := avx
	avx2.HasAVX2 = true

	tests := []struct {
		name       string
		features   cpu.Features
		stereo     string
		stereoW    int
		quad       string
		quadW      int
		stereoTier cpu.SIMDLevel
	}{
		{"none", cpu.Features{}, "generic", 1, "generic", 1, cpu.SIMDNone},
		{"sse2", sse2, "sse2", 8, "sse2", 4, cpu.SIMDSSE2},
		{"avx", avx, "avx", 8, "sse2", 4, cpu.SIMDAVX},
		{"avx2", avx2, "avx", 8, "sse2", 4, cpu.SIMDAVX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(WithFeatures(tt.features))

			s, _ := d.Kernel(2)
			q, _ := d.Kernel(4)
			assert.Equal(t, tt.stereo, s.Name)
			assert.Equal(t, tt.stereoW, s.Width)
			assert.Equal(t, tt.stereoTier, s.Level)
			assert.Equal(t, tt.quad, q.Name)
			assert.Equal(t, tt.quadW, q.Width)
		})
	}
}

func TestMaxLevelSSE2OnHost(t *testing.T) {
	d := New(WithMaxLevel(cpu.SIMDSSE2))

	assert.False(t, d.Features().HasAVX)
	s, _ := d.Kernel(2)
	assert.Equal(t, "sse2", s.Name)
}

func TestMaxLevelNoneOnHost(t *testing.T) {
	d := New(WithMaxLevel(cpu.SIMDNone))

	for _, c := range []int{2, 4} {
		info, _ := d.Kernel(c)
		assert.Equal(t, "generic", info.Name)
	}
}
