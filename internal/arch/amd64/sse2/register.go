//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-interleave/cpu"
	"github.com/cwbudde/algo-interleave/internal/arch/registry"
)

// init registers the SSE2 kernels with the registry.
//
// SSE2 provides 128-bit integer unpack instructions and is part of the
// x86-64 baseline, so these kernels are available on every amd64 CPU.
//
// Priority: 10 (preferred over generic, below the 256-bit AVX stereo kernel)
func init() {
	registry.Global.Register(registry.KernelEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Interleave2: Interleave2,
		Width2:      Width2,
		Interleave4: Interleave4,
		Width4:      Width4,
	})
}
