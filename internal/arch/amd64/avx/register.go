//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/algo-interleave/cpu"
	"github.com/cwbudde/algo-interleave/internal/arch/registry"
)

// init registers the AVX stereo kernel with the registry.
//
// The kernel needs VEX-encoded 128-bit unpacks, VINSERTF128 and 256-bit
// stores, all AVX1. It is only eligible when the OS saves YMM state.
// There is no four-channel kernel at this level; LookupChannels falls
// through to SSE2 for that.
//
// Priority: 15 (preferred over SSE2 and generic when available)
func init() {
	registry.Global.Register(registry.KernelEntry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  15,

		Interleave2: Interleave2,
		Width2:      Width2,
	})
}
