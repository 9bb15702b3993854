package generic

import (
	"github.com/cwbudde/algo-interleave/cpu"
	"github.com/cwbudde/algo-interleave/internal/arch/registry"
)

// init registers the generic (pure Go) kernels with the registry.
//
// Generic kernels serve as the baseline fallback when no SIMD kernel is
// available or when ForceGeneric is enabled for testing. Their width is 1, so
// the dispatcher never splits off a remainder for them.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.KernelEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Interleave2: Interleave2,
		Width2:      1,
		Interleave4: Interleave4,
		Width4:      1,
	})
}
