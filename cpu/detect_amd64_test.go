//go:build amd64 && !purego

package cpu

import (
	"testing"

	kcpuid "github.com/klauspost/cpuid/v2"
	"github.com/stretchr/testify/assert"
	xcpu "golang.org/x/sys/cpu"
)

// The raw probe must agree with the two independent CPUID decoders in the
// dependency graph on every tier used for kernel selection.
func TestProbeMatchesXSysCPU(t *testing.T) {
	f := Probe()

	assert.Equal(t, xcpu.X86.HasSSE2, f.HasSSE2, "SSE2")
	assert.Equal(t, xcpu.X86.HasOSXSAVE, f.HasOSXSAVE, "OSXSAVE")
	assert.Equal(t, xcpu.X86.HasAVX, f.HasAVX, "AVX")
	assert.Equal(t, xcpu.X86.HasAVX2, f.HasAVX2, "AVX2")
}

func TestProbeMatchesKlauspostCPUID(t *testing.T) {
	f := Probe()

	assert.Equal(t, kcpuid.CPU.Supports(kcpuid.SSE2), f.HasSSE2, "SSE2")
	assert.Equal(t, kcpuid.CPU.Supports(kcpuid.AVX), f.HasAVX, "AVX")
	assert.Equal(t, kcpuid.CPU.Supports(kcpuid.AVX2), f.HasAVX2, "AVX2")
	if kcpuid.CPU.VendorString != "" {
		assert.Equal(t, kcpuid.CPU.VendorString, f.Vendor)
	}
}

func TestHostXGETBVOnlyWithOSXSAVE(t *testing.T) {
	_, _, ecx, _ := cpuid(leafFeatures, 0)
	if ecx&ecxOSXSAVE == 0 {
		t.Skip("OSXSAVE not enabled on this host")
	}
	eax, _ := xgetbv(xcr0Selector)
	assert.Equal(t, eax&xcr0AVXState == xcr0AVXState, Probe().HasOSAVXState)
}
