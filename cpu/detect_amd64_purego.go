//go:build amd64 && purego

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// probeImpl performs CPU feature detection on amd64 systems without assembly.
//
// golang.org/x/sys/cpu runs the same CPUID/XGETBV sequence internally and
// folds the XCR0 check into HasAVX. MMX and SSE are part of the x86-64 baseline.
func probeImpl() Features {
	f := Features{
		HasMMX:        true,
		HasSSE:        true,
		HasSSE2:       cpu.X86.HasSSE2,
		HasSSE3:       cpu.X86.HasSSE3,
		HasSSSE3:      cpu.X86.HasSSSE3,
		HasSSE41:      cpu.X86.HasSSE41,
		HasSSE42:      cpu.X86.HasSSE42,
		HasOSXSAVE:    cpu.X86.HasOSXSAVE,
		HasOSAVXState: cpu.X86.HasAVX,
		HasAVX:        cpu.X86.HasAVX,
		HasAVX2:       cpu.X86.HasAVX2,
		Architecture:  runtime.GOARCH,
	}
	f.normalize()
	return f
}
