//go:build amd64 && !purego

package cpu

import "runtime"

// hostX86 issues the real CPUID and XGETBV instructions.
type hostX86 struct{}

func (hostX86) cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpuid(leaf, subleaf)
}

func (hostX86) xgetbv(index uint32) (eax, edx uint32) {
	return xgetbv(index)
}

// probeImpl performs CPU feature detection on amd64 systems.
//
// The CPUID and XCR0 bits are decoded by decodeX86 from the table in x86.go.
func probeImpl() Features {
	f := decodeX86(hostX86{})
	f.Architecture = runtime.GOARCH
	return f
}

// cpuid executes the CPUID instruction with the given EAX and ECX inputs.
// Returns EAX, EBX, ECX, EDX outputs.
// Defined in cpuid_amd64.s
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

// xgetbv reads the extended control register selected by index.
// Must only be called when CPUID reports OSXSAVE.
// Defined in cpuid_amd64.s
func xgetbv(index uint32) (eax, edx uint32)
