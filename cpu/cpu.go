// Package cpu provides CPU feature detection for interleave kernel selection.
//
// This package detects which vector instruction tiers (SSE2, AVX, AVX2, NEON)
// are both implemented by the processor and enabled by the operating system,
// and caches the results for efficient querying.
//
// Probe reads live hardware state on every call. DetectFeatures performs the
// probe lazily on first use and caches the result with sync.Once; the
// descriptor cannot change during the lifetime of a process.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel represents a vector instruction tier.
// Higher numeric values indicate wider vectors within one architecture,
// but levels are not comparable across architectures (e.g., AVX vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (scalar Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (128-bit vectors, baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX with OS-enabled YMM state (256-bit vectors).
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2 (256-bit integer operations).
	SIMDAVX2

	// SIMDNEON indicates ARM NEON / Advanced SIMD (128-bit vectors).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// ParseLevel parses a level name such as "sse2" or "avx".
// "none", "generic" and "scalar" all select SIMDNone.
func ParseLevel(s string) (SIMDLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "generic", "scalar":
		return SIMDNone, true
	case "sse2":
		return SIMDSSE2, true
	case "avx":
		return SIMDAVX, true
	case "avx2":
		return SIMDAVX2, true
	case "neon":
		return SIMDNEON, true
	default:
		return SIMDNone, false
	}
}

// Features describes CPU capabilities relevant to interleave kernel selection.
//
// The x86 flags form a chain (MMX, SSE, SSE2, SSE3, SSSE3, SSE4.1, SSE4.2,
// AVX, AVX2): a flag is never set unless every flag before it is set.
type Features struct {
	// x86/amd64 SIMD features
	HasMMX   bool
	HasSSE   bool
	HasSSE2  bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasSSE3  bool
	HasSSSE3 bool
	HasSSE41 bool
	HasSSE42 bool
	HasAVX   bool // AVX, implemented by the CPU and enabled by the OS
	HasAVX2  bool // AVX2, implies HasAVX

	// HasOSXSAVE reports that the OS has set CR4.OSXSAVE, which makes XGETBV usable.
	HasOSXSAVE bool

	// HasOSAVXState reports that XCR0 enables both XMM and YMM state saving.
	HasOSAVXState bool

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Disable all SIMD optimizations (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
	Vendor       string // CPUID vendor string on x86, empty elsewhere
}

// Level returns the highest tier usable with these features.
func (f Features) Level() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// Limit returns a copy of f with every tier above max cleared.
// Limit never enables a tier that f does not report.
func (f Features) Limit(max SIMDLevel) Features {
	switch max {
	case SIMDNone:
		f.ForceGeneric = true
	case SIMDSSE2:
		f.clearX86From(&f.HasAVX)
		f.HasNEON = false
	case SIMDAVX:
		f.clearX86From(&f.HasAVX2)
		f.HasNEON = false
	case SIMDAVX2:
		f.HasNEON = false
	case SIMDNEON:
		f.clearX86From(&f.HasSSE2)
	}
	return f
}

// x86Chain lists the x86 tier flags in capability order.
func (f *Features) x86Chain() []*bool {
	return []*bool{
		&f.HasMMX, &f.HasSSE, &f.HasSSE2, &f.HasSSE3, &f.HasSSSE3,
		&f.HasSSE41, &f.HasSSE42, &f.HasAVX, &f.HasAVX2,
	}
}

// normalize clears every x86 flag that follows an unset one.
func (f *Features) normalize() {
	if !(f.HasOSXSAVE && f.HasOSAVXState) {
		f.HasAVX = false
	}
	missing := false
	for _, flag := range f.x86Chain() {
		if missing {
			*flag = false
			continue
		}
		missing = !*flag
	}
}

// clearX86From clears from and every x86 flag after it in the chain.
func (f *Features) clearX86From(from *bool) {
	clearing := false
	for _, flag := range f.x86Chain() {
		if flag == from {
			clearing = true
		}
		if clearing {
			*flag = false
		}
	}
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// Probe queries the processor and returns a fresh descriptor.
//
// Probe never fails; on hardware it cannot interpret it reports the scalar
// tier only. Most callers want DetectFeatures, which caches this result.
func Probe() Features {
	return probeImpl()
}

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// The level named by the ALGO_INTERLEAVE_SIMD environment variable, if set,
// caps the cached result. This function is thread-safe.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = applyEnvOverride(Probe())
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasAVX returns true if the CPU supports AVX and the OS saves YMM state.
func HasAVX() bool {
	return DetectFeatures().HasAVX
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
// The kernel registry uses it to decide which implementations are eligible.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
