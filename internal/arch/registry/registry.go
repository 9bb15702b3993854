// Package registry provides the implementation registry for interleave kernels.
//
// The registry-based dispatch system allows multiple kernel variants
// (generic, SSE2, AVX, etc.) to coexist. The best variant for the current
// CPU is selected at runtime, separately for each channel count.
//
// Architecture-specific packages register themselves via init() functions,
// and the interleave package uses the registry to resolve its kernels once,
// when a dispatcher is built.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-interleave/cpu"
)

// Interleave2Func interleaves two channels into dst and returns the number of
// frames written. Vector kernels write whole steps only and leave the
// remaining len(left) % width frames for the caller.
type Interleave2Func func(dst, left, right []int16) int

// Interleave4Func interleaves four channels into dst and returns the number
// of frames written, with the same whole-step rule as Interleave2Func.
type Interleave4Func func(dst, c0, c1, c2, c3 []int16) int

// KernelEntry represents a registered kernel variant.
//
// Not all kernel fields need to be populated - only implement the channel
// counts available at that SIMD level. A nil kernel makes Lookup fall
// through to the next compatible entry for that channel count.
type KernelEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "avx", "sse2").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - AVX/NEON: 15
	//   - AVX2: 20
	Priority int

	// Interleave2 writes out[2i]=left[i], out[2i+1]=right[i].
	Interleave2 Interleave2Func

	// Width2 is the number of frames Interleave2 consumes per step.
	Width2 int

	// Interleave4 writes out[4i+c]=ch_c[i].
	Interleave4 Interleave4Func

	// Width4 is the number of frames Interleave4 consumes per step.
	Width4 int
}

// Has reports whether the entry provides a kernel for the channel count.
func (e *KernelEntry) Has(channels int) bool {
	switch channels {
	case 2:
		return e.Interleave2 != nil
	case 4:
		return e.Interleave4 != nil
	default:
		return false
	}
}

// Width returns the step width of the kernel for the channel count, or 0.
func (e *KernelEntry) Width(channels int) int {
	switch channels {
	case 2:
		return e.Width2
	case 4:
		return e.Width4
	default:
		return 0
	}
}

// KernelRegistry manages the registration and lookup of kernel variants.
//
// Implementations register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority implementation compatible with the current CPU.
type KernelRegistry struct {
	mu      sync.RWMutex
	entries []KernelEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the interleave package.
var Global = &KernelRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in architecture-specific
// implementation packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Lookup().
func (r *KernelRegistry) Register(entry KernelEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, regardless of
// which kernels it carries. Returns nil if nothing compatible is registered.
func (r *KernelRegistry) Lookup(features cpu.Features) *KernelEntry {
	return r.lookup(features, func(*KernelEntry) bool { return true })
}

// LookupChannels finds the highest-priority entry compatible with the CPU
// that provides a kernel for the given channel count.
//
// Returns nil if no such entry exists (which should never happen for 2 or 4
// channels if the generic fallback is registered).
func (r *KernelRegistry) LookupChannels(features cpu.Features, channels int) *KernelEntry {
	return r.lookup(features, func(e *KernelEntry) bool { return e.Has(channels) })
}

func (r *KernelRegistry) lookup(features cpu.Features, accept func(*KernelEntry) bool) *KernelEntry {
	// Sort and scan under one lock; Register may run concurrently.
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) && accept(entry) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *KernelRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~3-5 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *KernelRegistry) ListEntries() []KernelEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]KernelEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *KernelRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
