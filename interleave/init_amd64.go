//go:build amd64 && !purego

package interleave

// This file imports amd64-specific kernel packages to trigger
// their init() functions, which register kernels with the global registry.

import (
	// Generic kernels (pure Go fallback)
	_ "github.com/cwbudde/algo-interleave/internal/arch/generic"

	// AMD64 kernels
	_ "github.com/cwbudde/algo-interleave/internal/arch/amd64/avx"
	_ "github.com/cwbudde/algo-interleave/internal/arch/amd64/sse2"
)
