//go:build purego || !amd64

package interleave

// This file imports the generic kernels for builds without assembly.

import (
	// Generic kernels (pure Go fallback)
	_ "github.com/cwbudde/algo-interleave/internal/arch/generic"
)
