package interleave

import (
	"log/slog"

	"github.com/cwbudde/algo-interleave/cpu"
	"github.com/cwbudde/algo-interleave/internal/arch/registry"
)

// config holds Dispatcher construction settings.
type config struct {
	features    cpu.Features
	hasFeatures bool
	maxLevel    cpu.SIMDLevel
	hasMaxLevel bool
	logger      *slog.Logger
	registry    *registry.KernelRegistry
}

// Option mutates the Dispatcher configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		logger:   slog.Default(),
		registry: registry.Global,
	}
}

// WithFeatures selects kernels for f instead of cpu.DetectFeatures().
// Passing features the CPU lacks will crash on the first call; it is meant
// for narrowing the selection, and for tests.
func WithFeatures(f cpu.Features) Option {
	return func(cfg *config) {
		cfg.features = f
		cfg.hasFeatures = true
	}
}

// WithMaxLevel caps kernel selection at level.
func WithMaxLevel(level cpu.SIMDLevel) Option {
	return func(cfg *config) {
		cfg.maxLevel = level
		cfg.hasMaxLevel = true
	}
}

// WithLogger sets the logger that records the kernel selection.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// withRegistry resolves kernels from r instead of registry.Global.
func withRegistry(r *registry.KernelRegistry) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.registry = r
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
