package interleave

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cwbudde/algo-interleave/cpu"
	"github.com/cwbudde/algo-interleave/internal/arch/generic"
	"github.com/cwbudde/algo-interleave/internal/arch/registry"
)

// KernelInfo describes the kernel a Dispatcher uses for one channel count.
type KernelInfo struct {
	Name     string        // registry name, e.g. "avx", "sse2", "generic"
	Level    cpu.SIMDLevel // tier the kernel requires
	Channels int
	Width    int // frames per vector step; 1 for the scalar kernel
}

type stereoKernel struct {
	info KernelInfo
	fn   registry.Interleave2Func
}

type quadKernel struct {
	info KernelInfo
	fn   registry.Interleave4Func
}

// Dispatcher routes interleave calls to the kernels chosen for its features.
// The zero value is not usable; build one with New.
type Dispatcher struct {
	features cpu.Features
	stereo   stereoKernel
	quad     quadKernel
}

// New returns a Dispatcher whose kernels are resolved once, from
// cpu.DetectFeatures() unless WithFeatures is given.
func New(opts ...Option) *Dispatcher {
	cfg := applyOptions(opts...)

	features := cfg.features
	if !cfg.hasFeatures {
		features = cpu.DetectFeatures()
	}
	if cfg.hasMaxLevel {
		features = features.Limit(cfg.maxLevel)
	}

	d := resolve(cfg.registry, features)

	cfg.logger.Debug("interleave: kernels selected",
		slog.String("level", features.Level().String()),
		slog.String("stereo", d.stereo.info.Name),
		slog.Int("stereo_width", d.stereo.info.Width),
		slog.String("quad", d.quad.info.Name),
		slog.Int("quad_width", d.quad.info.Width),
	)

	return &d
}

func resolve(r *registry.KernelRegistry, features cpu.Features) Dispatcher {
	d := Dispatcher{
		features: features,
		stereo: stereoKernel{
			info: KernelInfo{Name: "generic", Level: cpu.SIMDNone, Channels: 2, Width: 1},
			fn:   generic.Interleave2,
		},
		quad: quadKernel{
			info: KernelInfo{Name: "generic", Level: cpu.SIMDNone, Channels: 4, Width: 1},
			fn:   generic.Interleave4,
		},
	}

	if e := r.LookupChannels(features, 2); e != nil && e.Width(2) > 0 {
		d.stereo = stereoKernel{
			info: KernelInfo{Name: e.Name, Level: e.SIMDLevel, Channels: 2, Width: e.Width(2)},
			fn:   e.Interleave2,
		}
	}
	if e := r.LookupChannels(features, 4); e != nil && e.Width(4) > 0 {
		d.quad = quadKernel{
			info: KernelInfo{Name: e.Name, Level: e.SIMDLevel, Channels: 4, Width: e.Width(4)},
			fn:   e.Interleave4,
		}
	}

	return d
}

// Features returns the descriptor the kernels were selected for.
func (d *Dispatcher) Features() cpu.Features {
	return d.features
}

// Kernel reports the kernel used for the given channel count.
// ok is false for unsupported channel counts.
func (d *Dispatcher) Kernel(channels int) (info KernelInfo, ok bool) {
	switch channels {
	case 2:
		return d.stereo.info, true
	case 4:
		return d.quad.info, true
	default:
		return KernelInfo{}, false
	}
}

// Interleave writes the n frames of channels into dst[:n*C], where
// n = len(channels[0]) and C = len(channels), which must be 2 or 4.
//
// It returns an error wrapping ErrInvalidArgument, without writing anything,
// if the channel count is unsupported, the channels differ in length, or dst
// holds fewer than n*C samples.
func (d *Dispatcher) Interleave(dst []int16, channels ...[]int16) error {
	if c := len(channels); c != 2 && c != 4 {
		return fmt.Errorf("%w: %d channels, want 2 or 4", ErrInvalidArgument, c)
	}
	n, err := validate(dst, channels)
	if err != nil {
		return err
	}

	if len(channels) == 2 {
		d.interleave2(dst, channels[0], channels[1], n)
	} else {
		d.interleave4(dst, channels[0], channels[1], channels[2], channels[3], n)
	}
	return nil
}

func (d *Dispatcher) interleave2(dst, left, right []int16, n int) {
	done := 0
	if bulk := n - n%d.stereo.info.Width; bulk > 0 {
		done = d.stereo.fn(dst[:2*bulk], left[:bulk], right[:bulk])
	}
	if done < n {
		generic.Interleave2(dst[2*done:2*n], left[done:n], right[done:n])
	}
}

func (d *Dispatcher) interleave4(dst, c0, c1, c2, c3 []int16, n int) {
	done := 0
	if bulk := n - n%d.quad.info.Width; bulk > 0 {
		done = d.quad.fn(dst[:4*bulk], c0[:bulk], c1[:bulk], c2[:bulk], c3[:bulk])
	}
	if done < n {
		generic.Interleave4(dst[4*done:4*n], c0[done:n], c1[done:n], c2[done:n], c3[done:n])
	}
}

var (
	defaultOnce       sync.Once
	defaultDispatcher *Dispatcher
)

// Default returns the process-wide Dispatcher built from cpu.DetectFeatures().
// It is built on first use and never changes afterwards.
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		defaultDispatcher = New()
	})
	return defaultDispatcher
}

// Interleave interleaves 2 or 4 channels into dst using the Default dispatcher.
func Interleave(dst []int16, channels ...[]int16) error {
	return Default().Interleave(dst, channels...)
}

// InterleaveWith interleaves 2 or 4 channels into dst using kernels selected
// for features. The selection is repeated on every call; build a Dispatcher
// with WithFeatures to resolve it once.
func InterleaveWith(features cpu.Features, dst []int16, channels ...[]int16) error {
	d := resolve(registry.Global, features)
	return d.Interleave(dst, channels...)
}

// Sample is the set of element types Frames accepts.
type Sample = generic.Sample

// Frames interleaves any number of equal-length channels of any Sample type
// into dst[:n*C] with the scalar kernel. It validates like Interleave, except
// that every channel count of at least one is accepted.
func Frames[T Sample](dst []T, channels ...[]T) error {
	n, err := validate(dst, channels)
	if err != nil {
		return err
	}
	generic.Interleave(dst[:n*len(channels)], channels)
	return nil
}
