// Command simdinfo prints the CPU capability descriptor and the interleave
// kernels selected for it.
//
// Usage:
//
//	simdinfo [flags]
//
// Examples:
//
//	simdinfo
//	simdinfo -max sse2
//	simdinfo -bench -frames 4096 -iters 20000
//	ALGO_INTERLEAVE_SIMD=none simdinfo -v
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cwbudde/algo-interleave/cpu"
	"github.com/cwbudde/algo-interleave/interleave"
)

func main() {
	maxLevel := flag.String("max", "", "cap kernel selection at none, sse2, avx, avx2 or neon")
	bench := flag.Bool("bench", false, "time each selected kernel")
	frames := flag.Int("frames", 1024, "frames per benchmark call")
	iters := flag.Int("iters", 10000, "benchmark iterations per channel count")
	verbose := flag.Bool("v", false, "log kernel selection to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: simdinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints detected SIMD capabilities and the interleave kernels in use.\n")
		fmt.Fprintf(os.Stderr, "%s limits detection the same way -max does.\n\n", cpu.EnvOverride)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []interleave.Option{interleave.WithLogger(logger)}
	if *maxLevel != "" {
		l, ok := cpu.ParseLevel(*maxLevel)
		if !ok {
			fmt.Fprintf(os.Stderr, "error: unknown level %q\n", *maxLevel)
			os.Exit(2)
		}
		opts = append(opts, interleave.WithMaxLevel(l))
	}
	if *frames < 0 || *iters <= 0 {
		fmt.Fprintf(os.Stderr, "error: -frames must be >= 0 and -iters > 0\n")
		os.Exit(2)
	}

	d := interleave.New(opts...)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printFeatures(tw, d.Features())
	printHost(tw, d.Features())
	printKernels(tw, d)
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}

	if *bench {
		if err := runBench(d, *frames, *iters); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printFeatures(tw *tabwriter.Writer, f cpu.Features) {
	fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "Vendor\t%s\n", orDash(f.Vendor))
	fmt.Fprintf(tw, "Level\t%s\n", f.Level())
	fmt.Fprintf(tw, "Forced generic\t%t\n", f.ForceGeneric)

	flags := []struct {
		name string
		on   bool
	}{
		{"MMX", f.HasMMX},
		{"SSE", f.HasSSE},
		{"SSE2", f.HasSSE2},
		{"SSE3", f.HasSSE3},
		{"SSSE3", f.HasSSSE3},
		{"SSE4.1", f.HasSSE41},
		{"SSE4.2", f.HasSSE42},
		{"OSXSAVE", f.HasOSXSAVE},
		{"OS AVX state", f.HasOSAVXState},
		{"AVX", f.HasAVX},
		{"AVX2", f.HasAVX2},
		{"NEON", f.HasNEON},
	}
	for _, fl := range flags {
		fmt.Fprintf(tw, "  %s\t%s\n", fl.name, yesNo(fl.on))
	}
	fmt.Fprintln(tw)
}

// printHost shows what klauspost/cpuid reports, so a disagreement with the
// descriptor above is visible at a glance. The descriptor may be narrower
// on purpose when -max or the environment override is set.
func printHost(tw *tabwriter.Writer, f cpu.Features) {
	fmt.Fprintf(tw, "Brand\t%s\n", orDash(cpuid.CPU.BrandName))
	fmt.Fprintf(tw, "Cores\t%d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(tw, "Check\tdescriptor\tcpuid\n")
	fmt.Fprintf(tw, "  SSE2\t%s\t%s\n", yesNo(f.HasSSE2), yesNo(cpuid.CPU.Supports(cpuid.SSE2)))
	fmt.Fprintf(tw, "  AVX\t%s\t%s\n", yesNo(f.HasAVX), yesNo(cpuid.CPU.Supports(cpuid.AVX)))
	fmt.Fprintf(tw, "  AVX2\t%s\t%s\n", yesNo(f.HasAVX2), yesNo(cpuid.CPU.Supports(cpuid.AVX2)))
	fmt.Fprintln(tw)
}

func printKernels(tw *tabwriter.Writer, d *interleave.Dispatcher) {
	fmt.Fprintf(tw, "Channels\tKernel\tLevel\tWidth\n")
	fmt.Fprintf(tw, "--------\t------\t-----\t-----\n")
	for _, c := range []int{2, 4} {
		info, ok := d.Kernel(c)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", info.Channels, info.Name, info.Level, info.Width)
	}
}

func runBench(d *interleave.Dispatcher, frames, iters int) error {
	p := message.NewPrinter(language.English)

	for _, c := range []int{2, 4} {
		chans := make([][]int16, c)
		for ch := range chans {
			chans[ch] = make([]int16, frames)
			for i := range chans[ch] {
				chans[ch][i] = int16(ch<<12 | i&0x0fff)
			}
		}
		dst := make([]int16, c*frames)

		start := time.Now()
		for i := 0; i < iters; i++ {
			if err := d.Interleave(dst, chans...); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		info, _ := d.Kernel(c)
		rate := float64(frames) * float64(iters) / elapsed.Seconds()
		p.Printf("%d channels via %s: %d frames x %d iters in %v (%.0f frames/s)\n",
			c, info.Name, frames, iters, elapsed.Round(time.Microsecond), rate)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
