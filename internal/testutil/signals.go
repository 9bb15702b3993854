// Package testutil provides deterministic int16 channel data and
// comparison helpers shared by the kernel tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave quantized to int16.
// amplitude is relative to full scale and clipped to [0, 1].
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []int16 {
	amplitude = math.Min(math.Max(amplitude, 0), 1)
	out := make([]int16, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = int16(math.Round(amplitude * math.MaxInt16 * math.Sin(step*float64(i))))
	}
	return out
}

// DeterministicNoise generates full-range int16 noise with a fixed seed.
func DeterministicNoise(seed int64, length int) []int16 {
	out := make([]int16, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int16(rng.Uint32())
	}
	return out
}

// DC generates a constant-valued channel.
func DC(value int16, length int) []int16 {
	out := make([]int16, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Tagged generates a channel whose samples encode their origin:
// bits 12-15 hold the channel index and bits 0-11 the sample index.
// A misplaced sample in an interleaved buffer reveals where it came from.
func Tagged(channel, length int) []int16 {
	out := make([]int16, length)
	for i := range out {
		out[i] = int16(uint16(channel&0xf)<<12 | uint16(i&0xfff))
	}
	return out
}

// Channels returns count tagged channels of the given length.
func Channels(count, length int) [][]int16 {
	chans := make([][]int16, count)
	for c := range chans {
		chans[c] = Tagged(c, length)
	}
	return chans
}

// NoiseChannels returns count independent noise channels.
func NoiseChannels(seed int64, count, length int) [][]int16 {
	chans := make([][]int16, count)
	for c := range chans {
		chans[c] = DeterministicNoise(seed+int64(c), length)
	}
	return chans
}
