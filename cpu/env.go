package cpu

import "os"

// EnvOverride names the environment variable that caps the detected level.
// Accepted values are those understood by ParseLevel; unknown values are ignored.
// The override can only lower the level, never enable a tier the CPU lacks.
const EnvOverride = "ALGO_INTERLEAVE_SIMD"

func applyEnvOverride(f Features) Features {
	v, ok := os.LookupEnv(EnvOverride)
	if !ok {
		return f
	}
	level, ok := ParseLevel(v)
	if !ok {
		return f
	}
	return f.Limit(level)
}
