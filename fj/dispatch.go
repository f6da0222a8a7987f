package fj

import (
	"os"
	"runtime"
	"strconv"
)

// Target names the CPU family the process is running on, as detected
// through golang.org/x/sys/cpu. It is informational: the kernels are plain
// Go and run identically on every target.
type Target int

const (
	// TargetGeneric is any architecture without further detection.
	TargetGeneric Target = iota

	// TargetSSE2 is the x86-64 baseline.
	TargetSSE2

	// TargetAVX2 is x86-64 with AVX2 and FMA.
	TargetAVX2

	// TargetAVX512 is x86-64 with AVX-512F.
	TargetAVX512

	// TargetNEON is ARM64 with Advanced SIMD.
	TargetNEON
)

// String returns a human-readable name for the target.
func (t Target) String() string {
	switch t {
	case TargetGeneric:
		return "generic"
	case TargetSSE2:
		return "sse2"
	case TargetAVX2:
		return "avx2"
	case TargetAVX512:
		return "avx512"
	case TargetNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentTarget is set by init() in dispatch_*.go files.
var currentTarget Target

// CurrentTarget returns the detected CPU target.
func CurrentTarget() Target {
	return currentTarget
}

// CacheLineSize returns the cache line size reported by golang.org/x/sys/cpu
// for the current architecture, or 64 when unknown.
func CacheLineSize() int {
	if cacheLineSize <= 0 {
		return 64
	}
	return cacheLineSize
}

// SequentialEnv checks if the FJ_SEQUENTIAL environment variable is set.
// When set, AvailableParallelism reports a single worker. This is useful for
// debugging kernels without goroutine interleaving.
func SequentialEnv() bool {
	val := os.Getenv("FJ_SEQUENTIAL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// WorkersEnv returns the worker count requested through FJ_NUM_WORKERS, and
// whether a usable (positive integer) value was set.
func WorkersEnv() (int, bool) {
	val := os.Getenv("FJ_NUM_WORKERS")
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// AvailableParallelism returns the worker count hint used when the caller has
// no opinion: FJ_SEQUENTIAL forces 1, FJ_NUM_WORKERS overrides, otherwise
// runtime.GOMAXPROCS(0). The result is always positive.
func AvailableParallelism() int {
	if SequentialEnv() {
		return 1
	}
	if n, ok := WorkersEnv(); ok {
		return n
	}
	return max(runtime.GOMAXPROCS(0), 1)
}
