// Copyright 2025 go-forkjoin Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bench times repeated dispatches and compares the outputs of the
// safe and raw-pointer kernel paths for the fjbench command.
package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/ajroetker/go-forkjoin/fj"
)

// Result is the timing of one kernel run repeated Iters times.
type Result struct {
	Name  string
	Iters int
	Total time.Duration
	// Units is the work done by one iteration: elements for add, multiply-adds
	// for matmul.
	Units int64
}

// PerOp returns the mean duration of one iteration.
func (r Result) PerOp() time.Duration {
	if r.Iters == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Iters)
}

// UnitsPerSecond returns the throughput in units per second, or 0 when
// nothing was measured.
func (r Result) UnitsPerSecond() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Units) * float64(r.Iters) / r.Total.Seconds()
}

// Run calls fn iters times and reports the elapsed wall time. The first error
// returned by fn stops the run.
func Run(name string, iters int, units int64, fn func() error) (Result, error) {
	if iters <= 0 {
		return Result{}, fj.InvalidArgumentf("iterations %d, want > 0", iters)
	}
	res := Result{Name: name, Iters: iters, Units: units}
	start := time.Now()
	for i := range iters {
		if err := fn(); err != nil {
			return res, fmt.Errorf("%s: iteration %d: %w", name, i, err)
		}
	}
	res.Total = time.Since(start)
	return res, nil
}

// FirstDifference returns the first index at which a and b differ, comparing
// floats bit for bit (so NaNs with equal payloads match and -0 differs from
// +0), or -1 when they are identical. Lengths must match.
func FirstDifference[T fj.Numeric](a, b []T) int {
	if len(a) != len(b) {
		panic(fmt.Sprintf("bench: comparing %d elements with %d", len(a), len(b)))
	}
	switch a := any(a).(type) {
	case []float32:
		b := any(b).([]float32)
		for i := range a {
			if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
				return i
			}
		}
		return -1
	case []float64:
		b := any(b).([]float64)
		for i := range a {
			if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
				return i
			}
		}
		return -1
	}
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
