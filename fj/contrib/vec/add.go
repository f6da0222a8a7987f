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

// Package vec provides elementwise vector kernels and their fork-join
// parallel drivers.
//
// Example usage:
//
//	a := []int32{1, 1, 1, 1}
//	b := []int32{2, 2, 2, 2}
//	out := make([]int32, len(a))
//	err := vec.ParallelAdd(a, b, out, 4) // out = [3 3 3 3]
package vec

import (
	"fmt"

	"github.com/ajroetker/go-forkjoin/fj"
)

// Add computes out[i] = a[i] + b[i] for every i.
//
// It writes only out and may run concurrently with other calls whose out
// slices do not overlap. Panics if the lengths differ.
func Add[T fj.Numeric](a, b, out []T) {
	if len(a) != len(b) || len(a) != len(out) {
		panic(fmt.Sprintf("vec: Add length mismatch: len(a)=%d, len(b)=%d, len(out)=%d", len(a), len(b), len(out)))
	}
	// Reslicing to len(out) lets the compiler drop bounds checks.
	a = a[:len(out)]
	b = b[:len(out)]
	for i := range out {
		out[i] = a[i] + b[i]
	}
}

// checkAdd validates the arguments shared by ParallelAdd and
// ParallelAddUnsafe.
func checkAdd(lenA, lenB, lenOut, workers int) error {
	if workers <= 0 {
		return fj.InvalidArgumentf("worker count %d, want > 0", workers)
	}
	if lenA != lenB || lenA != lenOut {
		return fj.InvalidArgumentf("vector lengths differ: len(a)=%d, len(b)=%d, len(out)=%d", lenA, lenB, lenOut)
	}
	return nil
}
