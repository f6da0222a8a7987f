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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ajroetker/go-forkjoin/fj"
	"github.com/ajroetker/go-forkjoin/fj/contrib/matmul"
	"github.com/ajroetker/go-forkjoin/fj/contrib/partition"
	"github.com/ajroetker/go-forkjoin/fj/contrib/vec"
	"github.com/ajroetker/go-forkjoin/internal/bench"
)

// kernelRunner times one kernel for one element type.
type kernelRunner interface {
	// add times iters dispatches of vector addition over length elements.
	add(length, workers, iters int, unsafe bool) (bench.Result, error)
	// matmul times iters dispatches of an m x k by k x n product.
	matmul(m, n, k, workers, iters int, unsafe bool) (bench.Result, error)
	// compare runs both paths once and returns the first index at which
	// their outputs differ for add and for matmul, -1 when identical.
	compare(length, m, n, k, workers int) (addDiff, matmulDiff int, err error)
}

// dtypes maps --dtype values to runners.
var dtypes = map[string]kernelRunner{
	"f32": runner[float32]{},
	"f64": runner[float64]{},
	"i32": runner[int32]{},
	"i64": runner[int64]{},
}

func dtypeNames() []string {
	names := make([]string, 0, len(dtypes))
	for name := range dtypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type runner[T fj.Numeric] struct{}

// fill sets s[i] to a small repeating pattern so integer types never overflow
// and float sums stay exact enough to compare across runs.
func fill[T fj.Numeric](s []T, seed int) {
	for i := range s {
		s[i] = T((i*7 + seed) % 13)
	}
}

func (runner[T]) add(length, workers, iters int, unsafe bool) (bench.Result, error) {
	a := make([]T, length)
	b := make([]T, length)
	out := make([]T, length)
	fill(a, 1)
	fill(b, 2)

	fn, name := vec.ParallelAdd[T], "add"
	if unsafe {
		fn, name = vec.ParallelAddUnsafe[T], "add-unsafe"
	}
	logDispatch(name, length, workers)
	return bench.Run(name, iters, int64(length), func() error {
		return fn(a, b, out, workers)
	})
}

func (runner[T]) matmul(m, n, k, workers, iters int, unsafe bool) (bench.Result, error) {
	a := make([]T, m*k)
	b := make([]T, k*n)
	c := make([]T, m*n)
	fill(a, 1)
	fill(b, 2)

	fn, name := matmul.ParallelMatMul[T], "matmul"
	if unsafe {
		fn, name = matmul.ParallelMatMulUnsafe[T], "matmul-unsafe"
	}
	logDispatch(name, m, workers)
	return bench.Run(name, iters, int64(m)*int64(n)*int64(k), func() error {
		return fn(a, b, c, m, n, k, workers)
	})
}

func (runner[T]) compare(length, m, n, k, workers int) (int, int, error) {
	a := make([]T, length)
	b := make([]T, length)
	fill(a, 3)
	fill(b, 5)
	safeAdd := make([]T, length)
	rawAdd := make([]T, length)
	if err := vec.ParallelAdd(a, b, safeAdd, workers); err != nil {
		return 0, 0, fmt.Errorf("add: %w", err)
	}
	if err := vec.ParallelAddUnsafe(a, b, rawAdd, workers); err != nil {
		return 0, 0, fmt.Errorf("add-unsafe: %w", err)
	}

	ma := make([]T, m*k)
	mb := make([]T, k*n)
	fill(ma, 3)
	fill(mb, 5)
	safeMul := make([]T, m*n)
	rawMul := make([]T, m*n)
	if err := matmul.ParallelMatMul(ma, mb, safeMul, m, n, k, workers); err != nil {
		return 0, 0, fmt.Errorf("matmul: %w", err)
	}
	if err := matmul.ParallelMatMulUnsafe(ma, mb, rawMul, m, n, k, workers); err != nil {
		return 0, 0, fmt.Errorf("matmul-unsafe: %w", err)
	}

	return bench.FirstDifference(safeAdd, rawAdd), bench.FirstDifference(safeMul, rawMul), nil
}

// logDispatch logs how a dispatch over units will be split.
func logDispatch(kernel string, units, workers int) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	ranges, err := partition.Ranges(units, workers)
	if err != nil {
		return
	}
	slog.Debug("dispatch", "kernel", kernel, "units", units, "workers", workers, "tasks", len(ranges))
	if workers > units {
		slog.Debug("worker count clamped to units", "kernel", kernel, "workers", workers, "units", units)
	}
}
