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

package matmul

import (
	"github.com/ajroetker/go-forkjoin/fj"
)

// MatMulBlock computes a block of rows of C = A * B.
//
//   - a is the rows x k block of A (row-major)
//   - b is the whole k x n matrix B (row-major), only read
//   - c is the matching rows x n block of C (row-major)
//
// c[:rows*n] is zeroed first, whatever it held before. The loop order is
// x, z, y so the innermost loop walks one row of C and one row of B.
//
// Each product is rounded to T before it is accumulated, so the compiler
// never fuses it into an FMA and every path computing C through this loop
// order produces the same bits.
func MatMulBlock[T fj.Numeric](a, b, c []T, rows, n, k int) {
	if len(a) < rows*k {
		panic("matmul: A slice too short")
	}
	if len(b) < k*n {
		panic("matmul: B slice too short")
	}
	if len(c) < rows*n {
		panic("matmul: C slice too short")
	}

	// Clear output
	clear(c[:rows*n])

	for x := range rows {
		cRow := c[x*n : (x+1)*n]
		for z := range k {
			axz := a[x*k+z]
			bRow := b[z*n : (z+1)*n]
			for y := range cRow {
				cRow[y] += T(axz * bRow[y])
			}
		}
	}
}

// checkMatMul validates the arguments shared by ParallelMatMul and
// ParallelMatMulUnsafe.
func checkMatMul(lenA, lenB, lenC, m, n, k, workers int) error {
	if workers <= 0 {
		return fj.InvalidArgumentf("worker count %d, want > 0", workers)
	}
	if m < 0 || n < 0 || k < 0 {
		return fj.InvalidArgumentf("matrix dimensions m=%d, n=%d, k=%d, want >= 0", m, n, k)
	}
	sizes := []struct {
		name, dims string
		got        int
		x, y       int
	}{
		{"a", "m*k", lenA, m, k},
		{"b", "k*n", lenB, k, n},
		{"c", "m*n", lenC, m, n},
	}
	for _, sz := range sizes {
		want, ok := fj.MulDims(sz.x, sz.y)
		if !ok {
			return fj.InvalidArgumentf("%s=%d*%d overflows int", sz.dims, sz.x, sz.y)
		}
		if sz.got != want {
			return fj.InvalidArgumentf("len(%s)=%d, want %s=%d", sz.name, sz.got, sz.dims, want)
		}
	}
	return nil
}
