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
	"github.com/ajroetker/go-forkjoin/fj/contrib/dispatch"
	"github.com/ajroetker/go-forkjoin/internal/rawptr"
)

// ParallelMatMulUnsafe is ParallelMatMul addressing A, B and C through their
// base pointers and per-task row ranges instead of sub-slices.
//
// Row ranges come from rawptr.Spans over the m rows of C, the same ranges
// ParallelMatMul uses, and each task zeroes only its own rows before
// accumulating. Arguments, errors and output are identical to ParallelMatMul,
// bit for bit.
func ParallelMatMulUnsafe[T fj.Numeric](a, b, c []T, m, n, k, workers int) error {
	if err := checkMatMul(len(a), len(b), len(c), m, n, k, workers); err != nil {
		return err
	}

	spans, err := rawptr.Spans(m, workers)
	if err != nil {
		return err
	}

	pa, pb, pc := rawptr.Of(a), rawptr.Of(b), rawptr.Of(c)
	pa.MustHold(m * k)
	pb.MustHold(k * n)
	pc.MustHold(m * n)
	return dispatch.Run(len(spans), func(i int) error {
		var zero T
		for x := spans[i].Start; x < spans[i].End; x++ {
			for y := range n {
				pc.Store(x*n+y, zero)
			}
			for z := range k {
				axz := pa.Load(x*k + z)
				for y := range n {
					// c[x][y] += a[x][z] * b[z][y]
					pc.Store(x*n+y, pc.Load(x*n+y)+T(axz*pb.Load(z*n+y)))
				}
			}
		}
		return nil
	})
}
