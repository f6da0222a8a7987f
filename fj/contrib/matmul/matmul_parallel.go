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
	"github.com/ajroetker/go-forkjoin/fj/contrib/partition"
)

// ParallelMatMul computes C = A * B using up to workers goroutines.
// Divides the m rows into horizontal strips and runs MatMulBlock on each strip.
//
//   - A is M x K (row-major)
//   - B is K x N (row-major)
//   - C is M x N (row-major)
//
// workers is clamped to m. Any previous content of c is overwritten.
//
// Errors wrap fj.ErrInvalidArgument when a buffer length disagrees with
// m, n, k or workers <= 0; nothing is written in that case. A *fj.TaskError
// means a task failed and c is undefined.
func ParallelMatMul[T fj.Numeric](a, b, c []T, m, n, k, workers int) error {
	if err := checkMatMul(len(a), len(b), len(c), m, n, k, workers); err != nil {
		return err
	}

	aStrips, err := partition.SplitRows(a, m, k, workers)
	if err != nil {
		return err
	}
	cStrips, err := partition.SplitRowsMut(c, m, n, workers)
	if err != nil {
		return err
	}

	strips := dispatch.Zip(aStrips, cStrips)
	return dispatch.Run(len(strips), func(i int) error {
		// Row count comes from the C strip: with k == 0 the A strip is
		// empty but the C rows must still be zeroed.
		rows := 0
		if n > 0 {
			rows = len(strips[i].B) / n
		}
		MatMulBlock(strips[i].A, b, strips[i].B, rows, n, k)
		return nil
	})
}
