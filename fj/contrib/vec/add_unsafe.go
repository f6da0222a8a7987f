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

package vec

import (
	"github.com/ajroetker/go-forkjoin/fj"
	"github.com/ajroetker/go-forkjoin/fj/contrib/dispatch"
	"github.com/ajroetker/go-forkjoin/internal/rawptr"
)

// ParallelAddUnsafe is ParallelAdd addressing the buffers through their base
// pointers and per-task offset ranges instead of sub-slices.
//
// It accepts and rejects exactly the same arguments as ParallelAdd and
// produces bit-identical output. It exists to compare the slice path against
// manual address arithmetic; prefer ParallelAdd.
func ParallelAddUnsafe[T fj.Numeric](a, b, out []T, workers int) error {
	if err := checkAdd(len(a), len(b), len(out), workers); err != nil {
		return err
	}

	spans, err := rawptr.Spans(len(out), workers)
	if err != nil {
		return err
	}

	pa, pb, pout := rawptr.Of(a), rawptr.Of(b), rawptr.Of(out)
	pa.MustHold(len(out))
	pb.MustHold(len(out))
	pout.MustHold(len(out))
	return dispatch.Run(len(spans), func(i int) error {
		for j := spans[i].Start; j < spans[i].End; j++ {
			pout.Store(j, pa.Load(j)+pb.Load(j))
		}
		return nil
	})
}
