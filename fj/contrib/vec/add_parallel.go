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
	"github.com/ajroetker/go-forkjoin/fj/contrib/partition"
)

// ParallelAdd computes out[i] = a[i] + b[i] using up to workers goroutines.
//
// a and b are split into read-only views and out into disjoint mutable
// regions by the same partition, one goroutine adds each (a, b, out) triple,
// and ParallelAdd returns once every goroutine has finished. workers is
// clamped to len(out), so no goroutine is spawned for an empty vector.
//
// Errors wrap fj.ErrInvalidArgument when the lengths differ or workers <= 0;
// nothing is written in that case. A *fj.TaskError means a task failed and
// out is undefined.
func ParallelAdd[T fj.Numeric](a, b, out []T, workers int) error {
	if err := checkAdd(len(a), len(b), len(out), workers); err != nil {
		return err
	}

	aParts, err := partition.Split(a, workers)
	if err != nil {
		return err
	}
	bParts, err := partition.Split(b, workers)
	if err != nil {
		return err
	}
	outParts, err := partition.SplitMut(out, workers)
	if err != nil {
		return err
	}

	tasks := dispatch.Zip3(aParts, bParts, outParts)
	return dispatch.Run(len(tasks), func(i int) error {
		Add(tasks[i].A, tasks[i].B, tasks[i].C)
		return nil
	})
}
