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

// Package rawptr is the raw-pointer access path of the parallel kernels.
//
// A Slab is a base address plus an element count; tasks address it by
// explicit offsets instead of owning a sub-slice. Nothing in the type system
// keeps two tasks from writing the same offset, so every per-task offset
// range must come from Spans, which checks disjointness before handing the
// ranges out. The package is internal: it is not a general-purpose API.
package rawptr

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-forkjoin/fj/contrib/partition"
)

// Slab is the base address and length of a caller-owned buffer.
type Slab[T any] struct {
	base unsafe.Pointer
	n    int
}

// Of returns the Slab backing s. The Slab must not be used after s goes out
// of scope; the caller keeps s alive for the whole dispatch.
func Of[T any](s []T) Slab[T] {
	return Slab[T]{base: unsafe.Pointer(unsafe.SliceData(s)), n: len(s)}
}

// Len returns the number of elements addressable through the Slab.
func (s Slab[T]) Len() int {
	return s.n
}

// MustHold panics unless the Slab addresses at least n elements. Kernels call
// it once per buffer, before any task runs, with the highest offset their
// spans will touch plus one.
func (s Slab[T]) MustHold(n int) {
	if n > s.Len() {
		panic(fmt.Sprintf("rawptr: slab of %d elements addressed up to %d", s.Len(), n))
	}
}

// at returns a pointer to element i. Offsets are checked only by Spans and
// MustHold; the accessors trust their callers.
func (s Slab[T]) at(i int) *T {
	var zero T
	return (*T)(unsafe.Add(s.base, uintptr(i)*unsafe.Sizeof(zero)))
}

// Load returns element i.
func (s Slab[T]) Load(i int) T {
	return *s.at(i)
}

// Store sets element i to v.
func (s Slab[T]) Store(i int, v T) {
	*s.at(i) = v
}

// Span is the offset range [Start, End) owned by one task.
type Span = partition.Range

// Spans returns the per-task offset ranges for a buffer of length units split
// into at most slices tasks, computed by partition.Ranges so the raw path and
// the slice path touch exactly the same elements per task.
//
// This is the proof obligation of the raw path: before returning, Spans
// checks that the ranges are ordered, non-empty, disjoint and cover
// [0, length) exactly, and panics otherwise.
func Spans(length, slices int) ([]Span, error) {
	spans, err := partition.Ranges(length, slices)
	if err != nil {
		return nil, err
	}
	if err := checkDisjoint(spans, length); err != nil {
		panic(fmt.Sprintf("rawptr: %v", err))
	}
	return spans, nil
}

func checkDisjoint(spans []Span, length int) error {
	next := 0
	for i, s := range spans {
		if s.Start != next {
			return fmt.Errorf("span %d starts at %d, want %d", i, s.Start, next)
		}
		if s.End <= s.Start {
			return fmt.Errorf("span %d [%d, %d) is empty", i, s.Start, s.End)
		}
		next = s.End
	}
	if next != length {
		return fmt.Errorf("spans cover [0, %d), want [0, %d)", next, length)
	}
	return nil
}
