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

// Package partition splits buffers into disjoint contiguous regions, one per
// parallel task.
//
// Every split is computed by Ranges: the number of regions is clamped to the
// number of units (elements or rows), each region holds ceil(units/slices)
// units and the last one absorbs the remainder. Regions come back in index
// order, never overlap and together cover the whole buffer.
//
// Mutable regions are returned as capacity-capped sub-slices (s[lo:hi:hi]),
// so appending to one region reallocates instead of writing into its
// neighbour. Handing each region to exactly one goroutine is then enough to
// make concurrent writes race-free without locks.
package partition

import (
	"github.com/ajroetker/go-forkjoin/fj"
)

// Range is the half-open offset range [Start, End) of one region.
type Range struct {
	Start, End int
}

// Len returns the number of units in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Ranges splits [0, length) into at most slices contiguous ranges.
//
// slices <= 0 is rejected with fj.ErrInvalidArgument. length == 0 yields no
// ranges. Otherwise the effective slice count is min(slices, length), every
// range but the last holds ceil(length/effective) units, and trailing ranges
// that would be empty are not emitted, so len(result) <= effective.
func Ranges(length, slices int) ([]Range, error) {
	if slices <= 0 {
		return nil, fj.InvalidArgumentf("slice count %d, want > 0", slices)
	}
	if length < 0 {
		return nil, fj.InvalidArgumentf("length %d, want >= 0", length)
	}
	if length == 0 {
		return nil, nil
	}

	slices = min(slices, length)
	chunk := (length + slices - 1) / slices
	count := (length + chunk - 1) / chunk

	ranges := make([]Range, count)
	for i := range count {
		start := i * chunk
		ranges[i] = Range{Start: start, End: min(start+chunk, length)}
	}
	return ranges, nil
}

// RowRanges splits height rows into at most slices ranges of whole rows.
func RowRanges(height, slices int) ([]Range, error) {
	return Ranges(height, slices)
}

// Split returns read-only views of s, one per range of Ranges(len(s), slices).
// The views share storage with s; callers must not write through them.
func Split[S ~[]E, E any](s S, slices int) ([]S, error) {
	ranges, err := Ranges(len(s), slices)
	if err != nil {
		return nil, err
	}
	views := make([]S, len(ranges))
	for i, r := range ranges {
		views[i] = s[r.Start:r.End]
	}
	return views, nil
}

// SplitMut returns disjoint mutable regions of s, one per range of
// Ranges(len(s), slices). Each region's capacity ends where the region ends.
func SplitMut[S ~[]E, E any](s S, slices int) ([]S, error) {
	ranges, err := Ranges(len(s), slices)
	if err != nil {
		return nil, err
	}
	return cut(s, ranges, 1), nil
}

// SplitRows returns read-only views of the row-major height x width matrix s,
// each holding whole rows as given by RowRanges(height, slices).
// len(s) must be height*width.
func SplitRows[S ~[]E, E any](s S, height, width, slices int) ([]S, error) {
	ranges, err := matrixRanges(len(s), height, width, slices)
	if err != nil {
		return nil, err
	}
	views := make([]S, len(ranges))
	for i, r := range ranges {
		views[i] = s[r.Start*width : r.End*width]
	}
	return views, nil
}

// SplitRowsMut is SplitRows for mutable, capacity-capped regions.
func SplitRowsMut[S ~[]E, E any](s S, height, width, slices int) ([]S, error) {
	ranges, err := matrixRanges(len(s), height, width, slices)
	if err != nil {
		return nil, err
	}
	return cut(s, ranges, width), nil
}

func matrixRanges(length, height, width, slices int) ([]Range, error) {
	if height < 0 || width < 0 {
		return nil, fj.InvalidArgumentf("matrix shape %dx%d, want non-negative", height, width)
	}
	size, ok := fj.MulDims(height, width)
	if !ok {
		return nil, fj.InvalidArgumentf("matrix shape %dx%d overflows int", height, width)
	}
	if length != size {
		return nil, fj.InvalidArgumentf("buffer length %d does not match %dx%d matrix", length, height, width)
	}
	return RowRanges(height, slices)
}

// cut slices s at unit boundaries scaled by stride, capping each capacity.
func cut[S ~[]E, E any](s S, ranges []Range, stride int) []S {
	regions := make([]S, len(ranges))
	for i, r := range ranges {
		lo, hi := r.Start*stride, r.End*stride
		regions[i] = s[lo:hi:hi]
	}
	return regions
}
