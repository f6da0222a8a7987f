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

package rawptr

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-forkjoin/fj"
	"github.com/ajroetker/go-forkjoin/fj/contrib/partition"
)

func TestSlabLoadStore(t *testing.T) {
	s := []int16{1, 2, 3, 4, 5}
	slab := Of(s)
	if slab.Len() != len(s) {
		t.Fatalf("Len() = %d, want %d", slab.Len(), len(s))
	}

	for i := range s {
		if got := slab.Load(i); got != s[i] {
			t.Errorf("Load(%d) = %d, want %d", i, got, s[i])
		}
	}

	slab.Store(4, 40)
	slab.Store(0, -1)
	if diff := cmp.Diff([]int16{-1, 2, 3, 4, 40}, s); diff != "" {
		t.Errorf("buffer mismatch (-want +got):\n%s", diff)
	}
}

func TestSlabEmpty(t *testing.T) {
	if n := Of([]float64(nil)).Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestSlabMustHold(t *testing.T) {
	slab := Of(make([]float32, 6))
	slab.MustHold(0)
	slab.MustHold(6)

	defer func() {
		if recover() == nil {
			t.Error("MustHold(7) on a 6-element slab should panic")
		}
	}()
	slab.MustHold(7)
}

func TestSpansMatchPartition(t *testing.T) {
	// Exhaustive over small sizes: the raw path must use exactly the ranges
	// the slice path uses.
	for length := 0; length <= 48; length++ {
		for slices := 1; slices <= 50; slices++ {
			spans, err := Spans(length, slices)
			if err != nil {
				t.Fatalf("Spans(%d, %d): %v", length, slices, err)
			}
			ranges, _ := partition.Ranges(length, slices)
			if diff := cmp.Diff(ranges, spans); diff != "" {
				t.Fatalf("Spans(%d, %d) mismatch (-partition +spans):\n%s", length, slices, diff)
			}
		}
	}
}

func TestSpansInvalid(t *testing.T) {
	if _, err := Spans(10, 0); !errors.Is(err, fj.ErrInvalidArgument) {
		t.Errorf("Spans(10, 0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestCheckDisjoint(t *testing.T) {
	tests := []struct {
		name   string
		spans  []Span
		length int
		ok     bool
	}{
		{"exact", []Span{{Start: 0, End: 3}, {Start: 3, End: 6}, {Start: 6, End: 7}}, 7, true},
		{"empty buffer", nil, 0, true},
		{"overlap", []Span{{Start: 0, End: 4}, {Start: 3, End: 6}}, 6, false},
		{"gap", []Span{{Start: 0, End: 2}, {Start: 3, End: 6}}, 6, false},
		{"short", []Span{{Start: 0, End: 2}, {Start: 2, End: 5}}, 6, false},
		{"empty span", []Span{{Start: 0, End: 2}, {Start: 2, End: 2}, {Start: 2, End: 4}}, 4, false},
		{"out of order", []Span{{Start: 2, End: 4}, {Start: 0, End: 2}}, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkDisjoint(tt.spans, tt.length)
			if (err == nil) != tt.ok {
				t.Errorf("checkDisjoint(%v, %d) = %v, want ok=%v", tt.spans, tt.length, err, tt.ok)
			}
		})
	}
}
