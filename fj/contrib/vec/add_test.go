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
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-forkjoin/fj"
)

// addReference is the sequential reference used to check the parallel paths.
func addReference[T fj.Numeric](a, b, out []T) {
	for i := range out {
		out[i] = a[i] + b[i]
	}
}

// parallelAddFunc is the common signature of the safe and unsafe drivers.
type parallelAddFunc func(a, b, out []float32, workers int) error

var addImpls = []struct {
	name string
	fn   parallelAddFunc
}{
	{"safe", ParallelAdd[float32]},
	{"unsafe", ParallelAddUnsafe[float32]},
}

func TestAdd(t *testing.T) {
	a := []int64{1, 2, 3, math.MaxInt64}
	b := []int64{10, 20, 30, 1}
	out := make([]int64, len(a))
	Add(a, b, out)

	// Integer overflow wraps: that is int64's contract, not the kernel's.
	want := []int64{11, 22, 33, math.MinInt64}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
}

func TestAddPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched lengths should panic")
		}
	}()
	Add([]int{1, 2}, []int{1}, make([]int, 2))
}

func TestParallelAddScenario(t *testing.T) {
	for _, impl := range addImpls {
		t.Run(impl.name, func(t *testing.T) {
			a := make([]float32, 10)
			b := make([]float32, 10)
			for i := range a {
				a[i], b[i] = 1, 2
			}
			out := make([]float32, 10)

			if err := impl.fn(a, b, out, 4); err != nil {
				t.Fatal(err)
			}
			for i, v := range out {
				if v != 3 {
					t.Errorf("out[%d] = %v, want 3", i, v)
				}
			}
		})
	}
}

func TestParallelAddMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, impl := range addImpls {
		for _, length := range []int{0, 1, 2, 7, 10, 33, 100} {
			a := make([]float32, length)
			b := make([]float32, length)
			for i := range a {
				a[i] = rng.Float32()*200 - 100
				b[i] = rng.Float32()*200 - 100
			}
			want := make([]float32, length)
			addReference(a, b, want)

			// Includes workers > length, which must clamp.
			for workers := 1; workers <= length+3; workers++ {
				t.Run(fmt.Sprintf("%s/len=%d/workers=%d", impl.name, length, workers), func(t *testing.T) {
					out := make([]float32, length)
					if err := impl.fn(a, b, out, workers); err != nil {
						t.Fatal(err)
					}
					if !slices.Equal(out, want) {
						t.Errorf("out = %v, want %v", out, want)
					}
				})
			}
		}
	}
}

func TestParallelAddSafeUnsafeBitIdentical(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 1000
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = rng.NormFloat64() * 1e10
		b[i] = rng.NormFloat64() * 1e-10
	}
	a[3], b[3] = math.Inf(1), math.Inf(-1) // NaN
	a[5] = math.Copysign(0, -1)

	for _, workers := range []int{1, 3, 8, 64} {
		safe := make([]float64, n)
		raw := make([]float64, n)
		if err := ParallelAdd(a, b, safe, workers); err != nil {
			t.Fatal(err)
		}
		if err := ParallelAddUnsafe(a, b, raw, workers); err != nil {
			t.Fatal(err)
		}
		for i := range safe {
			if math.Float64bits(safe[i]) != math.Float64bits(raw[i]) {
				t.Fatalf("workers=%d: out[%d] safe=%v unsafe=%v", workers, i, safe[i], raw[i])
			}
		}
	}
}

func TestParallelAddInvalidArgument(t *testing.T) {
	tests := []struct {
		name             string
		lenA, lenB, lenO int
		workers          int
	}{
		{"zero workers", 4, 4, 4, 0},
		{"negative workers", 4, 4, 4, -3},
		{"zero workers empty", 0, 0, 0, 0},
		{"short b", 4, 3, 4, 2},
		{"short out", 4, 4, 3, 2},
		{"long a", 5, 4, 4, 2},
	}
	for _, impl := range addImpls {
		for _, tt := range tests {
			t.Run(impl.name+"/"+tt.name, func(t *testing.T) {
				a := make([]float32, tt.lenA)
				b := make([]float32, tt.lenB)
				out := make([]float32, tt.lenO)
				for i := range out {
					out[i] = -1
				}
				for i := range a {
					a[i] = 1
				}

				err := impl.fn(a, b, out, tt.workers)
				if !errors.Is(err, fj.ErrInvalidArgument) {
					t.Fatalf("error = %v, want ErrInvalidArgument", err)
				}
				var taskErr *fj.TaskError
				if errors.As(err, &taskErr) {
					t.Errorf("invalid argument reported as task failure")
				}
				for i, v := range out {
					if v != -1 {
						t.Errorf("out[%d] = %v written despite invalid arguments", i, v)
					}
				}
			})
		}
	}
}

func TestParallelAddIdempotent(t *testing.T) {
	a := []int32{1, 2, 3, 4, 5, 6, 7}
	b := []int32{7, 6, 5, 4, 3, 2, 1}

	first := make([]int32, len(a))
	second := make([]int32, len(a))
	if err := ParallelAdd(a, b, first, 3); err != nil {
		t.Fatal(err)
	}
	if err := ParallelAdd(a, b, second, 3); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated dispatch differs (-first +second):\n%s", diff)
	}
}

func TestParallelAddNamedSliceType(t *testing.T) {
	type celsius float64
	a := []celsius{1.5, 2.5}
	b := []celsius{0.5, 0.5}
	out := make([]celsius, 2)
	if err := ParallelAdd(a, b, out, 2); err != nil {
		t.Fatal(err)
	}
	if out[0] != 2 || out[1] != 3 {
		t.Errorf("out = %v, want [2 3]", out)
	}
}

func BenchmarkParallelAdd(b *testing.B) {
	sizes := []int{1 << 10, 1 << 16, 1 << 20}
	workers := fj.AvailableParallelism()

	for _, n := range sizes {
		x := make([]float32, n)
		y := make([]float32, n)
		out := make([]float32, n)
		for i := range x {
			x[i] = float32(i)
			y[i] = float32(n - i)
		}

		for _, impl := range addImpls {
			b.Run(fmt.Sprintf("%s/%d", impl.name, n), func(b *testing.B) {
				b.SetBytes(int64(n * 4 * 3))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = impl.fn(x, y, out, workers)
				}
			})
		}
	}
}
