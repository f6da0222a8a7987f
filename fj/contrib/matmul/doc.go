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

// Package matmul provides row-block parallel matrix multiplication.
//
// C = A * B is split into horizontal strips of whole rows: each goroutine
// receives a strip of A, the matching strip of C and the whole of B, which
// every goroutine reads but none writes. Strips come from the same row
// partition for A and C, so a goroutine's output rows are exactly the rows
// its input strip produces.
//
// Example usage:
//
//	// C = A * B where A is MxK, B is KxN, C is MxN
//	a := make([]float32, M*K)  // row-major
//	b := make([]float32, K*N)  // row-major
//	c := make([]float32, M*N)  // output, row-major
//
//	err := matmul.ParallelMatMul(a, b, c, M, N, K, fj.AvailableParallelism())
//
// ParallelMatMulUnsafe computes the same result through raw offsets.
package matmul
