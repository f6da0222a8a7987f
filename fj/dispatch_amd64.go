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

//go:build amd64

package fj

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

var cacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		currentTarget = TargetAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentTarget = TargetAVX2
	case cpu.X86.HasSSE2:
		currentTarget = TargetSSE2
	default:
		currentTarget = TargetGeneric
	}
}
