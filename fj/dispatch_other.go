//go:build !amd64 && !arm64

package fj

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

var cacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

func init() {
	currentTarget = TargetGeneric
}
