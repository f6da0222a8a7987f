//go:build arm64

package fj

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

var cacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

func init() {
	// cpu.ARM64.HasASIMD is always true for ARMv8+
	if cpu.ARM64.HasASIMD {
		currentTarget = TargetNEON
	} else {
		currentTarget = TargetGeneric
	}
}
