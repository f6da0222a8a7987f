// Package fj provides the shared vocabulary of the go-forkjoin engine:
// the numeric element constraint, the error taxonomy, and the worker count
// hint consumed by the parallel kernels in fj/contrib.
//
// The engine splits caller-owned buffers into disjoint contiguous regions,
// runs one goroutine per region and joins them all before returning:
//
//	import "github.com/ajroetker/go-forkjoin/fj/contrib/vec"
//
//	a := []float32{1, 2, 3, 4}
//	b := []float32{10, 20, 30, 40}
//	out := make([]float32, len(a))
//	if err := vec.ParallelAdd(a, b, out, fj.AvailableParallelism()); err != nil {
//		// errors.Is(err, fj.ErrInvalidArgument) or *fj.TaskError
//	}
package fj

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numeric is a constraint for every element type the kernels accept: any
// type with a zero value, addition and multiplication. Overflow behaviour is
// the type's own (integers wrap, floats round).
type Numeric interface {
	Floats | Integers
}
