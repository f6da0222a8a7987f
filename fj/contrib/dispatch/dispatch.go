// Copyright 2025 The go-forkjoin Authors. SPDX-License-Identifier: Apache-2.0

// Package dispatch runs one goroutine per partitioned region and joins them
// all before returning.
//
// Unlike a persistent worker pool, nothing outlives a call: every Run spawns
// fresh goroutines and waits for each of them, so a region borrowed by a task
// is never used after the call returns.
//
// Usage:
//
//	err := dispatch.ParallelFor(len(out), workers, func(start, end int) error {
//	    for i := start; i < end; i++ {
//	        out[i] = a[i] + b[i]
//	    }
//	    return nil
//	})
package dispatch

import (
	"fmt"
	"runtime/debug"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-forkjoin/fj"
	"github.com/ajroetker/go-forkjoin/fj/contrib/partition"
)

// Run executes task(i) for every i in [0, n), each in its own goroutine, and
// blocks until all of them have returned.
//
// Tasks may run in any order. If any task returns an error or panics, Run
// still waits for the others and then returns a *fj.TaskError listing every
// failed slot in slot order. n <= 0 returns nil without spawning anything.
func Run(n int, task func(i int) error) error {
	if n <= 0 {
		return nil
	}

	// Each slot writes only its own element.
	errs := make([]error, n)

	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			errs[i] = runTask(i, task)
			return errs[i]
		})
	}
	if g.Wait() == nil {
		return nil
	}

	taskErr := &fj.TaskError{Tasks: n}
	for i, err := range errs {
		if err != nil {
			taskErr.Failures = append(taskErr.Failures, fj.TaskFailure{Task: i, Err: err})
		}
	}
	return taskErr
}

// runTask converts a panic of task(i) into a *fj.PanicError carrying the
// panicking goroutine's stack.
func runTask(i int, task func(i int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &fj.PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return task(i)
}

// ParallelFor splits [0, length) with partition.Ranges into at most workers
// contiguous ranges and runs fn(start, end) for each range in its own
// goroutine. Blocks until all ranges complete.
//
// workers <= 0 is rejected with fj.ErrInvalidArgument before anything runs.
// length == 0 runs nothing.
func ParallelFor(length, workers int, fn func(start, end int) error) error {
	ranges, err := partition.Ranges(length, workers)
	if err != nil {
		return err
	}
	return Run(len(ranges), func(i int) error {
		return fn(ranges[i].Start, ranges[i].End)
	})
}

// Zip pairs the regions of two partitions computed for the same unit count.
// It panics if they do not have the same number of regions.
func Zip[A, B any](a []A, b []B) []lo.Tuple2[A, B] {
	if len(a) != len(b) {
		panic(fmt.Sprintf("dispatch: zipping %d regions with %d regions", len(a), len(b)))
	}
	return lo.Zip2(a, b)
}

// Zip3 pairs the regions of three partitions computed for the same unit
// count. It panics if they do not have the same number of regions.
func Zip3[A, B, C any](a []A, b []B, c []C) []lo.Tuple3[A, B, C] {
	if len(a) != len(b) || len(a) != len(c) {
		panic(fmt.Sprintf("dispatch: zipping %d, %d and %d regions", len(a), len(b), len(c)))
	}
	return lo.Zip3(a, b, c)
}
