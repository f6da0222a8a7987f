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

package fj

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by every error reporting arguments rejected
// before any task was spawned: mismatched buffer lengths, a non-positive
// worker count, or matrix dimensions that disagree with the buffers.
// No output element has been written when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrTaskPanic is wrapped by the failure of a task that panicked.
var ErrTaskPanic = errors.New("task panicked")

// InvalidArgumentf returns an error wrapping ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// PanicError is the failure of a task that panicked. Error reports only the
// panic value; the goroutine stack is kept in Stack.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrTaskPanic, e.Value)
}

// Unwrap returns ErrTaskPanic.
func (e *PanicError) Unwrap() error {
	return ErrTaskPanic
}

// TaskFailure records the error of one task slot of a dispatch.
type TaskFailure struct {
	Task int
	Err  error
}

// TaskError is returned when one or more tasks of a dispatch failed. All
// tasks were joined before it was returned; the contents of the output
// buffer are undefined.
type TaskError struct {
	// Tasks is the number of tasks spawned by the dispatch.
	Tasks    int
	Failures []TaskFailure
}

func (e *TaskError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d of %d tasks failed", len(e.Failures), e.Tasks)
	for i, f := range e.Failures {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "task %d: %v", f.Task, f.Err)
	}
	return sb.String()
}

// Unwrap exposes the error of every failed task to errors.Is and errors.As.
func (e *TaskError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}
