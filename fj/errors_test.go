// Copyright 2025 go-forkjoin Authors. SPDX-License-Identifier: Apache-2.0

package fj

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestInvalidArgumentf(t *testing.T) {
	err := InvalidArgumentf("len(a)=%d, len(b)=%d", 3, 4)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("errors.Is(%v, ErrInvalidArgument) = false", err)
	}
	if got, want := err.Error(), "invalid argument: len(a)=3, len(b)=4"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTaskErrorUnwrap(t *testing.T) {
	err := error(&TaskError{
		Tasks: 4,
		Failures: []TaskFailure{
			{Task: 1, Err: io.ErrUnexpectedEOF},
			{Task: 3, Err: ErrTaskPanic},
		},
	})

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is(err, io.ErrUnexpectedEOF) = false")
	}
	if !errors.Is(err, ErrTaskPanic) {
		t.Error("errors.Is(err, ErrTaskPanic) = false")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Error("task failure must not look like an invalid argument")
	}

	var te *TaskError
	if !errors.As(err, &te) {
		t.Fatal("errors.As(err, *TaskError) = false")
	}
	msg := te.Error()
	for _, want := range []string{"2 of 4 tasks failed", "task 1:", "task 3:"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestPanicError(t *testing.T) {
	err := error(&PanicError{Value: "boom", Stack: []byte("goroutine 7 [running]:\n...")})
	if !errors.Is(err, ErrTaskPanic) {
		t.Error("errors.Is(err, ErrTaskPanic) = false")
	}
	if got, want := err.Error(), "task panicked: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := error(&TaskError{Tasks: 2, Failures: []TaskFailure{{Task: 0, Err: err}}})
	if msg := wrapped.Error(); strings.Contains(msg, "\n") {
		t.Errorf("TaskError.Error() spans lines: %q", msg)
	}
	var pe *PanicError
	if !errors.As(wrapped, &pe) || pe.Value != "boom" {
		t.Errorf("errors.As(TaskError, *PanicError) = %v, %+v", pe != nil, pe)
	}
}
