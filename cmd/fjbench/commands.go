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

package main

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-forkjoin/fj"
	"github.com/ajroetker/go-forkjoin/internal/bench"
)

// printer formats counts with grouping separators (1,048,576).
var printer = message.NewPrinter(language.English)

func printResult(w io.Writer, dtype string, r bench.Result, unit string) {
	printer.Fprintf(w, "%-14s %-4s %12d %s/op  %10v/op  %16.0f %s/s\n",
		r.Name, dtype, r.Units, unit, r.PerOp(), r.UnitsPerSecond(), unit)
}

func newAddCmd(opts *options) *cobra.Command {
	var (
		length, iters int
		unsafe        bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Time parallel vector addition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 0 {
				return fj.InvalidArgumentf("--len %d, want >= 0", length)
			}
			res, err := dtypes[opts.dtype].add(length, opts.workers, iters, unsafe)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), opts.dtype, res, "elems")
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "len", 1<<20, "vector length")
	cmd.Flags().IntVar(&iters, "iters", 10, "number of dispatches to time")
	cmd.Flags().BoolVar(&unsafe, "unsafe", false, "use the raw-pointer path")
	return cmd
}

func newMatMulCmd(opts *options) *cobra.Command {
	var (
		m, n, k, iters int
		unsafe         bool
	)
	cmd := &cobra.Command{
		Use:   "matmul",
		Short: "Time parallel matrix multiplication C(m,n) = A(m,k) * B(k,n)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDims(m, n, k); err != nil {
				return err
			}
			res, err := dtypes[opts.dtype].matmul(m, n, k, opts.workers, iters, unsafe)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), opts.dtype, res, "madds")
			return nil
		},
	}
	cmd.Flags().IntVar(&m, "m", 256, "rows of A and C")
	cmd.Flags().IntVar(&n, "n", 256, "columns of B and C")
	cmd.Flags().IntVar(&k, "k", 256, "columns of A, rows of B")
	cmd.Flags().IntVar(&iters, "iters", 5, "number of dispatches to time")
	cmd.Flags().BoolVar(&unsafe, "unsafe", false, "use the raw-pointer path")
	return cmd
}

func checkDims(m, n, k int) error {
	if m < 0 || n < 0 || k < 0 {
		return fj.InvalidArgumentf("--m %d --n %d --k %d, want >= 0", m, n, k)
	}
	for _, d := range [][2]int{{m, k}, {k, n}, {m, n}} {
		if _, ok := fj.MulDims(d[0], d[1]); !ok {
			return fj.InvalidArgumentf("--m %d --n %d --k %d: matrix size overflows int", m, n, k)
		}
	}
	return nil
}

// errMismatch reports that the safe and raw-pointer paths disagreed.
type errMismatch struct {
	kernel string
	index  int
}

func (e *errMismatch) Error() string {
	return printer.Sprintf("%s: safe and raw-pointer outputs differ at index %d", e.kernel, e.index)
}

func newBenchCmd(opts *options) *cobra.Command {
	var (
		length, m, n, k, iters int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Check the raw-pointer path against the safe path and time both",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 0 {
				return fj.InvalidArgumentf("--len %d, want >= 0", length)
			}
			if err := checkDims(m, n, k); err != nil {
				return err
			}
			r := dtypes[opts.dtype]

			addDiff, mulDiff, err := r.compare(length, m, n, k, opts.workers)
			if err != nil {
				return err
			}
			if addDiff >= 0 {
				return &errMismatch{kernel: "add", index: addDiff}
			}
			if mulDiff >= 0 {
				return &errMismatch{kernel: "matmul", index: mulDiff}
			}
			slog.Info("outputs bit-identical", "dtype", opts.dtype, "len", length, "m", m, "n", n, "k", k, "workers", opts.workers)

			w := cmd.OutOrStdout()
			for _, unsafe := range []bool{false, true} {
				res, err := r.add(length, opts.workers, iters, unsafe)
				if err != nil {
					return err
				}
				printResult(w, opts.dtype, res, "elems")
			}
			for _, unsafe := range []bool{false, true} {
				res, err := r.matmul(m, n, k, opts.workers, iters, unsafe)
				if err != nil {
					return err
				}
				printResult(w, opts.dtype, res, "madds")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "len", 1<<20, "vector length")
	cmd.Flags().IntVar(&m, "m", 128, "rows of A and C")
	cmd.Flags().IntVar(&n, "n", 128, "columns of B and C")
	cmd.Flags().IntVar(&k, "k", 128, "columns of A, rows of B")
	cmd.Flags().IntVar(&iters, "iters", 5, "number of dispatches to time per path")
	return cmd
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected CPU target and worker defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			printer.Fprintf(w, "target:                %s\n", fj.CurrentTarget())
			printer.Fprintf(w, "cache line:            %d bytes\n", fj.CacheLineSize())
			printer.Fprintf(w, "GOMAXPROCS:            %d\n", runtime.GOMAXPROCS(0))
			printer.Fprintf(w, "available parallelism: %d\n", fj.AvailableParallelism())
			printer.Fprintf(w, "workers:               %d\n", opts.workers)
			return nil
		},
	}
}
