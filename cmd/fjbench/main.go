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

// Command fjbench runs the go-forkjoin parallel kernels from the command line
// and compares the slice path against the raw-pointer path.
//
// Usage:
//
//	fjbench add --len 1000000 --workers 8
//	fjbench matmul --m 512 --n 512 --k 512 --dtype f64 --unsafe
//	fjbench bench --len 1048576 --m 256 --n 256 --k 256 --iters 20
//	fjbench info
//
// The worker count defaults to fj.AvailableParallelism(), which honours the
// FJ_NUM_WORKERS and FJ_SEQUENTIAL environment variables.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-forkjoin/fj"
)

// options are the flags shared by every subcommand.
type options struct {
	workers  int
	dtype    string
	logLevel levelFlag
}

// levelFlag is a pflag.Value parsing slog level names.
type levelFlag struct {
	slog.Level
}

var _ pflag.Value = (*levelFlag)(nil)

func (l *levelFlag) Set(s string) error {
	return l.UnmarshalText([]byte(s))
}

func (l *levelFlag) Type() string {
	return "level"
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "fjbench",
		Short:         "Run fork-join parallel kernels and compare the safe and raw-pointer paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: opts.logLevel.Level})
			slog.SetDefault(slog.New(handler))

			if opts.workers <= 0 {
				return fj.InvalidArgumentf("--workers %d, want > 0", opts.workers)
			}
			if _, ok := dtypes[opts.dtype]; !ok {
				return fj.InvalidArgumentf("--dtype %q, want one of %s", opts.dtype, strings.Join(dtypeNames(), ", "))
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.IntVarP(&opts.workers, "workers", "w", fj.AvailableParallelism(), "number of parallel tasks per dispatch")
	flags.StringVar(&opts.dtype, "dtype", "f32", "element type ("+strings.Join(dtypeNames(), ", ")+")")
	flags.Var(&opts.logLevel, "log-level", "log level (debug, info, warn, error)")

	root.AddCommand(
		newAddCmd(opts),
		newMatMulCmd(opts),
		newBenchCmd(opts),
		newInfoCmd(opts),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
