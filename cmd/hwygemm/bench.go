// Copyright 2025 go-highway Authors
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
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tilekernel/hwygemm/hwy"
	"github.com/tilekernel/hwygemm/hwy/contrib/matmul"
	"k8s.io/klog/v2"
)

type benchOptions struct {
	m, p, n int
	iters   int
	dtype   string
	level   string
	seed    int64
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time C += A×B at every supported dispatch level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.OutOrStdout(), opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.m, "m", 256, "Rows of A and C.")
	flags.IntVar(&opts.p, "p", 256, "Columns of A, rows of B.")
	flags.IntVar(&opts.n, "n", 256, "Columns of B and C.")
	flags.IntVar(&opts.iters, "iters", 10, "Timed calls per level.")
	flags.StringVar(&opts.dtype, "dtype", "f32", "Element type: f32 or f64.")
	flags.StringVar(&opts.level, "level", "all", "Dispatch level to time, or all.")
	flags.Int64Var(&opts.seed, "seed", 1, "Random seed for the operands.")
	return cmd
}

func runBench(out io.Writer, opts benchOptions) error {
	if err := checkDims(opts.m, opts.p, opts.n); err != nil {
		return err
	}
	if opts.iters <= 0 {
		return errors.Errorf("--iters must be positive, got %d", opts.iters)
	}
	levels, err := selectLevels(opts.level)
	if err != nil {
		return err
	}
	klog.V(1).Infof("bench: %dx%dx%d %s, %d iterations, levels %v", opts.m, opts.p, opts.n, opts.dtype, opts.iters, levels)
	switch opts.dtype {
	case "f32", "float32":
		return benchLevels[float32](out, opts, levels)
	case "f64", "float64":
		return benchLevels[float64](out, opts, levels)
	default:
		return errors.Errorf("unknown --dtype %q, want f32 or f64", opts.dtype)
	}
}

func benchLevels[T hwy.Floats](out io.Writer, opts benchOptions, levels []hwy.DispatchLevel) error {
	m, p, n := opts.m, opts.p, opts.n
	rng := rand.New(rand.NewSource(opts.seed))
	a := randomSlice[T](rng, m*p)
	b := randomSlice[T](rng, p*n)
	flop := 2 * float64(m) * float64(p) * float64(n)

	fmt.Fprintf(out, "C[%s×%s] += A[%s×%s] · B[%s×%s], %s\n",
		humanize.Comma(int64(m)), humanize.Comma(int64(n)),
		humanize.Comma(int64(m)), humanize.Comma(int64(p)),
		humanize.Comma(int64(p)), humanize.Comma(int64(n)), opts.dtype)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tTILE\tPER CALL\tTHROUGHPUT")
	for _, level := range levels {
		k := matmul.KernelsFor[T](level)
		c := make([]T, m*n)
		matmul.MatMulAddKernels(k, m, p, n, a, p, b, n, c, n)

		start := time.Now()
		for range opts.iters {
			matmul.MatMulAddKernels(k, m, p, n, a, p, b, n, c, n)
		}
		elapsed := time.Since(start)
		perCall := elapsed / time.Duration(opts.iters)
		rate := flop * float64(opts.iters) / elapsed.Seconds()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k.Level, k.Tile, perCall, humanize.SIWithDigits(rate, 2, "FLOP/s"))
	}
	return w.Flush()
}
