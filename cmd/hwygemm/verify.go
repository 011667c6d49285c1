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
	"math"
	"math/rand"
	"slices"
	"text/tabwriter"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tilekernel/hwygemm/hwy"
	"github.com/tilekernel/hwygemm/hwy/contrib/matmul"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"k8s.io/klog/v2"
)

type verifyOptions struct {
	m, p, n int
	seed    int64
}

func newVerifyCmd() *cobra.Command {
	opts := verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every supported level against gonum's reference BLAS",
		Long: `Runs C += A×B at every supported level for float32 and float64 and compares
the result with gonum's Gemm. Levels without FMA must also match the scalar
level bit for bit. Exits with a non-zero status on any failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.OutOrStdout(), opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.m, "m", 67, "Rows of A and C.")
	flags.IntVar(&opts.p, "p", 45, "Columns of A, rows of B.")
	flags.IntVar(&opts.n, "n", 93, "Columns of B and C.")
	flags.Int64Var(&opts.seed, "seed", 1, "Random seed for the operands.")
	return cmd
}

func runVerify(out io.Writer, opts verifyOptions) error {
	if err := checkDims(opts.m, opts.p, opts.n); err != nil {
		return err
	}
	fmt.Fprintf(out, "Dispatch level: %s (%s)\n", hwy.CurrentLevel(), hwy.CurrentName())
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DTYPE\tLEVEL\tMAX ERROR\tTOLERANCE\tMATCHES SCALAR\tRESULT")
	failures := verifyLevels[float32](w, opts, "f32") + verifyLevels[float64](w, opts, "f64")
	if err := w.Flush(); err != nil {
		return err
	}
	if failures > 0 {
		return errors.Errorf("%d check(s) failed", failures)
	}
	fmt.Fprintln(out, "OK")
	return nil
}

// verifyLevels prints one row per supported level and returns the number of
// failed levels.
func verifyLevels[T hwy.Floats](w io.Writer, opts verifyOptions, dtype string) int {
	m, p, n := opts.m, opts.p, opts.n
	rng := rand.New(rand.NewSource(opts.seed))
	a := randomSlice[T](rng, m*p)
	b := randomSlice[T](rng, p*n)
	c0 := randomSlice[T](rng, m*n)

	want := slices.Clone(c0)
	referenceGemm(m, p, n, a, b, want)
	scalar := slices.Clone(c0)
	matmul.MatMulAddKernels(matmul.KernelsFor[T](hwy.DispatchScalar), m, p, n, a, p, b, n, scalar, n)

	var zero T
	eps := math.Ldexp(1, -52)
	if unsafe.Sizeof(zero) == 4 {
		eps = math.Ldexp(1, -23)
	}
	tolerance := 16 * eps * float64(p+1)

	failures := 0
	for _, level := range hwy.SupportedLevels() {
		c := slices.Clone(c0)
		matmul.MatMulAddKernels(matmul.KernelsFor[T](level), m, p, n, a, p, b, n, c, n)

		var maxErr float64
		for i := range c {
			maxErr = max(maxErr, math.Abs(float64(c[i])-float64(want[i])))
		}
		ok := maxErr <= tolerance
		identical := "n/a"
		if level != hwy.DispatchFMA {
			identical = "yes"
			if !slices.Equal(c, scalar) {
				identical = "no"
				ok = false
			}
		}
		result := "ok"
		if !ok {
			result = "FAIL"
			failures++
			klog.Warningf("verify: %s at level %s failed, max error %g", dtype, level, maxErr)
		}
		fmt.Fprintf(w, "%s\t%s\t%.3g\t%.3g\t%s\t%s\n", dtype, level, maxErr, tolerance, identical, result)
	}
	return failures
}

// referenceGemm computes c += a×b with gonum for packed row-major operands.
func referenceGemm[T hwy.Floats](m, p, n int, a, b, c []T) {
	switch a := any(a).(type) {
	case []float32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: m, Cols: p, Stride: p, Data: a},
			blas32.General{Rows: p, Cols: n, Stride: n, Data: any(b).([]float32)},
			1, blas32.General{Rows: m, Cols: n, Stride: n, Data: any(c).([]float32)})
	case []float64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: m, Cols: p, Stride: p, Data: a},
			blas64.General{Rows: p, Cols: n, Stride: n, Data: any(b).([]float64)},
			1, blas64.General{Rows: m, Cols: n, Stride: n, Data: any(c).([]float64)})
	default:
		panic(errors.Errorf("referenceGemm: unsupported element type %T", a))
	}
}
