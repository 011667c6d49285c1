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

package matmul

import (
	"reflect"
	"sync"

	"github.com/tilekernel/hwygemm/hwy"
	"k8s.io/klog/v2"
)

// MultiplyAccumulateFloat32 computes C += A × B for float32 with the kernels
// of the level selected at package initialization. A is m×p, B is p×n and
// C is m×n; rsa, rsb and rsc are their row strides.
//
// Inputs are not validated, see MatMulAdd for the checked variant.
var MultiplyAccumulateFloat32 func(m, p, n int, a []float32, rsa int, b []float32, rsb int, c []float32, rsc int)

// MultiplyAccumulateFloat64 is the float64 version of MultiplyAccumulateFloat32.
var MultiplyAccumulateFloat64 func(m, p, n int, a []float64, rsa int, b []float64, rsb int, c []float64, rsc int)

// Bound kernel tables, kept so that generic callers share them.
var (
	boundFloat32 *Kernels[float32]
	boundFloat64 *Kernels[float64]

	// boundNamed holds the scalar tables of named float types, keyed by
	// reflect.Type. Each is built on first use.
	boundNamed sync.Map
)

func init() {
	bindKernels(hwy.CurrentLevel())
}

// bindKernels selects the kernel tables once. The dispatch variables are
// read-only afterwards.
func bindKernels(level hwy.DispatchLevel) {
	boundFloat32 = KernelsFloat32(level)
	boundFloat64 = KernelsFloat64(level)
	k32, k64 := boundFloat32, boundFloat64
	MultiplyAccumulateFloat32 = func(m, p, n int, a []float32, rsa int, b []float32, rsb int, c []float32, rsc int) {
		MatMulAddKernels(k32, m, p, n, a, rsa, b, rsb, c, rsc)
	}
	MultiplyAccumulateFloat64 = func(m, p, n int, a []float64, rsa int, b []float64, rsb int, c []float64, rsc int) {
		MatMulAddKernels(k64, m, p, n, a, rsa, b, rsb, c, rsc)
	}
	klog.V(1).Infof("matmul: bound float32 kernels %s (tile %s), float64 kernels %s (tile %s)",
		k32.Level, k32.Tile, k64.Level, k64.Tile)
}

// MultiplyAccumulate computes C += A × B with the kernels bound at package
// initialization. See MultiplyAccumulateFloat32.
func MultiplyAccumulate[T hwy.Floats](m, p, n int, a []T, rsa int, b []T, rsb int, c []T, rsc int) {
	MatMulAddKernels(BoundKernels[T](), m, p, n, a, rsa, b, rsb, c, rsc)
}

// BoundKernels returns the kernel table selected at package initialization
// for T.
func BoundKernels[T hwy.Floats]() *Kernels[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(boundFloat32).(*Kernels[T])
	case float64:
		return any(boundFloat64).(*Kernels[T])
	default:
		key := reflect.TypeFor[T]()
		if k, ok := boundNamed.Load(key); ok {
			return k.(*Kernels[T])
		}
		k, _ := boundNamed.LoadOrStore(key, KernelsFor[T](hwy.DispatchScalar))
		return k.(*Kernels[T])
	}
}
