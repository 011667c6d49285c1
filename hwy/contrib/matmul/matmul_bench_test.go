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
	"fmt"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/tilekernel/hwygemm/hwy"
)

func BenchmarkMatMulAddFloat32(b *testing.B) {
	benchmarkMatMulAdd[float32](b)
}

func BenchmarkMatMulAddFloat64(b *testing.B) {
	benchmarkMatMulAdd[float64](b)
}

func benchmarkMatMulAdd[T hwy.Floats](b *testing.B) {
	b.Logf("Dispatch level: %s", hwy.CurrentName())
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{16, 64, 127, 256} {
		a := randomMatrix[T](rng, size, size)
		bm := randomMatrix[T](rng, size, size)
		c := make([]T, size*size)
		for _, level := range hwy.SupportedLevels() {
			k := KernelsFor[T](level)
			b.Run(fmt.Sprintf("%s/%d", level, size), func(b *testing.B) {
				var zero T
				b.SetBytes(int64(3 * size * size * int(unsafe.Sizeof(zero))))
				for range b.N {
					MatMulAddKernels(k, size, size, size, a, size, bm, size, c, size)
				}
				b.ReportMetric(float64(2*size*size*size)*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOPS")
			})
		}
	}
}

func ExampleMatMulAdd() {
	a, _ := NewMatrix([]float32{1, 2, 3, 4, 5, 6}, 2, 3, 0)
	b, _ := NewMatrix([]float32{7, 8, 9, 10, 11, 12}, 3, 2, 0)
	c := NewDense[float32](2, 2)
	if err := MatMulAdd(a, b, c); err != nil {
		panic(err)
	}
	fmt.Println(c.Row(0), c.Row(1))
	// Output: [58 64] [139 154]
}

func ExampleMultiplyAccumulateFloat64() {
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{7, 8, 9, 10, 11, 12}
	c := []float64{1, 1, 1, 1}
	MultiplyAccumulateFloat64(2, 3, 2, a, 3, b, 2, c, 2)
	fmt.Println(c)
	// Output: [59 65 140 155]
}
