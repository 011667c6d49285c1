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
	"math"
	"math/rand"
	"testing"

	"github.com/tilekernel/hwygemm/hwy"
)

// referenceMulAdd computes C += A * B with a naive triple loop, summing in
// float64 and rounding once per element.
func referenceMulAdd[T hwy.Floats](m, p, n int, a []T, rsa int, b []T, rsb int, c []T, rsc int) {
	for i := range m {
		for j := range n {
			var sum float64
			for k := range p {
				sum += float64(a[i*rsa+k]) * float64(b[k*rsb+j])
			}
			c[i*rsc+j] = T(float64(c[i*rsc+j]) + sum)
		}
	}
}

// randomMatrix returns rows×stride values in [-1, 1).
func randomMatrix[T hwy.Floats](rng *rand.Rand, rows, stride int) []T {
	data := make([]T, rows*stride)
	for i := range data {
		data[i] = T(rng.Float64()*2 - 1)
	}
	return data
}

// integerMatrix returns rows×stride small integers in [-4, 4]. Products and
// sums of these are exact, so every level must agree with the reference.
func integerMatrix[T hwy.Floats](rng *rand.Rand, rows, stride int) []T {
	data := make([]T, rows*stride)
	for i := range data {
		data[i] = T(rng.Intn(9) - 4)
	}
	return data
}

func maxAbsDiff[T hwy.Floats](got, want []T) float64 {
	var maxErr float64
	for i := range got {
		maxErr = max(maxErr, math.Abs(float64(got[i])-float64(want[i])))
	}
	return maxErr
}

func sizeStr(m, p, n int) string {
	return fmt.Sprintf("%dx%dx%d", m, p, n)
}

// testShapes covers tile multiples and every combination of remainders for
// all tile shapes in use.
var testShapes = [][3]int{
	{1, 1, 1},
	{2, 3, 2},
	{3, 7, 5},
	{4, 8, 8},
	{4, 8, 16},
	{6, 8, 16},
	{12, 16, 32},
	{5, 9, 17},
	{7, 11, 19},
	{13, 4, 3},
	{3, 33, 7},
	{17, 17, 17},
	{24, 24, 24},
	{31, 29, 37},
}

// forEachLevel runs fn as a subtest for every level this CPU supports.
func forEachLevel(t *testing.T, fn func(t *testing.T, level hwy.DispatchLevel)) {
	t.Helper()
	t.Logf("Dispatch level: %s", hwy.CurrentName())
	for _, level := range hwy.SupportedLevels() {
		t.Run(level.String(), func(t *testing.T) {
			fn(t, level)
		})
	}
}
