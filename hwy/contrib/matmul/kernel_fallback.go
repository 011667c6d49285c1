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

import "github.com/tilekernel/hwygemm/hwy"

// BaseTile_fallback computes C[rows×n] += A[rows×depth] · B[depth×n] one
// element at a time. Each element's products are summed from zero in
// ascending depth order and the sum is then added to C, the same order the
// vector kernels use for a full-depth tile.
func BaseTile_fallback[T hwy.Floats](rows, depth int, a []T, rsa int, b []T, rsb int, c []T, rsc int, n int) {
	for i := range rows {
		aRow := a[i*rsa : i*rsa+depth]
		cRow := c[i*rsc : i*rsc+n]
		for j := range cRow {
			var sum T
			for k, av := range aRow {
				sum += T(av * b[k*rsb+j])
			}
			cRow[j] += sum
		}
	}
}

// BaseRankUpdate_fallback adds depth rank-1 updates to C[rows×n], one depth
// step at a time: c = c + a[i,k]*b[k,j] for ascending k.
func BaseRankUpdate_fallback[T hwy.Floats](rows, depth int, a []T, rsa int, b []T, rsb int, c []T, rsc int, n int) {
	for k := range depth {
		bRow := b[k*rsb : k*rsb+n]
		for i := range rows {
			av := a[i*rsa+k]
			cRow := c[i*rsc : i*rsc+n]
			for j, bv := range bRow {
				cRow[j] += T(av * bv)
			}
		}
	}
}
