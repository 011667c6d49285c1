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

// MatMulAddKernels computes C += A × B using the kernel family k, where A is
// m×p, B is p×n and C is m×n, all row-major with row strides rsa, rsb, rsc.
//
// C is split into BlockM-row bands. Each full band gets one Full call per
// BlockP-deep slice of A and B, in ascending depth order, then one
// DepthRemainder call for the last p%BlockP depth steps. The last m%BlockM
// rows get RowRemainder per depth slice and one Corner call. Within every
// call columns are split at alignedN = n - n%BlockN.
//
// No validation is done: the slices must cover the dimensions given and C
// must not overlap A or B. It does not allocate and is safe to call
// concurrently on disjoint C.
func MatMulAddKernels[T hwy.Floats](k *Kernels[T], m, p, n int, a []T, rsa int, b []T, rsb int, c []T, rsc int) {
	if m == 0 || p == 0 || n == 0 {
		return
	}
	blockM, blockP, blockN := k.Tile.BlockM, k.Tile.BlockP, k.Tile.BlockN
	alignedM := m - m%blockM
	alignedP := p - p%blockP
	alignedN := n - n%blockN
	surplusM := m - alignedM
	surplusP := p - alignedP

	for i := 0; i < alignedM; i += blockM {
		aBand := a[i*rsa:]
		cBand := c[i*rsc:]
		for d := 0; d < alignedP; d += blockP {
			k.Full(aBand[d:], rsa, b[d*rsb:], rsb, cBand, rsc, alignedN, n)
		}
		if surplusP > 0 {
			k.DepthRemainder(blockM, surplusP, aBand[alignedP:], rsa, b[alignedP*rsb:], rsb, cBand, rsc, alignedN, n)
		}
	}
	if surplusM == 0 {
		return
	}
	aBand := a[alignedM*rsa:]
	cBand := c[alignedM*rsc:]
	for d := 0; d < alignedP; d += blockP {
		k.RowRemainder(surplusM, aBand[d:], rsa, b[d*rsb:], rsb, cBand, rsc, alignedN, n)
	}
	if surplusP > 0 {
		k.Corner(surplusM, surplusP, aBand[alignedP:], rsa, b[alignedP*rsb:], rsb, cBand, rsc, n)
	}
}
