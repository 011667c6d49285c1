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

// 256-bit kernels with fused multiply-add. Each multiply-add rounds once,
// so results differ from the other levels in the last bits.

package matmul

import "github.com/tilekernel/hwygemm/hwy"

func fullTile_fma_Float32(a []float32, rsa int, b []float32, rsb int, c []float32, rsc int, alignedN, n int) {
	rowTile_fma_Float32(6, a, rsa, b, rsb, c, rsc, alignedN, n)
}

func rowTile_fma_Float32(rows int, a []float32, rsa int, b []float32, rsb int, c []float32, rsc int, alignedN, n int) {
	const lanes = 8
	zero := hwy.BroadcastFloat32x8(0)
	for j := 0; j < alignedN; j += 2 * lanes {
		var acc [6][2]hwy.Float32x8
		for i := range rows {
			acc[i][0], acc[i][1] = zero, zero
		}
		for k := range blockPFloat32 {
			bRow := b[k*rsb+j:]
			b0 := hwy.LoadFloat32x8Slice(bRow)
			b1 := hwy.LoadFloat32x8Slice(bRow[lanes:])
			for i := range rows {
				av := hwy.BroadcastFloat32x8(a[i*rsa+k])
				acc[i][0] = av.MulAdd(b0, acc[i][0])
				acc[i][1] = av.MulAdd(b1, acc[i][1])
			}
		}
		for i := range rows {
			cRow := c[i*rsc+j:]
			hwy.LoadFloat32x8Slice(cRow).Add(acc[i][0]).StoreSlice(cRow)
			hwy.LoadFloat32x8Slice(cRow[lanes:]).Add(acc[i][1]).StoreSlice(cRow[lanes:])
		}
	}
	for j := alignedN; j < n; j++ {
		b0 := hwy.GatherFloat32x8(b[j:], rsb)
		for i := range rows {
			aRow := a[i*rsa:]
			sum := hwy.DotFusedFloat32x8(hwy.LoadFloat32x8Slice(aRow), b0, 0)
			c[i*rsc+j] += sum
		}
	}
}

func depthRemainder_fma_Float32(rows, depth int, a []float32, rsa int, b []float32, rsb int, c []float32, rsc int, alignedN, n int) {
	const lanes = 8
	for k := range depth {
		bRow := b[k*rsb : k*rsb+n]
		for i := range rows {
			ak := a[i*rsa+k]
			av := hwy.BroadcastFloat32x8(ak)
			cRow := c[i*rsc : i*rsc+n]
			for j := 0; j < alignedN; j += 2 * lanes {
				c0 := hwy.LoadFloat32x8Slice(cRow[j:])
				c1 := hwy.LoadFloat32x8Slice(cRow[j+lanes:])
				av.MulAdd(hwy.LoadFloat32x8Slice(bRow[j:]), c0).StoreSlice(cRow[j:])
				av.MulAdd(hwy.LoadFloat32x8Slice(bRow[j+lanes:]), c1).StoreSlice(cRow[j+lanes:])
			}
			for j := alignedN; j < n; j++ {
				cRow[j] = hwy.MulAddScalar(ak, bRow[j], cRow[j])
			}
		}
	}
}

func corner_fma_Float32(rows, depth int, a []float32, rsa int, b []float32, rsb int, c []float32, rsc int, n int) {
	depthRemainder_fma_Float32(rows, depth, a, rsa, b, rsb, c, rsc, n-n%16, n)
}

func fullTile_fma_Float64(a []float64, rsa int, b []float64, rsb int, c []float64, rsc int, alignedN, n int) {
	rowTile_fma_Float64(6, a, rsa, b, rsb, c, rsc, alignedN, n)
}

func rowTile_fma_Float64(rows int, a []float64, rsa int, b []float64, rsb int, c []float64, rsc int, alignedN, n int) {
	const lanes = 4
	zero := hwy.BroadcastFloat64x4(0)
	for j := 0; j < alignedN; j += 2 * lanes {
		var acc [6][2]hwy.Float64x4
		for i := range rows {
			acc[i][0], acc[i][1] = zero, zero
		}
		for k := range blockPFloat64 {
			bRow := b[k*rsb+j:]
			b0 := hwy.LoadFloat64x4Slice(bRow)
			b1 := hwy.LoadFloat64x4Slice(bRow[lanes:])
			for i := range rows {
				av := hwy.BroadcastFloat64x4(a[i*rsa+k])
				acc[i][0] = av.MulAdd(b0, acc[i][0])
				acc[i][1] = av.MulAdd(b1, acc[i][1])
			}
		}
		for i := range rows {
			cRow := c[i*rsc+j:]
			hwy.LoadFloat64x4Slice(cRow).Add(acc[i][0]).StoreSlice(cRow)
			hwy.LoadFloat64x4Slice(cRow[lanes:]).Add(acc[i][1]).StoreSlice(cRow[lanes:])
		}
	}
	for j := alignedN; j < n; j++ {
		b0 := hwy.GatherFloat64x4(b[j:], rsb)
		for i := range rows {
			aRow := a[i*rsa:]
			sum := hwy.DotFusedFloat64x4(hwy.LoadFloat64x4Slice(aRow), b0, 0)
			c[i*rsc+j] += sum
		}
	}
}

func depthRemainder_fma_Float64(rows, depth int, a []float64, rsa int, b []float64, rsb int, c []float64, rsc int, alignedN, n int) {
	const lanes = 4
	for k := range depth {
		bRow := b[k*rsb : k*rsb+n]
		for i := range rows {
			ak := a[i*rsa+k]
			av := hwy.BroadcastFloat64x4(ak)
			cRow := c[i*rsc : i*rsc+n]
			for j := 0; j < alignedN; j += 2 * lanes {
				c0 := hwy.LoadFloat64x4Slice(cRow[j:])
				c1 := hwy.LoadFloat64x4Slice(cRow[j+lanes:])
				av.MulAdd(hwy.LoadFloat64x4Slice(bRow[j:]), c0).StoreSlice(cRow[j:])
				av.MulAdd(hwy.LoadFloat64x4Slice(bRow[j+lanes:]), c1).StoreSlice(cRow[j+lanes:])
			}
			for j := alignedN; j < n; j++ {
				cRow[j] = hwy.MulAddScalar(ak, bRow[j], cRow[j])
			}
		}
	}
}

func corner_fma_Float64(rows, depth int, a []float64, rsa int, b []float64, rsb int, c []float64, rsc int, n int) {
	depthRemainder_fma_Float64(rows, depth, a, rsa, b, rsb, c, rsc, n-n%8, n)
}
