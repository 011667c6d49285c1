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

// 128-bit kernels: 4 rows × 2 vectors of accumulators per tile.
// Products are rounded before they are added, matching the scalar kernels.

package matmul

import "github.com/tilekernel/hwygemm/hwy"

func fullTile_sse2_Float32(a []float32, rsa int, b []float32, rsb int, c []float32, rsc int, alignedN, n int) {
	rowTile_sse2_Float32(4, a, rsa, b, rsb, c, rsc, alignedN, n)
}

func rowTile_sse2_Float32(rows int, a []float32, rsa int, b []float32, rsb int, c []float32, rsc int, alignedN, n int) {
	const lanes = 4
	zero := hwy.BroadcastFloat32x4(0)
	for j := 0; j < alignedN; j += 2 * lanes {
		var acc [4][2]hwy.Float32x4
		for i := range rows {
			acc[i][0], acc[i][1] = zero, zero
		}
		for k := range blockPFloat32 {
			bRow := b[k*rsb+j:]
			b0 := hwy.LoadFloat32x4Slice(bRow)
			b1 := hwy.LoadFloat32x4Slice(bRow[lanes:])
			for i := range rows {
				av := hwy.BroadcastFloat32x4(a[i*rsa+k])
				acc[i][0] = acc[i][0].Add(av.Mul(b0))
				acc[i][1] = acc[i][1].Add(av.Mul(b1))
			}
		}
		for i := range rows {
			cRow := c[i*rsc+j:]
			hwy.LoadFloat32x4Slice(cRow).Add(acc[i][0]).StoreSlice(cRow)
			hwy.LoadFloat32x4Slice(cRow[lanes:]).Add(acc[i][1]).StoreSlice(cRow[lanes:])
		}
	}
	for j := alignedN; j < n; j++ {
		b0 := hwy.GatherFloat32x4(b[j:], rsb)
		b1 := hwy.GatherFloat32x4(b[lanes*rsb+j:], rsb)
		for i := range rows {
			aRow := a[i*rsa:]
			sum := hwy.ReduceSumOrderedFloat32x4(hwy.LoadFloat32x4Slice(aRow).Mul(b0), 0)
			sum = hwy.ReduceSumOrderedFloat32x4(hwy.LoadFloat32x4Slice(aRow[lanes:]).Mul(b1), sum)
			c[i*rsc+j] += sum
		}
	}
}

func depthRemainder_sse2_Float32(rows, depth int, a []float32, rsa int, b []float32, rsb int, c []float32, rsc int, alignedN, n int) {
	const lanes = 4
	for k := range depth {
		bRow := b[k*rsb : k*rsb+n]
		for i := range rows {
			ak := a[i*rsa+k]
			av := hwy.BroadcastFloat32x4(ak)
			cRow := c[i*rsc : i*rsc+n]
			for j := 0; j < alignedN; j += 2 * lanes {
				c0 := hwy.LoadFloat32x4Slice(cRow[j:])
				c1 := hwy.LoadFloat32x4Slice(cRow[j+lanes:])
				c0.Add(av.Mul(hwy.LoadFloat32x4Slice(bRow[j:]))).StoreSlice(cRow[j:])
				c1.Add(av.Mul(hwy.LoadFloat32x4Slice(bRow[j+lanes:]))).StoreSlice(cRow[j+lanes:])
			}
			for j := alignedN; j < n; j++ {
				cRow[j] += float32(ak * bRow[j])
			}
		}
	}
}

func corner_sse2_Float32(rows, depth int, a []float32, rsa int, b []float32, rsb int, c []float32, rsc int, n int) {
	depthRemainder_sse2_Float32(rows, depth, a, rsa, b, rsb, c, rsc, n-n%8, n)
}

func fullTile_sse2_Float64(a []float64, rsa int, b []float64, rsb int, c []float64, rsc int, alignedN, n int) {
	rowTile_sse2_Float64(4, a, rsa, b, rsb, c, rsc, alignedN, n)
}

func rowTile_sse2_Float64(rows int, a []float64, rsa int, b []float64, rsb int, c []float64, rsc int, alignedN, n int) {
	const lanes = 2
	zero := hwy.BroadcastFloat64x2(0)
	for j := 0; j < alignedN; j += 2 * lanes {
		var acc [4][2]hwy.Float64x2
		for i := range rows {
			acc[i][0], acc[i][1] = zero, zero
		}
		for k := range blockPFloat64 {
			bRow := b[k*rsb+j:]
			b0 := hwy.LoadFloat64x2Slice(bRow)
			b1 := hwy.LoadFloat64x2Slice(bRow[lanes:])
			for i := range rows {
				av := hwy.BroadcastFloat64x2(a[i*rsa+k])
				acc[i][0] = acc[i][0].Add(av.Mul(b0))
				acc[i][1] = acc[i][1].Add(av.Mul(b1))
			}
		}
		for i := range rows {
			cRow := c[i*rsc+j:]
			hwy.LoadFloat64x2Slice(cRow).Add(acc[i][0]).StoreSlice(cRow)
			hwy.LoadFloat64x2Slice(cRow[lanes:]).Add(acc[i][1]).StoreSlice(cRow[lanes:])
		}
	}
	for j := alignedN; j < n; j++ {
		b0 := hwy.GatherFloat64x2(b[j:], rsb)
		b1 := hwy.GatherFloat64x2(b[lanes*rsb+j:], rsb)
		for i := range rows {
			aRow := a[i*rsa:]
			sum := hwy.ReduceSumOrderedFloat64x2(hwy.LoadFloat64x2Slice(aRow).Mul(b0), 0)
			sum = hwy.ReduceSumOrderedFloat64x2(hwy.LoadFloat64x2Slice(aRow[lanes:]).Mul(b1), sum)
			c[i*rsc+j] += sum
		}
	}
}

func depthRemainder_sse2_Float64(rows, depth int, a []float64, rsa int, b []float64, rsb int, c []float64, rsc int, alignedN, n int) {
	const lanes = 2
	for k := range depth {
		bRow := b[k*rsb : k*rsb+n]
		for i := range rows {
			ak := a[i*rsa+k]
			av := hwy.BroadcastFloat64x2(ak)
			cRow := c[i*rsc : i*rsc+n]
			for j := 0; j < alignedN; j += 2 * lanes {
				c0 := hwy.LoadFloat64x2Slice(cRow[j:])
				c1 := hwy.LoadFloat64x2Slice(cRow[j+lanes:])
				c0.Add(av.Mul(hwy.LoadFloat64x2Slice(bRow[j:]))).StoreSlice(cRow[j:])
				c1.Add(av.Mul(hwy.LoadFloat64x2Slice(bRow[j+lanes:]))).StoreSlice(cRow[j+lanes:])
			}
			for j := alignedN; j < n; j++ {
				cRow[j] += float64(ak * bRow[j])
			}
		}
	}
}

func corner_sse2_Float64(rows, depth int, a []float64, rsa int, b []float64, rsb int, c []float64, rsc int, n int) {
	depthRemainder_sse2_Float64(rows, depth, a, rsa, b, rsb, c, rsc, n-n%4, n)
}
