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
	"github.com/tilekernel/hwygemm/hwy"
)

// FullTileFunc computes C[BlockM×n] += A[BlockM×BlockP] · B[BlockP×n].
//
// a, b and c start at the tile's top-left element; rsa, rsb and rsc are the
// row strides. Columns [0, alignedN) are processed BlockN at a time with
// vector accumulators, columns [alignedN, n) one at a time with a
// horizontal dot product over the tile depth.
type FullTileFunc[T hwy.Floats] func(a []T, rsa int, b []T, rsb int, c []T, rsc int, alignedN, n int)

// RowRemainderFunc is FullTileFunc for the last rows < BlockM rows of C.
type RowRemainderFunc[T hwy.Floats] func(rows int, a []T, rsa int, b []T, rsb int, c []T, rsc int, alignedN, n int)

// DepthRemainderFunc adds the trailing depth < BlockP rank-1 updates to
// rows rows of C, one depth step at a time, accumulating directly into C.
type DepthRemainderFunc[T hwy.Floats] func(rows, depth int, a []T, rsa int, b []T, rsb int, c []T, rsc int, alignedN, n int)

// CornerFunc handles the block where both rows < BlockM and depth < BlockP.
type CornerFunc[T hwy.Floats] func(rows, depth int, a []T, rsa int, b []T, rsb int, c []T, rsc int, n int)

// Kernels is the micro-kernel family for one element type at one dispatch
// level, together with the tile shape the kernels are written for.
type Kernels[T hwy.Floats] struct {
	Level          hwy.DispatchLevel
	Tile           TileShape
	Full           FullTileFunc[T]
	RowRemainder   RowRemainderFunc[T]
	DepthRemainder DepthRemainderFunc[T]
	Corner         CornerFunc[T]
}

// clampLevel lowers level to the highest level this CPU can run.
func clampLevel(level hwy.DispatchLevel) hwy.DispatchLevel {
	if level < hwy.DispatchScalar {
		return hwy.DispatchScalar
	}
	return min(level, hwy.CurrentLevel())
}

// KernelsFloat32 returns the float32 kernels for level, or for the highest
// supported level below it if this CPU cannot run level.
func KernelsFloat32(level hwy.DispatchLevel) *Kernels[float32] {
	level = clampLevel(level)
	k := Kernels[float32]{Level: level, Tile: TileFor[float32](level)}
	switch level {
	case hwy.DispatchSSE2:
		k.Full = fullTile_sse2_Float32
		k.RowRemainder = rowTile_sse2_Float32
		k.DepthRemainder = depthRemainder_sse2_Float32
		k.Corner = corner_sse2_Float32
	case hwy.DispatchAVX:
		k.Full = fullTile_avx_Float32
		k.RowRemainder = rowTile_avx_Float32
		k.DepthRemainder = depthRemainder_avx_Float32
		k.Corner = corner_avx_Float32
	case hwy.DispatchFMA:
		k.Full = fullTile_fma_Float32
		k.RowRemainder = rowTile_fma_Float32
		k.DepthRemainder = depthRemainder_fma_Float32
		k.Corner = corner_fma_Float32
	default:
		setFallback(&k)
	}
	return &k
}

// KernelsFloat64 returns the float64 kernels for level, or for the highest
// supported level below it if this CPU cannot run level.
func KernelsFloat64(level hwy.DispatchLevel) *Kernels[float64] {
	level = clampLevel(level)
	k := Kernels[float64]{Level: level, Tile: TileFor[float64](level)}
	switch level {
	case hwy.DispatchSSE2:
		k.Full = fullTile_sse2_Float64
		k.RowRemainder = rowTile_sse2_Float64
		k.DepthRemainder = depthRemainder_sse2_Float64
		k.Corner = corner_sse2_Float64
	case hwy.DispatchAVX:
		k.Full = fullTile_avx_Float64
		k.RowRemainder = rowTile_avx_Float64
		k.DepthRemainder = depthRemainder_avx_Float64
		k.Corner = corner_avx_Float64
	case hwy.DispatchFMA:
		k.Full = fullTile_fma_Float64
		k.RowRemainder = rowTile_fma_Float64
		k.DepthRemainder = depthRemainder_fma_Float64
		k.Corner = corner_fma_Float64
	default:
		setFallback(&k)
	}
	return &k
}

// KernelsFor returns the kernels for T at level. Types other than float32
// and float64 (named float types) always get the scalar kernels.
func KernelsFor[T hwy.Floats](level hwy.DispatchLevel) *Kernels[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(KernelsFloat32(level)).(*Kernels[T])
	case float64:
		return any(KernelsFloat64(level)).(*Kernels[T])
	default:
		k := &Kernels[T]{Level: hwy.DispatchScalar, Tile: TileFallback[T]()}
		setFallback(k)
		return k
	}
}

func setFallback[T hwy.Floats](k *Kernels[T]) {
	bm, bp := k.Tile.BlockM, k.Tile.BlockP
	k.Full = func(a []T, rsa int, b []T, rsb int, c []T, rsc int, alignedN, n int) {
		BaseTile_fallback(bm, bp, a, rsa, b, rsb, c, rsc, n)
	}
	k.RowRemainder = func(rows int, a []T, rsa int, b []T, rsb int, c []T, rsc int, alignedN, n int) {
		BaseTile_fallback(rows, bp, a, rsa, b, rsb, c, rsc, n)
	}
	k.DepthRemainder = func(rows, depth int, a []T, rsa int, b []T, rsb int, c []T, rsc int, alignedN, n int) {
		BaseRankUpdate_fallback(rows, depth, a, rsa, b, rsb, c, rsc, n)
	}
	k.Corner = BaseRankUpdate_fallback[T]
}
