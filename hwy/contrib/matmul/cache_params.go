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
	"unsafe"

	"github.com/tilekernel/hwygemm/hwy"
)

// TileShape defines the register blocking of the micro-kernels for one
// element type at one dispatch level.
//
//   - BlockM: rows of C updated per full tile (one accumulator row each)
//   - BlockP: depth consumed per full tile
//   - BlockN: columns of C per vectorized chunk, two vectors wide
//
// BlockP depends only on the element width, so the order in which products
// are summed into C is the same at every level.
type TileShape struct {
	BlockM int
	BlockP int
	BlockN int
}

func (s TileShape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.BlockM, s.BlockP, s.BlockN)
}

const (
	blockPFloat32 = 8
	blockPFloat64 = 4
)

// TileFallback returns the scalar tile shape. There are no vectors, so
// BlockN is 1 and every column goes through the full-tile path.
func TileFallback[T hwy.Floats]() TileShape {
	return TileShape{BlockM: 4, BlockP: blockP[T](), BlockN: 1}
}

// TileSSE2 returns the tile shape for 128-bit vectors (SSE2, NEON).
// 4 rows × 2 vectors = 8 accumulators.
func TileSSE2[T hwy.Floats]() TileShape {
	return TileShape{BlockM: 4, BlockP: blockP[T](), BlockN: 2 * hwy.LanesAt[T](hwy.DispatchSSE2)}
}

// TileAVX returns the tile shape for 256-bit vectors, with or without FMA.
// 6 rows × 2 vectors = 12 of the 16 YMM registers hold accumulators.
func TileAVX[T hwy.Floats]() TileShape {
	return TileShape{BlockM: 6, BlockP: blockP[T](), BlockN: 2 * hwy.LanesAt[T](hwy.DispatchAVX)}
}

// TileFor returns the tile shape used for T at the given level.
func TileFor[T hwy.Floats](level hwy.DispatchLevel) TileShape {
	switch level {
	case hwy.DispatchSSE2:
		return TileSSE2[T]()
	case hwy.DispatchAVX, hwy.DispatchFMA:
		return TileAVX[T]()
	default:
		return TileFallback[T]()
	}
}

func blockP[T hwy.Floats]() int {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return blockPFloat32
	}
	return blockPFloat64
}
