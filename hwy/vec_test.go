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

package hwy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipWithoutVec256 skips tests of the 256-bit types when they are AVX
// registers and the CPU cannot run them at level.
func skipWithoutVec256(t *testing.T, level DispatchLevel) {
	t.Helper()
	if Vec256Native && !Supports(level) {
		t.Skipf("256-bit vectors need %s, dispatch level is %s", level, CurrentLevel())
	}
}

func TestFloat32x8(t *testing.T) {
	skipWithoutVec256(t, DispatchFMA)
	a := LoadFloat32x8Slice([]float32{1, 2, 3, 4, 5, 6, 7, 8, 99})
	b := BroadcastFloat32x8(2)
	c := BroadcastFloat32x8(0.5)

	out := make([]float32, 8)
	a.Add(b).StoreSlice(out)
	assert.Equal(t, []float32{3, 4, 5, 6, 7, 8, 9, 10}, out)

	a.Mul(b).StoreSlice(out)
	assert.Equal(t, []float32{2, 4, 6, 8, 10, 12, 14, 16}, out)

	a.MulAdd(b, c).StoreSlice(out)
	assert.Equal(t, []float32{2.5, 4.5, 6.5, 8.5, 10.5, 12.5, 14.5, 16.5}, out)
}

func TestFloat64x4(t *testing.T) {
	skipWithoutVec256(t, DispatchFMA)
	a := LoadFloat64x4Slice([]float64{1, 2, 3, 4})
	out := make([]float64, 4)
	a.MulAdd(BroadcastFloat64x4(3), BroadcastFloat64x4(1)).StoreSlice(out)
	assert.Equal(t, []float64{4, 7, 10, 13}, out)
	a.Mul(a).Add(a).StoreSlice(out)
	assert.Equal(t, []float64{2, 6, 12, 20}, out)
}

func TestFloat128(t *testing.T) {
	out32 := make([]float32, 4)
	LoadFloat32x4Slice([]float32{1, 2, 3, 4}).Mul(BroadcastFloat32x4(-1)).Add(BroadcastFloat32x4(1)).StoreSlice(out32)
	assert.Equal(t, []float32{0, -1, -2, -3}, out32)
	LoadFloat32x4Slice([]float32{1, 2, 3, 4}).MulAdd(BroadcastFloat32x4(2), BroadcastFloat32x4(1)).StoreSlice(out32)
	assert.Equal(t, []float32{3, 5, 7, 9}, out32)

	out64 := make([]float64, 2)
	LoadFloat64x2Slice([]float64{1.5, -2}).MulAdd(BroadcastFloat64x2(2), BroadcastFloat64x2(1)).StoreSlice(out64)
	assert.Equal(t, []float64{4, -3}, out64)
	LoadFloat64x2Slice([]float64{1.5, -2}).Mul(BroadcastFloat64x2(2)).Add(BroadcastFloat64x2(1)).StoreSlice(out64)
	assert.Equal(t, []float64{4, -3}, out64)
}

func TestLoadShortSlicePanics(t *testing.T) {
	require.Panics(t, func() { LoadFloat32x4Slice(make([]float32, 3)) })
	require.Panics(t, func() { LoadFloat64x2Slice(make([]float64, 1)) })
}

func TestGather(t *testing.T) {
	skipWithoutVec256(t, DispatchAVX)
	// 4 rows of stride 3.
	src32 := []float32{1, 0, 0, 2, 0, 0, 3, 0, 0, 4, 0, 0, 5, 0, 0, 6, 0, 0, 7, 0, 0, 8}
	out32 := make([]float32, 8)
	GatherFloat32x8(src32, 3).StoreSlice(out32)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, out32)
	GatherFloat32x4(src32, 6).StoreSlice(out32)
	assert.Equal(t, []float32{1, 3, 5, 7}, out32[:4])

	src64 := []float64{1, 9, 2, 9, 3, 9, 4}
	out64 := make([]float64, 4)
	GatherFloat64x4(src64, 2).StoreSlice(out64)
	assert.Equal(t, []float64{1, 2, 3, 4}, out64)
	GatherFloat64x2(src64, 4).StoreSlice(out64)
	assert.Equal(t, []float64{1, 3}, out64[:2])
}

func TestReduceSumOrdered(t *testing.T) {
	skipWithoutVec256(t, DispatchAVX)
	// Lane order is observable: 1e8 absorbs each 1 individually, but
	// adding the ones first would not be absorbed.
	v := LoadFloat32x8Slice([]float32{1e8, 1, 1, 1, 1, 1, 1, 1})
	want := float32(0)
	for _, x := range []float32{1e8, 1, 1, 1, 1, 1, 1, 1} {
		want += x
	}
	assert.Equal(t, want, ReduceSumOrderedFloat32x8(v, 0))
	assert.Equal(t, float32(1e8), ReduceSumOrderedFloat32x8(v, 0))

	assert.Equal(t, float32(15), ReduceSumOrderedFloat32x4(LoadFloat32x4Slice([]float32{1, 2, 3, 4}), 5))
	assert.Equal(t, 3.5, ReduceSumOrderedFloat64x2(LoadFloat64x2Slice([]float64{1, 2}), 0.5))
	assert.Equal(t, 10.0, ReduceSumOrderedFloat64x4(LoadFloat64x4Slice([]float64{1, 2, 3, 4}), 0))
}

func TestDotFused(t *testing.T) {
	skipWithoutVec256(t, DispatchAVX)
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	assert.Equal(t, 71.0, DotFusedFloat64x4(LoadFloat64x4Slice(a), LoadFloat64x4Slice(b), 1))
	assert.Equal(t, 18.0, DotFusedFloat64x2(LoadFloat64x2Slice(a), LoadFloat64x2Slice(b), 1))

	a32 := []float32{1, 2, 3, 4, 1, 2, 3, 4}
	b32 := []float32{5, 6, 7, 8, 5, 6, 7, 8}
	assert.Equal(t, float32(140), DotFusedFloat32x8(LoadFloat32x8Slice(a32), LoadFloat32x8Slice(b32), 0))
	assert.Equal(t, float32(70), DotFusedFloat32x4(LoadFloat32x4Slice(a32), LoadFloat32x4Slice(b32), 0))
}

func TestMulAddScalar(t *testing.T) {
	// (1+2^-30)^2 - 1 differs from the unfused result only if the product is
	// kept exact.
	x := 1 + math.Ldexp(1, -30)
	fused := MulAddScalar(x, x, -1)
	assert.Equal(t, math.Ldexp(1, -29)+math.Ldexp(1, -60), fused)
	unfused := MulThenAdd(x, x, -1)
	assert.Equal(t, math.Ldexp(1, -29), unfused)

	assert.Equal(t, float32(7), MulAddScalar[float32](2, 3, 1))
	assert.Equal(t, float32(7), MulThenAdd[float32](2, 3, 1))
}

func TestMulAddScalarFloat32RoundsOnce(t *testing.T) {
	// x*y + x = 1 + 2^-23 + 2^-24 - 2^-70 is just below a float32 halfway
	// point. Narrowing a float64 result would land on the halfway point and
	// round up to 1 + 2^-22.
	x := float32(1 + math.Ldexp(1, -23))
	y := float32((1 - math.Ldexp(1, -23)) * math.Ldexp(1, -24))
	want := x
	assert.Equal(t, want, MulAddScalar(x, y, x))
	assert.Equal(t, float32(1+math.Ldexp(1, -22)), MulThenAdd(x, y, x))

	got := make([]float32, 4)
	BroadcastFloat32x4(x).MulAdd(BroadcastFloat32x4(y), BroadcastFloat32x4(x)).StoreSlice(got)
	assert.Equal(t, []float32{want, want, want, want}, got)
	assert.Equal(t, want, DotFusedFloat32x4(LoadFloat32x4Slice([]float32{x, 0, 0, 0}), LoadFloat32x4Slice([]float32{y, 0, 0, 0}), x))

	// Exact cases and specials pass through unchanged.
	assert.Equal(t, float32(7), fma32(2, 3, 1))
	assert.True(t, math.IsInf(float64(fma32(float32(math.Inf(1)), 1, 1)), 1))
	assert.True(t, math.IsNaN(float64(fma32(float32(math.Inf(1)), 0, 1))))
	assert.Equal(t, float32(0), fma32(0, 5, 0))
}

func TestDotFusedFloat32x8RoundsOnce(t *testing.T) {
	skipWithoutVec256(t, DispatchFMA)
	x := float32(1 + math.Ldexp(1, -23))
	y := float32((1 - math.Ldexp(1, -23)) * math.Ldexp(1, -24))
	a := LoadFloat32x8Slice([]float32{x, x, 0, 0, 0, 0, 0, 0})
	b := LoadFloat32x8Slice([]float32{1, y, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, x, DotFusedFloat32x8(a, b, 0))

	got := make([]float32, 8)
	BroadcastFloat32x8(x).MulAdd(BroadcastFloat32x8(y), BroadcastFloat32x8(x)).StoreSlice(got)
	for _, v := range got {
		assert.Equal(t, x, v)
	}
}
