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
	"unsafe"
)

// MulAddScalar returns a*b + c rounded once to T.
func MulAddScalar[T Floats](a, b, c T) T {
	if unsafe.Sizeof(a) == 4 {
		return T(fma32(float32(a), float32(b), float32(c)))
	}
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// MulThenAdd returns c + a*b with the product rounded to T before the sum.
// It never compiles to a fused instruction.
func MulThenAdd[T Floats](a, b, c T) T {
	return c + T(a*b)
}

// GatherFloat32x4 loads src[0], src[stride], src[2*stride], src[3*stride].
func GatherFloat32x4(src []float32, stride int) Float32x4 {
	return Float32x4{lanes: [4]float32{src[0], src[stride], src[2*stride], src[3*stride]}}
}

// GatherFloat64x2 loads src[0] and src[stride].
func GatherFloat64x2(src []float64, stride int) Float64x2 {
	return Float64x2{lanes: [2]float64{src[0], src[stride]}}
}

// GatherFloat32x8 loads 8 elements of src spaced stride apart.
func GatherFloat32x8(src []float32, stride int) Float32x8 {
	var buf [8]float32
	for i := range buf {
		buf[i] = src[i*stride]
	}
	return LoadFloat32x8Slice(buf[:])
}

// GatherFloat64x4 loads 4 elements of src spaced stride apart.
func GatherFloat64x4(src []float64, stride int) Float64x4 {
	var buf [4]float64
	for i := range buf {
		buf[i] = src[i*stride]
	}
	return LoadFloat64x4Slice(buf[:])
}

// ReduceSumOrderedFloat32x4 adds the lanes of v to acc, lowest lane first.
func ReduceSumOrderedFloat32x4(v Float32x4, acc float32) float32 {
	for _, x := range v.lanes {
		acc += x
	}
	return acc
}

// ReduceSumOrderedFloat64x2 adds the lanes of v to acc, lowest lane first.
func ReduceSumOrderedFloat64x2(v Float64x2, acc float64) float64 {
	return acc + v.lanes[0] + v.lanes[1]
}

// ReduceSumOrderedFloat32x8 adds the lanes of v to acc, lowest lane first.
//
// Unlike a tree reduction, the result matches a sequential scalar loop
// bit for bit.
func ReduceSumOrderedFloat32x8(v Float32x8, acc float32) float32 {
	var buf [8]float32
	v.StoreSlice(buf[:])
	for _, x := range buf {
		acc += x
	}
	return acc
}

// ReduceSumOrderedFloat64x4 adds the lanes of v to acc, lowest lane first.
func ReduceSumOrderedFloat64x4(v Float64x4, acc float64) float64 {
	var buf [4]float64
	v.StoreSlice(buf[:])
	for _, x := range buf {
		acc += x
	}
	return acc
}

// DotFusedFloat32x4 folds a[i]*b[i] into acc with one fused multiply-add
// per lane, lowest lane first.
func DotFusedFloat32x4(a, b Float32x4, acc float32) float32 {
	for i := range a.lanes {
		acc = fma32(a.lanes[i], b.lanes[i], acc)
	}
	return acc
}

// DotFusedFloat64x2 folds a[i]*b[i] into acc, lowest lane first.
func DotFusedFloat64x2(a, b Float64x2, acc float64) float64 {
	acc = math.FMA(a.lanes[0], b.lanes[0], acc)
	return math.FMA(a.lanes[1], b.lanes[1], acc)
}

// DotFusedFloat32x8 folds a[i]*b[i] into acc, lowest lane first.
func DotFusedFloat32x8(a, b Float32x8, acc float32) float32 {
	var av, bv [8]float32
	a.StoreSlice(av[:])
	b.StoreSlice(bv[:])
	for i := range av {
		acc = fma32(av[i], bv[i], acc)
	}
	return acc
}

// DotFusedFloat64x4 folds a[i]*b[i] into acc, lowest lane first.
func DotFusedFloat64x4(a, b Float64x4, acc float64) float64 {
	var av, bv [4]float64
	a.StoreSlice(av[:])
	b.StoreSlice(bv[:])
	for i := range av {
		acc = math.FMA(av[i], bv[i], acc)
	}
	return acc
}
