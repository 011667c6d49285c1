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

import "math"

// Float32x4 is a 128-bit vector of four float32 lanes.
//
// It is portable pure Go. Mul rounds each lane to float32 before returning,
// so a following Add never fuses with it; MulAdd is the only fused operation.
type Float32x4 struct {
	lanes [4]float32
}

// BroadcastFloat32x4 returns a vector with every lane set to v.
func BroadcastFloat32x4(v float32) Float32x4 {
	return Float32x4{lanes: [4]float32{v, v, v, v}}
}

// LoadFloat32x4Slice loads the first 4 elements of s. It panics if len(s) < 4.
func LoadFloat32x4Slice(s []float32) Float32x4 {
	return Float32x4{lanes: [4]float32(s[:4])}
}

// StoreSlice stores the 4 lanes into s. It panics if len(s) < 4.
func (v Float32x4) StoreSlice(s []float32) {
	*(*[4]float32)(s[:4]) = v.lanes
}

// Add returns the lane-wise sum v + w.
func (v Float32x4) Add(w Float32x4) Float32x4 {
	for i := range v.lanes {
		v.lanes[i] += w.lanes[i]
	}
	return v
}

// Mul returns the lane-wise product v * w, each lane rounded to float32.
func (v Float32x4) Mul(w Float32x4) Float32x4 {
	for i := range v.lanes {
		v.lanes[i] = float32(v.lanes[i] * w.lanes[i])
	}
	return v
}

// MulAdd returns v*w + acc with a single rounding per lane.
func (v Float32x4) MulAdd(w, acc Float32x4) Float32x4 {
	for i := range v.lanes {
		v.lanes[i] = fma32(v.lanes[i], w.lanes[i], acc.lanes[i])
	}
	return v
}

// Float64x2 is a 128-bit vector of two float64 lanes.
type Float64x2 struct {
	lanes [2]float64
}

// BroadcastFloat64x2 returns a vector with every lane set to v.
func BroadcastFloat64x2(v float64) Float64x2 {
	return Float64x2{lanes: [2]float64{v, v}}
}

// LoadFloat64x2Slice loads the first 2 elements of s. It panics if len(s) < 2.
func LoadFloat64x2Slice(s []float64) Float64x2 {
	return Float64x2{lanes: [2]float64(s[:2])}
}

// StoreSlice stores the 2 lanes into s. It panics if len(s) < 2.
func (v Float64x2) StoreSlice(s []float64) {
	*(*[2]float64)(s[:2]) = v.lanes
}

// Add returns the lane-wise sum v + w.
func (v Float64x2) Add(w Float64x2) Float64x2 {
	v.lanes[0] += w.lanes[0]
	v.lanes[1] += w.lanes[1]
	return v
}

// Mul returns the lane-wise product v * w, each lane rounded to float64.
func (v Float64x2) Mul(w Float64x2) Float64x2 {
	v.lanes[0] = float64(v.lanes[0] * w.lanes[0])
	v.lanes[1] = float64(v.lanes[1] * w.lanes[1])
	return v
}

// MulAdd returns v*w + acc with a single rounding per lane.
func (v Float64x2) MulAdd(w, acc Float64x2) Float64x2 {
	v.lanes[0] = math.FMA(v.lanes[0], w.lanes[0], acc.lanes[0])
	v.lanes[1] = math.FMA(v.lanes[1], w.lanes[1], acc.lanes[1])
	return v
}

// fma32 computes a*b+c for float32 with a single rounding.
//
// The product of two float32 values is exact in float64. The sum is rounded
// to odd in float64 before narrowing, which keeps the final rounding to
// float32 correct: a plain float64 sum could land on a float32 halfway point
// and round twice.
func fma32(a, b, c float32) float32 {
	prod := float64(a) * float64(b)
	z := float64(c)
	sum := prod + z
	if math.IsInf(sum, 0) || math.IsNaN(sum) {
		return float32(sum)
	}
	// TwoSum: err is the exact rounding error of prod+z.
	bv := sum - prod
	err := (prod - (sum - bv)) + (z - bv)
	if err != 0 && math.Float64bits(sum)&1 == 0 {
		sum = math.Nextafter(sum, math.Copysign(math.Inf(1), err))
	}
	return float32(sum)
}
