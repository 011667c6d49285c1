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

//go:build !amd64 || !goexperiment.simd

package hwy

import "math"

// Vec256Native reports whether Float32x8 and Float64x4 are hardware
// registers, which need DispatchAVX to run (DispatchFMA for MulAdd).
const Vec256Native = false

// Float32x8 is a 256-bit vector of eight float32 lanes.
//
// This is the portable implementation. On amd64 built with
// GOEXPERIMENT=simd it is an alias for archsimd.Float32x8 instead.
type Float32x8 struct {
	lanes [8]float32
}

// BroadcastFloat32x8 returns a vector with every lane set to v.
func BroadcastFloat32x8(v float32) Float32x8 {
	return Float32x8{lanes: [8]float32{v, v, v, v, v, v, v, v}}
}

// LoadFloat32x8Slice loads the first 8 elements of s. It panics if len(s) < 8.
func LoadFloat32x8Slice(s []float32) Float32x8 {
	return Float32x8{lanes: [8]float32(s[:8])}
}

// StoreSlice stores the 8 lanes into s. It panics if len(s) < 8.
func (v Float32x8) StoreSlice(s []float32) {
	*(*[8]float32)(s[:8]) = v.lanes
}

// Add returns the lane-wise sum v + w.
func (v Float32x8) Add(w Float32x8) Float32x8 {
	for i := range v.lanes {
		v.lanes[i] += w.lanes[i]
	}
	return v
}

// Mul returns the lane-wise product v * w, each lane rounded to float32.
func (v Float32x8) Mul(w Float32x8) Float32x8 {
	for i := range v.lanes {
		v.lanes[i] = float32(v.lanes[i] * w.lanes[i])
	}
	return v
}

// MulAdd returns v*w + acc with a single rounding per lane.
func (v Float32x8) MulAdd(w, acc Float32x8) Float32x8 {
	for i := range v.lanes {
		v.lanes[i] = fma32(v.lanes[i], w.lanes[i], acc.lanes[i])
	}
	return v
}

// Float64x4 is a 256-bit vector of four float64 lanes.
type Float64x4 struct {
	lanes [4]float64
}

// BroadcastFloat64x4 returns a vector with every lane set to v.
func BroadcastFloat64x4(v float64) Float64x4 {
	return Float64x4{lanes: [4]float64{v, v, v, v}}
}

// LoadFloat64x4Slice loads the first 4 elements of s. It panics if len(s) < 4.
func LoadFloat64x4Slice(s []float64) Float64x4 {
	return Float64x4{lanes: [4]float64(s[:4])}
}

// StoreSlice stores the 4 lanes into s. It panics if len(s) < 4.
func (v Float64x4) StoreSlice(s []float64) {
	*(*[4]float64)(s[:4]) = v.lanes
}

// Add returns the lane-wise sum v + w.
func (v Float64x4) Add(w Float64x4) Float64x4 {
	for i := range v.lanes {
		v.lanes[i] += w.lanes[i]
	}
	return v
}

// Mul returns the lane-wise product v * w, each lane rounded to float64.
func (v Float64x4) Mul(w Float64x4) Float64x4 {
	for i := range v.lanes {
		v.lanes[i] = float64(v.lanes[i] * w.lanes[i])
	}
	return v
}

// MulAdd returns v*w + acc with a single rounding per lane.
func (v Float64x4) MulAdd(w, acc Float64x4) Float64x4 {
	for i := range v.lanes {
		v.lanes[i] = math.FMA(v.lanes[i], w.lanes[i], acc.lanes[i])
	}
	return v
}
