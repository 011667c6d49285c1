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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// Vec256Native reports whether Float32x8 and Float64x4 are hardware
// registers, which need DispatchAVX to run (DispatchFMA for MulAdd).
const Vec256Native = true

// Float32x8 is a 256-bit vector of eight float32 lanes held in an AVX register.
type Float32x8 = archsimd.Float32x8

// Float64x4 is a 256-bit vector of four float64 lanes held in an AVX register.
type Float64x4 = archsimd.Float64x4

// BroadcastFloat32x8 returns a vector with every lane set to v.
func BroadcastFloat32x8(v float32) Float32x8 {
	return archsimd.BroadcastFloat32x8(v)
}

// LoadFloat32x8Slice loads the first 8 elements of s.
func LoadFloat32x8Slice(s []float32) Float32x8 {
	return archsimd.LoadFloat32x8Slice(s)
}

// BroadcastFloat64x4 returns a vector with every lane set to v.
func BroadcastFloat64x4(v float64) Float64x4 {
	return archsimd.BroadcastFloat64x4(v)
}

// LoadFloat64x4Slice loads the first 4 elements of s.
func LoadFloat64x4Slice(s []float64) Float64x4 {
	return archsimd.LoadFloat64x4Slice(s)
}
