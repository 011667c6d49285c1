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

// Package hwy provides the CPU capability gate and portable fixed-width
// vector types used by the matmul kernels.
//
// The capability gate probes the CPU once, on first use, and reports one of
// four dispatch levels: scalar, sse2 (128-bit), avx (256-bit) and fma
// (256-bit with fused multiply-add). Kernels are specialized per level and
// bound by the caller once; nothing here is consulted inside hot loops.
//
// Basic usage:
//
//	import "github.com/tilekernel/hwygemm/hwy"
//
//	if hwy.HasFMA() {
//	    // use the fused kernels
//	}
//
//	a := hwy.LoadFloat32x8Slice(data1)
//	b := hwy.BroadcastFloat32x8(2)
//	a.Mul(b).StoreSlice(output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}
