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

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

func detectCPUFeatures() cpuState {
	// The 256-bit kernels run on archsimd registers, so the AVX tier follows
	// archsimd's own view of the CPU. FMA is not exposed there; x/sys/cpu is.
	switch {
	case archsimd.X86.AVX2() && cpu.X86.HasFMA:
		return cpuState{level: DispatchFMA, name: "avx2+fma"}
	case archsimd.X86.AVX2():
		return cpuState{level: DispatchAVX, name: "avx2"}
	case archsimd.X86.AVX():
		// AVX without AVX2 - 256-bit float ops exist but broadcasts do not.
		return cpuState{level: DispatchSSE2, name: "sse2"}
	default:
		// SSE2 is baseline for amd64
		return cpuState{level: DispatchSSE2, name: "sse2"}
	}
}
