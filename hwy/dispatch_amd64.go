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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd the vector types are pure Go, so detection only
// decides which tile shapes and rounding policy the kernels use.

func detectCPUFeatures() cpuState {
	switch {
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		return cpuState{level: DispatchFMA, name: "avx2+fma"}
	case cpu.X86.HasAVX2:
		return cpuState{level: DispatchAVX, name: "avx2"}
	case cpu.X86.HasSSE2:
		// AVX without AVX2 is treated as SSE2 for safety.
		return cpuState{level: DispatchSSE2, name: "sse2"}
	default:
		return cpuState{level: DispatchScalar, name: "scalar"}
	}
}
