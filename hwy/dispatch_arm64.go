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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func detectCPUFeatures() cpuState {
	// ARM64 (AArch64) always has NEON (ASIMD) available: it's part of the
	// ARMv8-A base architecture. NEON is 128-bit, so it maps to the first
	// vector tier. SVE widths are not tiered yet.
	if cpu.ARM64.HasASIMD {
		return cpuState{level: DispatchSSE2, name: "neon"}
	}
	// Fallback to scalar (should never happen on ARMv8+)
	return cpuState{level: DispatchScalar, name: "scalar"}
}

// targetName names the arm64 target that runs level.
func targetName(level DispatchLevel) string {
	if level == DispatchSSE2 {
		return "neon"
	}
	return level.String()
}
