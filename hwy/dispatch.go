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
	"os"
	"strconv"
	"strings"
	"sync"

	"k8s.io/klog/v2"
)

// DispatchLevel represents the vector instruction tier used by the kernels.
//
// Levels are ordered: a CPU that supports a level supports every lower level.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates the first vector generation (128-bit).
	// SSE2 on amd64, NEON (ASIMD) on arm64.
	DispatchSSE2

	// DispatchAVX indicates the wider vector generation (256-bit).
	DispatchAVX

	// DispatchFMA indicates 256-bit vectors with fused multiply-add.
	// Kernels at this level round once per multiply-add instead of twice.
	DispatchFMA
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX:
		return "avx"
	case DispatchFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// Width returns the vector register width in bytes for the level.
// The scalar level reports 16 for consistency with the 128-bit tier.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX, DispatchFMA:
		return 32
	default:
		return 16
	}
}

// ParseDispatchLevel parses the name returned by DispatchLevel.String.
func ParseDispatchLevel(name string) (DispatchLevel, bool) {
	for _, level := range AllLevels() {
		if strings.EqualFold(name, level.String()) {
			return level, true
		}
	}
	return DispatchScalar, false
}

// AllLevels returns every dispatch level, lowest first.
func AllLevels() []DispatchLevel {
	return []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchAVX, DispatchFMA}
}

// cpuState is the immutable result of the one-time capability probe.
type cpuState struct {
	level DispatchLevel
	name  string
}

// detected probes the CPU on first use. Concurrent first callers block until
// the single probe finishes and all observe the same result.
var detected = sync.OnceValue(func() cpuState {
	if NoSimdEnv() {
		return cpuState{level: DispatchScalar, name: "scalar"}
	}
	state := detectCPUFeatures()
	state = applyLevelCaps(state)
	klog.V(1).Infof("hwy: dispatch level %s (%s)", state.level, state.name)
	return state
})

// applyLevelCaps lowers the detected level according to HWY_NO_FMA and HWY_MAX_LEVEL.
func applyLevelCaps(state cpuState) cpuState {
	maxLevel := DispatchFMA
	if envBool("HWY_NO_FMA") {
		maxLevel = DispatchAVX
	}
	if val := os.Getenv("HWY_MAX_LEVEL"); val != "" {
		if level, ok := ParseDispatchLevel(val); ok {
			maxLevel = min(maxLevel, level)
		} else {
			klog.Warningf("hwy: ignoring unknown HWY_MAX_LEVEL=%q", val)
		}
	}
	if state.level > maxLevel {
		state.level = maxLevel
		state.name = targetName(maxLevel)
	}
	return state
}

// CurrentLevel returns the vector tier selected for this process.
// The probe runs once; every later call returns the cached level.
func CurrentLevel() DispatchLevel {
	return detected().level
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX.
func CurrentWidth() int {
	return detected().level.Width()
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2+fma", "neon", "scalar".
func CurrentName() string {
	return detected().name
}

// Supports reports whether kernels for the given level can run on this CPU.
func Supports(level DispatchLevel) bool {
	return level >= DispatchScalar && level <= CurrentLevel()
}

// SupportedLevels returns the levels runnable on this CPU, lowest first.
func SupportedLevels() []DispatchLevel {
	levels := make([]DispatchLevel, 0, 4)
	for _, level := range AllLevels() {
		if Supports(level) {
			levels = append(levels, level)
		}
	}
	return levels
}

// HasSSE2 reports whether the 128-bit vector tier is available.
func HasSSE2() bool { return Supports(DispatchSSE2) }

// HasAVX reports whether the 256-bit vector tier is available.
func HasAVX() bool { return Supports(DispatchAVX) }

// HasFMA reports whether the 256-bit fused multiply-add tier is available.
func HasFMA() bool { return Supports(DispatchFMA) }

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Highway will use scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envBool("HWY_NO_SIMD")
}

func envBool(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
