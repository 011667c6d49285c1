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

import "unsafe"

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit).
	Width() int

	// Name returns a human-readable name for this tag.
	Name() string
}

// FixedTag128 forces 128-bit SIMD operations (SSE2, NEON).
type FixedTag128[T Floats] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	var dummy T
	return 16 / int(unsafe.Sizeof(dummy))
}

// FixedTag256 forces 256-bit SIMD operations (AVX).
type FixedTag256[T Floats] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	var dummy T
	return 32 / int(unsafe.Sizeof(dummy))
}

// TagFor returns the fixed tag matching the register width of a level.
// The scalar level has no tag; nil is returned.
func TagFor[T Floats](level DispatchLevel) Tag {
	switch level {
	case DispatchSSE2:
		return FixedTag128[T]{}
	case DispatchAVX, DispatchFMA:
		return FixedTag256[T]{}
	default:
		return nil
	}
}

// LanesAt returns the number of T lanes per vector at the given level.
// The scalar level always has one lane.
//
// For example, at DispatchAVX (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func LanesAt[T Floats](level DispatchLevel) int {
	tag := TagFor[T](level)
	if tag == nil {
		return 1
	}
	var dummy T
	return tag.Width() / int(unsafe.Sizeof(dummy))
}

// MaxLanes returns the maximum number of lanes for type T at the current level.
func MaxLanes[T Floats]() int {
	return LanesAt[T](CurrentLevel())
}
