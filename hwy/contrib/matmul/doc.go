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

// Package matmul provides a tiled C += A × B for float32 and float64
// row-major matrices, using the widest vector level the CPU supports.
//
// The work is done by four micro-kernels per element type and level:
//   - Full: a BlockM × BlockP slice of A times the matching rows of B
//   - RowRemainder: the same for the last rows < BlockM rows of C
//   - DepthRemainder: the last depth < BlockP rank-1 updates
//   - Corner: both remainders at once
//
// MatMulAddKernels splits the problem over them. The level is picked once,
// at package initialization, from hwy.CurrentLevel:
//
//	// C += A * B where A is MxP, B is PxN, C is MxN, all packed row-major
//	matmul.MultiplyAccumulateFloat32(M, P, N, a, P, b, N, c, N)
//
// Below the FMA level all kernels round every product before adding it and
// sum in the same order, so their results are identical bit for bit. The
// FMA kernels round once per multiply-add and agree with the others only to
// within a few ulps.
//
// MatMulAdd wraps the kernels with shape, bounds and aliasing checks:
//
//	a, _ := matmul.NewMatrix(aData, M, P, 0)
//	b, _ := matmul.NewMatrix(bData, P, N, 0)
//	c := matmul.NewDense[float32](M, N)
//	if err := matmul.MatMulAdd(a, b, c); err != nil {
//	    ...
//	}
package matmul
