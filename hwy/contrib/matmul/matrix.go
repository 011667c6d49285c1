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

package matmul

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/tilekernel/hwygemm/hwy"
)

var (
	// ErrEmpty is returned for matrices with no rows or no columns.
	ErrEmpty = errors.New("empty matrix")

	// ErrShapeMismatch is returned when the operand shapes do not compose,
	// or when a matrix does not fit its backing slice.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrOverlap is returned when the output shares memory with an input.
	ErrOverlap = errors.New("output overlaps input")
)

// Matrix is a row-major view over Data: element (i, j) is Data[i*Stride+j].
// Stride may be larger than Cols to describe a sub-matrix of a larger one.
type Matrix[T hwy.Floats] struct {
	Data   []T
	Rows   int
	Cols   int
	Stride int
}

// NewMatrix returns a view of data with the given shape. A stride of 0
// means the rows are packed (stride == cols).
func NewMatrix[T hwy.Floats](data []T, rows, cols, stride int) (Matrix[T], error) {
	if stride == 0 {
		stride = cols
	}
	m := Matrix[T]{Data: data, Rows: rows, Cols: cols, Stride: stride}
	if err := m.check(); err != nil {
		return Matrix[T]{}, err
	}
	return m, nil
}

// NewDense allocates a zeroed rows×cols matrix.
func NewDense[T hwy.Floats](rows, cols int) Matrix[T] {
	return Matrix[T]{Data: make([]T, rows*cols), Rows: rows, Cols: cols, Stride: cols}
}

// At returns element (i, j).
func (m Matrix[T]) At(i, j int) T {
	return m.Data[i*m.Stride+j]
}

// Set sets element (i, j).
func (m Matrix[T]) Set(i, j int, v T) {
	m.Data[i*m.Stride+j] = v
}

// Row returns row i, Cols elements long.
func (m Matrix[T]) Row(i int) []T {
	return m.Data[i*m.Stride : i*m.Stride+m.Cols]
}

// span returns the part of Data the view covers.
func (m Matrix[T]) span() []T {
	return m.Data[:(m.Rows-1)*m.Stride+m.Cols]
}

func (m Matrix[T]) check() error {
	if m.Rows <= 0 || m.Cols <= 0 {
		return errors.WithMessagef(ErrEmpty, "shape %dx%d", m.Rows, m.Cols)
	}
	if m.Stride < m.Cols {
		return errors.WithMessagef(ErrShapeMismatch, "stride %d is smaller than %d columns", m.Stride, m.Cols)
	}
	if need := (m.Rows-1)*m.Stride + m.Cols; len(m.Data) < need {
		return errors.WithMessagef(ErrShapeMismatch, "%dx%d matrix with stride %d needs %d elements, got %d",
			m.Rows, m.Cols, m.Stride, need, len(m.Data))
	}
	return nil
}

// MatMulAdd computes c += a × b with the kernels bound for this CPU,
// after checking that the shapes compose and that c does not overlap a or b.
func MatMulAdd[T hwy.Floats](a, b, c Matrix[T]) error {
	return matMulAdd(BoundKernels[T](), a, b, c)
}

// MatMulAddLevel is MatMulAdd with the kernels of an explicit level. Levels
// this CPU cannot run are lowered to the highest one it can.
func MatMulAddLevel[T hwy.Floats](level hwy.DispatchLevel, a, b, c Matrix[T]) error {
	return matMulAdd(KernelsFor[T](level), a, b, c)
}

func matMulAdd[T hwy.Floats](k *Kernels[T], a, b, c Matrix[T]) error {
	for _, op := range []struct {
		name string
		m    Matrix[T]
	}{{"a", a}, {"b", b}, {"c", c}} {
		if err := op.m.check(); err != nil {
			return errors.WithMessagef(err, "matmul: operand %s", op.name)
		}
	}
	if a.Cols != b.Rows {
		return errors.WithMessagef(ErrShapeMismatch, "matmul: a is %dx%d but b is %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	if c.Rows != a.Rows || c.Cols != b.Cols {
		return errors.WithMessagef(ErrShapeMismatch, "matmul: c is %dx%d, want %dx%d", c.Rows, c.Cols, a.Rows, b.Cols)
	}
	cSpan := c.span()
	if overlaps(cSpan, a.span()) || overlaps(cSpan, b.span()) {
		return errors.WithStack(ErrOverlap)
	}
	MatMulAddKernels(k, a.Rows, a.Cols, b.Cols, a.Data, a.Stride, b.Data, b.Stride, c.Data, c.Stride)
	return nil
}

// overlaps reports whether x and y share any element of memory.
func overlaps[T any](x, y []T) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	size := unsafe.Sizeof(x[0])
	xStart := uintptr(unsafe.Pointer(unsafe.SliceData(x)))
	yStart := uintptr(unsafe.Pointer(unsafe.SliceData(y)))
	xEnd := xStart + uintptr(len(x))*size
	yEnd := yStart + uintptr(len(y))*size
	return xStart < yEnd && yStart < xEnd
}
