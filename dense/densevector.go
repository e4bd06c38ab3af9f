// Copyright 2026 go-dense Authors
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

package dense

import (
	"fmt"

	"github.com/densekit/go-dense/workerpool"
)

// minParallelLen is the element count below which per-element loops stay on
// the calling goroutine instead of fanning out over the worker pool.
const minParallelLen = 4096

// DenseVector is a fixed-size mutable vector over contiguous float64
// storage. The backing slice length always equals Len().
//
// A DenseVector either owns its storage (every constructor except
// WrapVector) or aliases a caller-supplied buffer (WrapVector), in which
// case mutations are visible through both handles.
//
// DenseVector is not safe for concurrent mutation; one writer at a time is
// the caller's contract.
type DenseVector struct {
	data []float64
}

var _ Vector = (*DenseVector)(nil)

// NewVector returns a zero-filled vector of length n.
// n < 1 returns ErrInvalidArgument.
func NewVector(n int) (*DenseVector, error) {
	if n < 1 {
		return nil, fmt.Errorf("length %d: %w", n, ErrInvalidArgument)
	}
	return &DenseVector{data: make([]float64, n)}, nil
}

// NewVectorFilled returns a vector of length n with every element set to
// fill.
func NewVectorFilled(n int, fill float64) (*DenseVector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = fill
	}
	return v, nil
}

// FromSlice returns a vector holding an independent copy of values.
func FromSlice(values []float64) (*DenseVector, error) {
	if values == nil {
		return nil, ErrNilOperand
	}
	if len(values) < 1 {
		return nil, fmt.Errorf("length %d: %w", len(values), ErrInvalidArgument)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &DenseVector{data: data}, nil
}

// WrapVector returns a vector that aliases buf without copying. The view
// does not own the buffer: writes through either handle are visible through
// the other, and buf must outlive the returned vector.
func WrapVector(buf []float64) (*DenseVector, error) {
	if buf == nil {
		return nil, ErrNilOperand
	}
	if len(buf) < 1 {
		return nil, fmt.Errorf("length %d: %w", len(buf), ErrInvalidArgument)
	}
	return &DenseVector{data: buf}, nil
}

// NewVectorFrom returns an independent copy of src. A dense source is bulk
// copied; any other Vector kind is read element by element.
func NewVectorFrom(src Vector) (*DenseVector, error) {
	if src == nil {
		return nil, ErrNilOperand
	}

	if d, ok := src.(*DenseVector); ok {
		return FromSlice(d.data)
	}

	v, err := NewVector(src.Len())
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		x, err := src.At(i)
		if err != nil {
			return nil, err
		}
		v.data[i] = x
	}
	return v, nil
}

// Len returns the number of elements.
func (v *DenseVector) Len() int {
	return len(v.data)
}

// At returns the element at index i.
func (v *DenseVector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrIndexOutOfRange)
	}
	return v.data[i], nil
}

// SetAt stores x at index i.
func (v *DenseVector) SetAt(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrIndexOutOfRange)
	}
	v.data[i] = x
	return nil
}

// RawSlice exposes the backing storage without copying. The slice aliases
// the vector: callers mutating it mutate the vector. Provided for
// interoperation with the provider layer and bulk I/O.
func (v *DenseVector) RawSlice() []float64 {
	return v.data
}

// Clone returns an independent dense copy.
func (v *DenseVector) Clone() Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return &DenseVector{data: data}
}

// NewOfLen returns a fresh zero DenseVector of length n.
func (v *DenseVector) NewOfLen(n int) (Vector, error) {
	return NewVector(n)
}

// CopyTo copies v's elements into dst. Copying onto the same instance, or
// onto a view of the same storage, is an identity no-op. A dense target is
// bulk copied; other kinds are written element by element.
func (v *DenseVector) CopyTo(dst Vector) error {
	if isNilVector(dst) {
		return ErrNilOperand
	}
	if dst.Len() != len(v.data) {
		return fmt.Errorf("lengths %d and %d: %w", len(v.data), dst.Len(), ErrSizeMismatch)
	}

	if d, ok := dst.(*DenseVector); ok {
		if d == v || sharesStorage(d.data, v.data) {
			return nil
		}
		copy(d.data, v.data)
		return nil
	}

	for i, x := range v.data {
		if err := dst.SetAt(i, x); err != nil {
			return err
		}
	}
	return nil
}

// sharesStorage reports whether two slices are views of the same backing
// array. Vectors always cover their whole buffer, so comparing the first
// element address is sufficient.
func sharesStorage(a, b []float64) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// forEachRange fans fn out over [0, n) for large n, otherwise runs inline.
// fn receives a half-open index range and must touch only that range.
func forEachRange(n int, fn func(start, end int)) {
	if n < minParallelLen {
		fn(0, n)
		return
	}
	workerpool.Default().ParallelFor(n, fn)
}

// String renders the vector for debugging: up to eight elements with an
// ellipsis beyond that.
func (v *DenseVector) String() string {
	const maxShown = 8
	shown := v.data
	suffix := ""
	if len(shown) > maxShown {
		shown = shown[:maxShown]
		suffix = ", ..."
	}
	s := "["
	for i, x := range shown {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%g", x)
	}
	return s + suffix + "]"
}
