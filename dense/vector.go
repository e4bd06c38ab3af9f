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

// Package dense provides fixed-size numeric vectors and matrices backed by
// contiguous float64 storage. Arithmetic is delegated to the process-wide
// linalg.Provider whenever both operands are dense; any other Vector
// implementation is handled by a generic per-element fallback.
package dense

// Vector is the minimal capability every vector implementation offers.
// Length is fixed at construction and always at least 1.
//
// DenseVector is the implementation in this package; the interface exists so
// dense operations can accept foreign vector types, falling back to indexed
// element access when the operand's storage is not visible to them.
type Vector interface {
	// Len returns the number of elements. Immutable after construction.
	Len() int

	// At returns the element at index i, or ErrIndexOutOfRange.
	At(i int) (float64, error)

	// SetAt stores v at index i, or returns ErrIndexOutOfRange.
	SetAt(i int, v float64) error

	// Clone returns an independent copy of the same concrete kind.
	Clone() Vector

	// CopyTo copies this vector's elements into dst, which must have the
	// same length. Copying a vector onto itself is a no-op.
	CopyTo(dst Vector) error

	// NewOfLen returns a fresh zero vector of this vector's concrete kind
	// with the given length. This is what lets generic algorithms produce
	// results of the same kind as their inputs.
	NewOfLen(n int) (Vector, error)
}
