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

// Package linalg defines the pluggable linear-algebra provider contract and
// two implementations of it: a naive Reference backend and a blocked,
// pool-parallel Native backend.
//
// A Provider operates on flat float64 buffers, not on container types.
// Buffers carry no dimensions of their own, so matrix operations take
// explicit row and column counts. All matrices are row-major throughout the
// module. Providers are stateless with respect to their arguments and safe
// for concurrent use.
//
// Container packages (dense vectors and matrices) delegate their arithmetic
// here, which is what lets a backend be swapped without touching container
// code.
package linalg

import "fmt"

// Provider is the capability set a dense container delegates arithmetic to.
//
// Every operation validates its arguments and reports failures as wrapped
// sentinel errors from this package, nil checks strictly before size checks.
// In-place operations leave their buffers untouched on error.
type Provider interface {
	// Scale multiplies every element of x by alpha in place.
	// alpha == 1 is a documented no-op fast path.
	Scale(alpha float64, x []float64) error

	// AddScaled computes y[i] += alpha * x[i] as one fused operation.
	// alpha == 0 is a no-op. x and y must have equal length.
	AddScaled(y []float64, alpha float64, x []float64) error

	// Dot returns the inner product of a and b, which must have equal
	// length.
	Dot(a, b []float64) (float64, error)

	// Add computes dst[i] = a[i] + b[i]. dst may alias a or b.
	Add(dst, a, b []float64) error

	// Sub computes dst[i] = a[i] - b[i]. dst may alias a or b.
	Sub(dst, a, b []float64) error

	// MulElem computes dst[i] = a[i] * b[i]. dst may alias a or b.
	MulElem(dst, a, b []float64) error

	// MatMul computes dst = a * b where a is rowsA x colsA and b is
	// rowsB x colsB, requiring colsA == rowsB. dst is overwritten with the
	// rowsA x colsB product and must not alias a or b.
	MatMul(a []float64, rowsA, colsA int, b []float64, rowsB, colsB int, dst []float64) error

	// Gemm computes dst = alpha*op(A)*op(B) + beta*dst, where op is the
	// identity or the transpose according to transA and transB. rowsA and
	// colsA describe A as stored, before op is applied; likewise for B.
	// beta != 0 accumulates into the existing contents of dst rather than
	// overwriting them. dst must not alias a or b.
	Gemm(transA, transB bool, alpha float64, a []float64, rowsA, colsA int, b []float64, rowsB, colsB int, beta float64, dst []float64) error

	// Cholesky factors a symmetric positive definite matrix of the given
	// order in place into its lower-triangular Cholesky factor, zeroing
	// the strict upper triangle. Only the lower triangle of the input is
	// read. Returns ErrNotPositiveDefinite for unsuitable input.
	Cholesky(a []float64, order int) error

	// LU factors a square matrix of the given order in place into
	// P*A = L*U using Doolittle's method with partial pivoting. On return
	// the strict lower triangle holds L (unit diagonal implied) and the
	// upper triangle holds U. pivots must have length order; pivots[k]
	// records the row swapped into position k at step k.
	LU(a []float64, order int, pivots []int) error

	// LUSolve solves A*X = B for X given the in-place LU factorization
	// produced by LU. b holds columns right-hand sides as an
	// order x columns row-major matrix and is overwritten with the
	// solution.
	LUSolve(columns int, a []float64, order int, pivots []int, b []float64) error

	// QR computes the full QR factorization of an rows x cols matrix with
	// rows >= cols, using Householder reflections. q receives the
	// rows x rows orthogonal factor and r the rows x cols upper-triangular
	// factor. a is left unmodified.
	QR(a []float64, rows, cols int, q, r []float64) error

	// SVD computes the thin singular value decomposition
	// A = U * diag(S) * Vt of an rows x cols matrix with rows >= cols.
	// s receives the cols singular values in descending order, u the
	// rows x cols left vectors and vt the cols x cols transposed right
	// vectors. a is left unmodified.
	SVD(a []float64, rows, cols int, s, u, vt []float64) error
}

// checkVec validates a single required buffer.
func checkVec(x []float64) error {
	if x == nil {
		return ErrNilBuffer
	}
	return nil
}

// checkPair validates two required buffers of equal length.
func checkPair(a, b []float64) error {
	if a == nil || b == nil {
		return ErrNilBuffer
	}
	if len(a) != len(b) {
		return fmt.Errorf("lengths %d and %d: %w", len(a), len(b), ErrSizeMismatch)
	}
	return nil
}

// checkTriple validates a destination and two operands of equal length.
func checkTriple(dst, a, b []float64) error {
	if dst == nil || a == nil || b == nil {
		return ErrNilBuffer
	}
	if len(a) != len(b) || len(dst) != len(a) {
		return fmt.Errorf("lengths %d, %d and %d: %w", len(dst), len(a), len(b), ErrSizeMismatch)
	}
	return nil
}

// checkMatMul validates the buffers and dimensions of a plain matrix
// product dst = a * b.
func checkMatMul(a []float64, rowsA, colsA int, b []float64, rowsB, colsB int, dst []float64) error {
	if a == nil || b == nil || dst == nil {
		return ErrNilBuffer
	}
	if rowsA < 1 || colsA < 1 || rowsB < 1 || colsB < 1 {
		return fmt.Errorf("dimensions %dx%d and %dx%d: %w", rowsA, colsA, rowsB, colsB, ErrBadDimension)
	}
	if colsA != rowsB {
		return fmt.Errorf("inner dimensions %d and %d: %w", colsA, rowsB, ErrSizeMismatch)
	}
	if len(a) < rowsA*colsA || len(b) < rowsB*colsB || len(dst) < rowsA*colsB {
		return fmt.Errorf("buffer shorter than its dimensions: %w", ErrSizeMismatch)
	}
	return nil
}

// checkSquare validates an in-place factorization target of the given order.
func checkSquare(a []float64, order int) error {
	if a == nil {
		return ErrNilBuffer
	}
	if order < 1 {
		return fmt.Errorf("order %d: %w", order, ErrBadDimension)
	}
	if len(a) < order*order {
		return fmt.Errorf("buffer length %d for order %d: %w", len(a), order, ErrSizeMismatch)
	}
	return nil
}

// gemmDims resolves the effective dimensions of a Gemm call and validates
// the operand buffers. m, n are the dst dimensions and k the contraction
// length, all after op() is applied.
func gemmDims(transA, transB bool, a []float64, rowsA, colsA int, b []float64, rowsB, colsB int, dst []float64) (m, n, k int, err error) {
	if a == nil || b == nil || dst == nil {
		return 0, 0, 0, ErrNilBuffer
	}
	if rowsA < 1 || colsA < 1 || rowsB < 1 || colsB < 1 {
		return 0, 0, 0, fmt.Errorf("dimensions %dx%d and %dx%d: %w", rowsA, colsA, rowsB, colsB, ErrBadDimension)
	}

	m, k = rowsA, colsA
	if transA {
		m, k = colsA, rowsA
	}
	kB, n := rowsB, colsB
	if transB {
		kB, n = colsB, rowsB
	}
	if k != kB {
		return 0, 0, 0, fmt.Errorf("inner dimensions %d and %d: %w", k, kB, ErrSizeMismatch)
	}
	if len(a) < rowsA*colsA || len(b) < rowsB*colsB || len(dst) < m*n {
		return 0, 0, 0, fmt.Errorf("buffer shorter than its dimensions: %w", ErrSizeMismatch)
	}
	return m, n, k, nil
}
