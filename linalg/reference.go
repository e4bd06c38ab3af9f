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

package linalg

import (
	"fmt"
	"math"
)

// Reference is the naive Provider. Every kernel is a direct loop over the
// mathematical definition with no blocking, unrolling or parallelism. It is
// the semantic baseline the Native backend is tested against, and the
// fallback on platforms where Native is not worthwhile.
type Reference struct{}

var _ Provider = Reference{}

// Scale multiplies every element of x by alpha in place.
func (Reference) Scale(alpha float64, x []float64) error {
	if err := checkVec(x); err != nil {
		return err
	}
	if alpha == 1 {
		return nil
	}
	for i := range x {
		x[i] *= alpha
	}
	return nil
}

// AddScaled computes y[i] += alpha * x[i].
func (Reference) AddScaled(y []float64, alpha float64, x []float64) error {
	if err := checkPair(y, x); err != nil {
		return err
	}
	if alpha == 0 {
		return nil
	}
	for i := range y {
		y[i] += alpha * x[i]
	}
	return nil
}

// Dot returns the inner product of a and b.
func (Reference) Dot(a, b []float64) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Add computes dst[i] = a[i] + b[i].
func (Reference) Add(dst, a, b []float64) error {
	if err := checkTriple(dst, a, b); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
	return nil
}

// Sub computes dst[i] = a[i] - b[i].
func (Reference) Sub(dst, a, b []float64) error {
	if err := checkTriple(dst, a, b); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
	return nil
}

// MulElem computes dst[i] = a[i] * b[i].
func (Reference) MulElem(dst, a, b []float64) error {
	if err := checkTriple(dst, a, b); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
	return nil
}

// MatMul computes dst = a * b with the standard triple loop, ikj-ordered so
// the inner loop walks both b and dst contiguously.
func (Reference) MatMul(a []float64, rowsA, colsA int, b []float64, rowsB, colsB int, dst []float64) error {
	if err := checkMatMul(a, rowsA, colsA, b, rowsB, colsB, dst); err != nil {
		return err
	}
	naiveMatMul(a, b, dst, rowsA, colsB, colsA)
	return nil
}

// naiveMatMul computes c = a*b for a m x k, b k x n, c m x n, overwriting c.
func naiveMatMul(a, b, c []float64, m, n, k int) {
	for i := range c[:m*n] {
		c[i] = 0
	}
	for i := range m {
		for p := range k {
			aip := a[i*k+p]
			for j := range n {
				c[i*n+j] += aip * b[p*n+j]
			}
		}
	}
}

// Gemm computes dst = alpha*op(A)*op(B) + beta*dst.
func (Reference) Gemm(transA, transB bool, alpha float64, a []float64, rowsA, colsA int, b []float64, rowsB, colsB int, beta float64, dst []float64) error {
	m, n, k, err := gemmDims(transA, transB, a, rowsA, colsA, b, rowsB, colsB, dst)
	if err != nil {
		return err
	}

	// beta == 0 overwrites; any other beta scales the existing contents
	// before accumulation.
	switch beta {
	case 0:
		for i := range dst[:m*n] {
			dst[i] = 0
		}
	case 1:
	default:
		for i := range dst[:m*n] {
			dst[i] *= beta
		}
	}
	if alpha == 0 {
		return nil
	}

	// Under a transpose the loop bounds exceed the stored row count, so the
	// untransposed index must never be formed.
	for i := range m {
		for j := range n {
			var sum float64
			for p := range k {
				var av float64
				if transA {
					av = a[p*colsA+i]
				} else {
					av = a[i*colsA+p]
				}
				var bv float64
				if transB {
					bv = b[j*colsB+p]
				} else {
					bv = b[p*colsB+j]
				}
				sum += av * bv
			}
			dst[i*n+j] += alpha * sum
		}
	}
	return nil
}

// Cholesky factors a symmetric positive definite matrix in place into its
// lower-triangular Cholesky factor.
func (Reference) Cholesky(a []float64, order int) error {
	if err := checkSquare(a, order); err != nil {
		return err
	}

	for j := range order {
		d := a[j*order+j]
		for p := range j {
			d -= a[j*order+p] * a[j*order+p]
		}
		if d <= 0 {
			return fmt.Errorf("pivot %d: %w", j, ErrNotPositiveDefinite)
		}
		ljj := math.Sqrt(d)
		a[j*order+j] = ljj

		for i := j + 1; i < order; i++ {
			s := a[i*order+j]
			for p := range j {
				s -= a[i*order+p] * a[j*order+p]
			}
			a[i*order+j] = s / ljj
		}
	}

	// The factor is lower triangular; clear whatever the caller had above
	// the diagonal.
	for i := range order {
		for j := i + 1; j < order; j++ {
			a[i*order+j] = 0
		}
	}
	return nil
}

// LU factors a square matrix in place with partial pivoting.
func (Reference) LU(a []float64, order int, pivots []int) error {
	if err := checkSquare(a, order); err != nil {
		return err
	}
	if pivots == nil {
		return ErrNilBuffer
	}
	if len(pivots) < order {
		return fmt.Errorf("pivot length %d for order %d: %w", len(pivots), order, ErrSizeMismatch)
	}

	for k := range order {
		// Partial pivoting: bring the largest remaining entry of column
		// k onto the diagonal.
		p := k
		maxAbs := math.Abs(a[k*order+k])
		for i := k + 1; i < order; i++ {
			if v := math.Abs(a[i*order+k]); v > maxAbs {
				maxAbs = v
				p = i
			}
		}
		pivots[k] = p
		if maxAbs == 0 {
			return fmt.Errorf("column %d: %w", k, ErrSingular)
		}
		if p != k {
			swapRows(a, order, k, p)
		}

		pivot := a[k*order+k]
		for i := k + 1; i < order; i++ {
			lik := a[i*order+k] / pivot
			a[i*order+k] = lik
			for j := k + 1; j < order; j++ {
				a[i*order+j] -= lik * a[k*order+j]
			}
		}
	}
	return nil
}

func swapRows(a []float64, cols, r1, r2 int) {
	row1 := a[r1*cols : r1*cols+cols]
	row2 := a[r2*cols : r2*cols+cols]
	for i := range row1 {
		row1[i], row2[i] = row2[i], row1[i]
	}
}

// LUSolve solves A*X = B given the factorization from LU. b is an
// order x columns row-major matrix of right-hand sides, overwritten with X.
func (Reference) LUSolve(columns int, a []float64, order int, pivots []int, b []float64) error {
	if err := checkSquare(a, order); err != nil {
		return err
	}
	if pivots == nil || b == nil {
		return ErrNilBuffer
	}
	if columns < 1 {
		return fmt.Errorf("columns %d: %w", columns, ErrBadDimension)
	}
	if len(pivots) < order || len(b) < order*columns {
		return fmt.Errorf("right-hand side %d for order %d: %w", len(b), order, ErrSizeMismatch)
	}

	// Replay the row exchanges recorded during factorization.
	for k := range order {
		if p := pivots[k]; p != k {
			swapRows(b, columns, k, p)
		}
	}

	// Forward substitution with the unit lower triangle.
	for i := 1; i < order; i++ {
		for j := range i {
			lij := a[i*order+j]
			if lij == 0 {
				continue
			}
			for c := range columns {
				b[i*columns+c] -= lij * b[j*columns+c]
			}
		}
	}

	// Back substitution with the upper triangle.
	for i := order - 1; i >= 0; i-- {
		uii := a[i*order+i]
		if uii == 0 {
			return fmt.Errorf("diagonal %d: %w", i, ErrSingular)
		}
		for j := i + 1; j < order; j++ {
			uij := a[i*order+j]
			if uij == 0 {
				continue
			}
			for c := range columns {
				b[i*columns+c] -= uij * b[j*columns+c]
			}
		}
		for c := range columns {
			b[i*columns+c] /= uii
		}
	}
	return nil
}

// QR computes the full Householder QR factorization of a, leaving a intact.
func (Reference) QR(a []float64, rows, cols int, q, r []float64) error {
	if a == nil || q == nil || r == nil {
		return ErrNilBuffer
	}
	if rows < 1 || cols < 1 || rows < cols {
		return fmt.Errorf("%dx%d (rows must be >= cols): %w", rows, cols, ErrBadDimension)
	}
	if len(a) < rows*cols || len(r) < rows*cols || len(q) < rows*rows {
		return fmt.Errorf("buffer shorter than its dimensions: %w", ErrSizeMismatch)
	}

	copy(r[:rows*cols], a[:rows*cols])
	for i := range q[:rows*rows] {
		q[i] = 0
	}
	for i := range rows {
		q[i*rows+i] = 1
	}

	v := make([]float64, rows)
	for k := range cols {
		// Householder vector for column k below the diagonal.
		var norm float64
		for i := k; i < rows; i++ {
			norm = math.Hypot(norm, r[i*cols+k])
		}
		if norm == 0 {
			continue
		}

		alpha := -math.Copysign(norm, r[k*cols+k])
		var vNormSq float64
		for i := k; i < rows; i++ {
			v[i] = r[i*cols+k]
			if i == k {
				v[i] -= alpha
			}
			vNormSq += v[i] * v[i]
		}
		if vNormSq == 0 {
			continue
		}

		// R <- H R on the trailing columns.
		for j := k; j < cols; j++ {
			var dot float64
			for i := k; i < rows; i++ {
				dot += v[i] * r[i*cols+j]
			}
			f := 2 * dot / vNormSq
			for i := k; i < rows; i++ {
				r[i*cols+j] -= f * v[i]
			}
		}

		// Q <- Q H, accumulating the product of reflections.
		for i := range rows {
			var dot float64
			for l := k; l < rows; l++ {
				dot += q[i*rows+l] * v[l]
			}
			f := 2 * dot / vNormSq
			for l := k; l < rows; l++ {
				q[i*rows+l] -= f * v[l]
			}
		}
	}

	// Flush reflection residue below the diagonal of R.
	for i := 1; i < rows; i++ {
		for j := range min(i, cols) {
			r[i*cols+j] = 0
		}
	}
	return nil
}

// Jacobi sweep budget for SVD. One-sided Jacobi converges quadratically once
// columns are near-orthogonal; well-conditioned inputs finish in a handful
// of sweeps.
const svdMaxSweeps = 60

// SVD computes the thin singular value decomposition by one-sided Jacobi
// rotations, leaving a intact.
func (Reference) SVD(a []float64, rows, cols int, s, u, vt []float64) error {
	if a == nil || s == nil || u == nil || vt == nil {
		return ErrNilBuffer
	}
	if rows < 1 || cols < 1 || rows < cols {
		return fmt.Errorf("%dx%d (rows must be >= cols): %w", rows, cols, ErrBadDimension)
	}
	if len(a) < rows*cols || len(u) < rows*cols || len(s) < cols || len(vt) < cols*cols {
		return fmt.Errorf("buffer shorter than its dimensions: %w", ErrSizeMismatch)
	}

	copy(u[:rows*cols], a[:rows*cols])

	// v accumulates the right rotations; transposed into vt at the end.
	v := make([]float64, cols*cols)
	for i := range cols {
		v[i*cols+i] = 1
	}

	const tol = 1e-15
	converged := false
	for range svdMaxSweeps {
		rotated := false
		for p := range cols - 1 {
			for q := p + 1; q < cols; q++ {
				var app, aqq, apq float64
				for i := range rows {
					up := u[i*cols+p]
					uq := u[i*cols+q]
					app += up * up
					aqq += uq * uq
					apq += up * uq
				}
				if math.Abs(apq) <= tol*math.Sqrt(app*aqq) || apq == 0 {
					continue
				}
				rotated = true

				zeta := (aqq - app) / (2 * apq)
				t := math.Copysign(1, zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				c := 1 / math.Sqrt(1+t*t)
				sn := c * t

				for i := range rows {
					up := u[i*cols+p]
					uq := u[i*cols+q]
					u[i*cols+p] = c*up - sn*uq
					u[i*cols+q] = sn*up + c*uq
				}
				for i := range cols {
					vp := v[i*cols+p]
					vq := v[i*cols+q]
					v[i*cols+p] = c*vp - sn*vq
					v[i*cols+q] = sn*vp + c*vq
				}
			}
		}
		if !rotated {
			converged = true
			break
		}
	}
	if !converged {
		return fmt.Errorf("after %d sweeps: %w", svdMaxSweeps, ErrNoConvergence)
	}

	// Column norms are the singular values; normalize U's columns.
	for j := range cols {
		var norm float64
		for i := range rows {
			norm = math.Hypot(norm, u[i*cols+j])
		}
		s[j] = norm
		if norm > 0 {
			inv := 1 / norm
			for i := range rows {
				u[i*cols+j] *= inv
			}
		}
	}

	// Order singular values descending, permuting U and V columns along.
	for j := range cols {
		maxJ := j
		for l := j + 1; l < cols; l++ {
			if s[l] > s[maxJ] {
				maxJ = l
			}
		}
		if maxJ != j {
			s[j], s[maxJ] = s[maxJ], s[j]
			for i := range rows {
				u[i*cols+j], u[i*cols+maxJ] = u[i*cols+maxJ], u[i*cols+j]
			}
			for i := range cols {
				v[i*cols+j], v[i*cols+maxJ] = v[i*cols+maxJ], v[i*cols+j]
			}
		}
	}

	for i := range cols {
		for j := range cols {
			vt[i*cols+j] = v[j*cols+i]
		}
	}
	return nil
}
