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
	"github.com/densekit/go-dense/workerpool"
)

const (
	// minParallelLen is the vector length below which elementwise kernels
	// stay on the calling goroutine.
	minParallelLen = 16384

	// minParallelFlops is the m*n*k product below which MatMul stays
	// single-threaded.
	minParallelFlops = 64 * 64 * 64

	// rowsPerStrip is how many output rows each MatMul partition covers.
	// Large enough to keep the blocked kernel cache-efficient per strip.
	rowsPerStrip = 64
)

// Native is the optimized Provider: 4-way unrolled elementwise kernels,
// multi-accumulator dot products, a register-blocked cache-tiled matrix
// multiply, and row-strip fan-out over a worker pool for large operands.
//
// Factorizations are delegated to Reference; they are recursive sequential
// algorithms that gain nothing from the elementwise machinery here.
type Native struct {
	pool  *workerpool.Pool
	block int
	ref   Reference
}

var _ Provider = (*Native)(nil)

// NewNative returns a Native provider running its parallel sections on pool.
// A nil pool disables fan-out; every kernel then runs on the caller.
func NewNative(pool *workerpool.Pool) *Native {
	block := kernelBlock
	if block <= 0 {
		block = 32
	}
	return &Native{pool: pool, block: block}
}

// parallelFor fans fn out over the pool, or runs it inline for small n.
func (nv *Native) parallelFor(n int, fn func(start, end int)) {
	if nv.pool == nil || n < minParallelLen {
		fn(0, n)
		return
	}
	nv.pool.ParallelFor(n, fn)
}

// Scale multiplies every element of x by alpha in place.
func (nv *Native) Scale(alpha float64, x []float64) error {
	if err := checkVec(x); err != nil {
		return err
	}
	if alpha == 1 {
		return nil
	}

	nv.parallelFor(len(x), func(start, end int) {
		i := start
		for ; i+4 <= end; i += 4 {
			x[i] *= alpha
			x[i+1] *= alpha
			x[i+2] *= alpha
			x[i+3] *= alpha
		}
		for ; i < end; i++ {
			x[i] *= alpha
		}
	})
	return nil
}

// AddScaled computes y[i] += alpha * x[i].
func (nv *Native) AddScaled(y []float64, alpha float64, x []float64) error {
	if err := checkPair(y, x); err != nil {
		return err
	}
	if alpha == 0 {
		return nil
	}

	nv.parallelFor(len(y), func(start, end int) {
		i := start
		for ; i+4 <= end; i += 4 {
			y[i] += alpha * x[i]
			y[i+1] += alpha * x[i+1]
			y[i+2] += alpha * x[i+2]
			y[i+3] += alpha * x[i+3]
		}
		for ; i < end; i++ {
			y[i] += alpha * x[i]
		}
	})
	return nil
}

// Dot returns the inner product of a and b using four independent
// accumulators to break the dependency chain.
func (nv *Native) Dot(a, b []float64) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Add computes dst[i] = a[i] + b[i].
func (nv *Native) Add(dst, a, b []float64) error {
	if err := checkTriple(dst, a, b); err != nil {
		return err
	}
	nv.parallelFor(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] + b[i]
		}
	})
	return nil
}

// Sub computes dst[i] = a[i] - b[i].
func (nv *Native) Sub(dst, a, b []float64) error {
	if err := checkTriple(dst, a, b); err != nil {
		return err
	}
	nv.parallelFor(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] - b[i]
		}
	})
	return nil
}

// MulElem computes dst[i] = a[i] * b[i].
func (nv *Native) MulElem(dst, a, b []float64) error {
	if err := checkTriple(dst, a, b); err != nil {
		return err
	}
	nv.parallelFor(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] * b[i]
		}
	})
	return nil
}

// MatMul computes dst = a * b using the blocked kernel, fanned out over
// horizontal strips of the output for large products.
func (nv *Native) MatMul(a []float64, rowsA, colsA int, b []float64, rowsB, colsB int, dst []float64) error {
	if err := checkMatMul(a, rowsA, colsA, b, rowsB, colsB, dst); err != nil {
		return err
	}
	nv.matMul(a, b, dst, rowsA, colsB, colsA)
	return nil
}

func (nv *Native) matMul(a, b, c []float64, m, n, k int) {
	if nv.pool == nil || m*n*k < minParallelFlops {
		blockedMatMul(a, b, c, m, n, k, nv.block)
		return
	}

	strips := (m + rowsPerStrip - 1) / rowsPerStrip
	nv.pool.ParallelFor(strips, func(start, end int) {
		for s := start; s < end; s++ {
			r0 := s * rowsPerStrip
			r1 := min(r0+rowsPerStrip, m)
			blockedMatMul(a[r0*k:r1*k], b, c[r0*n:r1*n], r1-r0, n, k, nv.block)
		}
	})
}

// Gemm computes dst = alpha*op(A)*op(B) + beta*dst.
func (nv *Native) Gemm(transA, transB bool, alpha float64, a []float64, rowsA, colsA int, b []float64, rowsB, colsB int, beta float64, dst []float64) error {
	m, n, k, err := gemmDims(transA, transB, a, rowsA, colsA, b, rowsB, colsB, dst)
	if err != nil {
		return err
	}

	if alpha == 0 {
		// Pure scale of the existing result.
		if beta == 0 {
			for i := range dst[:m*n] {
				dst[i] = 0
			}
			return nil
		}
		if beta != 1 {
			return nv.Scale(beta, dst[:m*n])
		}
		return nil
	}

	// The blocked kernel wants untransposed row-major operands; pack
	// transposed inputs once rather than strided-reading them per tile.
	aEff := a
	if transA {
		aEff = packTransposed(a, rowsA, colsA)
	}
	bEff := b
	if transB {
		bEff = packTransposed(b, rowsB, colsB)
	}

	if beta == 0 {
		nv.matMul(aEff, bEff, dst, m, n, k)
		if alpha != 1 {
			return nv.Scale(alpha, dst[:m*n])
		}
		return nil
	}

	scratch := make([]float64, m*n)
	nv.matMul(aEff, bEff, scratch, m, n, k)
	nv.parallelFor(m*n, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = alpha*scratch[i] + beta*dst[i]
		}
	})
	return nil
}

// packTransposed returns the transpose of an rows x cols row-major matrix.
func packTransposed(a []float64, rows, cols int) []float64 {
	t := make([]float64, rows*cols)
	for i := range rows {
		for j := range cols {
			t[j*rows+i] = a[i*cols+j]
		}
	}
	return t
}

// Cholesky delegates to the Reference implementation.
func (nv *Native) Cholesky(a []float64, order int) error {
	return nv.ref.Cholesky(a, order)
}

// LU delegates to the Reference implementation.
func (nv *Native) LU(a []float64, order int, pivots []int) error {
	return nv.ref.LU(a, order, pivots)
}

// LUSolve delegates to the Reference implementation.
func (nv *Native) LUSolve(columns int, a []float64, order int, pivots []int, b []float64) error {
	return nv.ref.LUSolve(columns, a, order, pivots, b)
}

// QR delegates to the Reference implementation.
func (nv *Native) QR(a []float64, rows, cols int, q, r []float64) error {
	return nv.ref.QR(a, rows, cols, q, r)
}

// SVD delegates to the Reference implementation.
func (nv *Native) SVD(a []float64, rows, cols int, s, u, vt []float64) error {
	return nv.ref.SVD(a, rows, cols, s, u, vt)
}

// blockedMatMul computes c = a*b for a m x k, b k x n, c m x n, overwriting
// c. The output is tiled into block x block panels for cache locality, and
// each panel is processed in 4x4 micro-tiles whose 16 accumulators live in
// registers across the entire K dimension.
func blockedMatMul(a, b, c []float64, m, n, k int, block int) {
	for i0 := 0; i0 < m; i0 += block {
		iEnd := min(i0+block, m)

		for j0 := 0; j0 < n; j0 += block {
			jEnd := min(j0+block, n)

			var i int
			for i = i0; i+4 <= iEnd; i += 4 {
				var j int
				for j = j0; j+4 <= jEnd; j += 4 {
					var acc00, acc01, acc02, acc03 float64
					var acc10, acc11, acc12, acc13 float64
					var acc20, acc21, acc22, acc23 float64
					var acc30, acc31, acc32, acc33 float64

					for p := 0; p < k; p++ {
						a0 := a[i*k+p]
						a1 := a[(i+1)*k+p]
						a2 := a[(i+2)*k+p]
						a3 := a[(i+3)*k+p]

						bRow := p * n
						b0 := b[bRow+j]
						b1 := b[bRow+j+1]
						b2 := b[bRow+j+2]
						b3 := b[bRow+j+3]

						acc00 += a0 * b0
						acc01 += a0 * b1
						acc02 += a0 * b2
						acc03 += a0 * b3
						acc10 += a1 * b0
						acc11 += a1 * b1
						acc12 += a1 * b2
						acc13 += a1 * b3
						acc20 += a2 * b0
						acc21 += a2 * b1
						acc22 += a2 * b2
						acc23 += a2 * b3
						acc30 += a3 * b0
						acc31 += a3 * b1
						acc32 += a3 * b2
						acc33 += a3 * b3
					}

					cRow0 := i * n
					cRow1 := (i + 1) * n
					cRow2 := (i + 2) * n
					cRow3 := (i + 3) * n

					c[cRow0+j] = acc00
					c[cRow0+j+1] = acc01
					c[cRow0+j+2] = acc02
					c[cRow0+j+3] = acc03
					c[cRow1+j] = acc10
					c[cRow1+j+1] = acc11
					c[cRow1+j+2] = acc12
					c[cRow1+j+3] = acc13
					c[cRow2+j] = acc20
					c[cRow2+j+1] = acc21
					c[cRow2+j+2] = acc22
					c[cRow2+j+3] = acc23
					c[cRow3+j] = acc30
					c[cRow3+j+1] = acc31
					c[cRow3+j+2] = acc32
					c[cRow3+j+3] = acc33
				}

				// Remaining columns of the 4-row band.
				for ; j < jEnd; j++ {
					var s0, s1, s2, s3 float64
					for p := 0; p < k; p++ {
						bv := b[p*n+j]
						s0 += a[i*k+p] * bv
						s1 += a[(i+1)*k+p] * bv
						s2 += a[(i+2)*k+p] * bv
						s3 += a[(i+3)*k+p] * bv
					}
					c[i*n+j] = s0
					c[(i+1)*n+j] = s1
					c[(i+2)*n+j] = s2
					c[(i+3)*n+j] = s3
				}
			}

			// Remaining rows of the panel.
			for ; i < iEnd; i++ {
				for j := j0; j < jEnd; j++ {
					var sum float64
					for p := 0; p < k; p++ {
						sum += a[i*k+p] * b[p*n+j]
					}
					c[i*n+j] = sum
				}
			}
		}
	}
}
