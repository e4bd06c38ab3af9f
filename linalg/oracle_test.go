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

// Cross-checks against gonum, used purely as an independent oracle: if both
// backends here and gonum agree, an error would have to be present in all
// three implementations at once.

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatMulAgainstGonum(t *testing.T) {
	const m, k, n = 23, 17, 29
	a := make([]float64, m*k)
	b := make([]float64, k*n)
	fill(a, 11)
	fill(b, 12)

	var want mat.Dense
	want.Mul(mat.NewDense(m, k, append([]float64(nil), a...)), mat.NewDense(k, n, append([]float64(nil), b...)))

	for _, p := range providersUnderTest() {
		dst := make([]float64, m*n)
		require.NoError(t, p.MatMul(a, m, k, b, k, n, dst))
		for i := range m {
			for j := range n {
				require.InDelta(t, want.At(i, j), dst[i*n+j], 1e-10,
					"dst[%d,%d]", i, j)
			}
		}
	}
}

func TestCholeskyAgainstGonum(t *testing.T) {
	// Build an SPD matrix as Mᵀ*M + order*I.
	const order = 8
	raw := make([]float64, order*order)
	fill(raw, 13)
	base := mat.NewDense(order, order, raw)

	var spd mat.Dense
	spd.Mul(base.T(), base)
	for i := range order {
		spd.Set(i, i, spd.At(i, i)+order)
	}

	sym := mat.NewSymDense(order, nil)
	for i := range order {
		for j := i; j < order; j++ {
			sym.SetSym(i, j, spd.At(i, j))
		}
	}
	var chol mat.Cholesky
	require.True(t, chol.Factorize(sym), "oracle factorization failed")
	var lWant mat.TriDense
	chol.LTo(&lWant)

	buf := make([]float64, order*order)
	for i := range order {
		for j := range order {
			buf[i*order+j] = spd.At(i, j)
		}
	}
	require.NoError(t, Reference{}.Cholesky(buf, order))

	for i := range order {
		for j := 0; j <= i; j++ {
			require.InDelta(t, lWant.At(i, j), buf[i*order+j], 1e-10, "L[%d,%d]", i, j)
		}
	}
}

func TestLUSolveAgainstGonum(t *testing.T) {
	const order = 9
	raw := make([]float64, order*order)
	fill(raw, 14)
	// Diagonal dominance keeps the system comfortably non-singular.
	for i := range order {
		raw[i*order+i] += 100
	}
	rhs := make([]float64, order)
	fill(rhs, 15)

	var lu mat.LU
	lu.Factorize(mat.NewDense(order, order, append([]float64(nil), raw...)))
	var want mat.Dense
	require.NoError(t, lu.SolveTo(&want, false, mat.NewDense(order, 1, append([]float64(nil), rhs...))))

	a := append([]float64(nil), raw...)
	b := append([]float64(nil), rhs...)
	pivots := make([]int, order)
	require.NoError(t, Reference{}.LU(a, order, pivots))
	require.NoError(t, Reference{}.LUSolve(1, a, order, pivots, b))

	for i := range order {
		require.InDelta(t, want.At(i, 0), b[i], 1e-9, "x[%d]", i)
	}
}
