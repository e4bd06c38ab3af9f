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
	"math"

	"github.com/densekit/go-dense/floats"
	"github.com/densekit/go-dense/workerpool"
)

// Norm returns the Euclidean 2-norm, accumulated as a running hypotenuse so
// large-magnitude elements neither overflow nor underflow the intermediate
// sum of squares.
//
// The accumulation is strictly sequential: reordering hypotenuse steps
// changes the rounding, so unlike the other norms this one is not fanned out
// over the pool.
func (v *DenseVector) Norm() float64 {
	var norm float64
	for _, x := range v.data {
		norm = floats.Hypot(norm, x)
	}
	return norm
}

// reduceAbs folds |x| over the vector with the given per-element accumulate
// and cross-partition combine, in parallel for large vectors. combine must
// be commutative and associative; partial results meet under the reduction
// lock inside workerpool.Reduce.
func (v *DenseVector) reduceAbs(acc func(partial, abs float64) float64, combine func(a, b float64) float64) float64 {
	fold := func(partial float64, start, end int) float64 {
		for i := start; i < end; i++ {
			partial = acc(partial, math.Abs(v.data[i]))
		}
		return partial
	}

	if len(v.data) < minParallelLen {
		return fold(0, 0, len(v.data))
	}
	return workerpool.Reduce(workerpool.Default(), len(v.data), 0, fold, combine)
}

// Norm1 returns the sum of absolute values.
func (v *DenseVector) Norm1() float64 {
	return v.reduceAbs(
		func(partial, abs float64) float64 { return partial + abs },
		func(a, b float64) float64 { return a + b },
	)
}

// NormInf returns the maximum absolute value.
func (v *DenseVector) NormInf() float64 {
	return v.reduceAbs(
		func(partial, abs float64) float64 { return math.Max(partial, abs) },
		func(a, b float64) float64 { return math.Max(a, b) },
	)
}

// NormP returns the generalized p-norm (Σ|xᵢ|^p)^(1/p) for p >= 1.
// p == 1 and p == 2 delegate to Norm1 and Norm respectively; p < 1 is
// rejected with ErrInvalidArgument, and p may be +Inf for the max norm.
func (v *DenseVector) NormP(p float64) (float64, error) {
	if math.IsNaN(p) || p < 1 {
		return 0, fmt.Errorf("p = %v: %w", p, ErrInvalidArgument)
	}

	switch {
	case p == 1:
		return v.Norm1(), nil
	case p == 2:
		return v.Norm(), nil
	case math.IsInf(p, 1):
		return v.NormInf(), nil
	}

	sum := v.reduceAbs(
		func(partial, abs float64) float64 { return partial + math.Pow(abs, p) },
		func(a, b float64) float64 { return a + b },
	)
	return math.Pow(sum, 1/p), nil
}
