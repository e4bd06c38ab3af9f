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

// Package floats provides the scalar floating-point primitives the rest of
// the module is built on: tolerant equality, overflow-safe hypotenuse, and
// stepping to the next or previous representable float64.
package floats

import "math"

// DefaultEpsilon is the tolerance used by AlmostEqual. It is large enough to
// absorb the rounding drift of chained elementwise arithmetic while still
// distinguishing genuinely different values.
const DefaultEpsilon = 1e-10

// AlmostEqualEps reports whether a and b are equal within eps.
//
// The comparison is absolute for small magnitudes and relative for large
// ones: |a-b| <= eps, or |a-b| <= eps * max(|a|, |b|).
//
// NaN compares unequal to everything, including itself. Infinities are
// equal only to infinities of the same sign.
//
// Example:
//
//	AlmostEqualEps(1.0, 1.0+1e-12, 1e-10)  // true
//	AlmostEqualEps(1e20, 1e20+1e8, 1e-10)  // true (relative)
func AlmostEqualEps(a, b, eps float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}
	return diff <= eps*math.Max(math.Abs(a), math.Abs(b))
}

// AlmostEqual reports whether a and b are equal within DefaultEpsilon.
func AlmostEqual(a, b float64) bool {
	return AlmostEqualEps(a, b, DefaultEpsilon)
}

// Hypot returns Sqrt(a*a + b*b) without intermediate overflow or underflow.
//
// Accumulating a 2-norm as norm = Hypot(norm, x) element by element keeps the
// running value in range even when a plain sum of squares would overflow.
func Hypot(a, b float64) float64 {
	return math.Hypot(a, b)
}

// Increment returns the next representable float64 above x.
// NaN and infinities are returned unchanged.
func Increment(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Nextafter(x, math.Inf(1))
}

// Decrement returns the next representable float64 below x.
// NaN and infinities are returned unchanged.
func Decrement(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Nextafter(x, math.Inf(-1))
}

// EpsilonOf returns the positive distance from |x| to the next representable
// float64 above it, i.e. the unit in the last place at x's magnitude.
// Returns NaN for NaN and +Inf for infinities.
func EpsilonOf(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if math.IsInf(x, 0) {
		return math.Inf(1)
	}

	a := math.Abs(x)
	return math.Nextafter(a, math.Inf(1)) - a
}
