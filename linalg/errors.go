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

import "errors"

// Sentinel errors returned by Provider implementations. Callers match them
// with errors.Is; implementations may wrap them with additional context.
//
// Validation order is part of the contract: nil buffers are reported before
// any dimension problem.
var (
	// ErrNilBuffer is returned when a required buffer argument is nil.
	ErrNilBuffer = errors.New("linalg: nil buffer")

	// ErrSizeMismatch is returned when buffer lengths disagree with the
	// lengths implied by the supplied dimensions, or with each other.
	ErrSizeMismatch = errors.New("linalg: size mismatch")

	// ErrBadDimension is returned for non-positive or otherwise impossible
	// dimension arguments (order < 1, rows < cols for QR, p-norm p < 1).
	ErrBadDimension = errors.New("linalg: bad dimension")

	// ErrNotPositiveDefinite is returned by Cholesky when the input matrix
	// is not symmetric positive definite.
	ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")

	// ErrSingular is returned by LU when a zero pivot column is found, and
	// by LUSolve when the factored matrix cannot be back-substituted.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNoConvergence is returned by SVD when the Jacobi sweeps fail to
	// converge within the iteration budget.
	ErrNoConvergence = errors.New("linalg: iteration did not converge")
)
