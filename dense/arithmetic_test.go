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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/densekit/go-dense/floats"
)

func requireAlmostEqualVec(t *testing.T, want []float64, got *DenseVector) {
	t.Helper()
	require.Equal(t, len(want), got.Len())
	for i, w := range want {
		x, err := got.At(i)
		require.NoError(t, err)
		require.True(t, floats.AlmostEqual(w, x), "element %d: got %v, want %v", i, x, w)
	}
}

func TestScalarOps(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	v.AddScalar(10)
	require.Equal(t, []float64{11, 12, 13}, v.RawSlice())
	v.SubScalar(10)
	require.Equal(t, []float64{1, 2, 3}, v.RawSlice())

	require.NoError(t, v.Scale(2))
	require.Equal(t, []float64{2, 4, 6}, v.RawSlice())
	require.NoError(t, v.DivScalar(2))
	require.Equal(t, []float64{1, 2, 3}, v.RawSlice())
}

func TestScalarIdentitiesAreNoOps(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	before := v.RawSlice()

	v.AddScalar(0)
	v.SubScalar(0)
	require.NoError(t, v.Scale(1))

	// Same backing storage, same values: observably untouched.
	require.Same(t, &before[0], &v.RawSlice()[0])
	require.Equal(t, []float64{1, 2, 3}, v.RawSlice())
}

func TestScalarOutOfPlace(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	dst := mustVector(t, 0, 0, 0)

	require.NoError(t, v.AddScalarTo(5, dst))
	require.Equal(t, []float64{6, 7, 8}, dst.RawSlice())
	require.Equal(t, []float64{1, 2, 3}, v.RawSlice(), "source must be untouched")

	require.NoError(t, v.ScaleTo(3, dst))
	require.Equal(t, []float64{3, 6, 9}, dst.RawSlice())

	short := mustVector(t, 0)
	require.ErrorIs(t, v.AddScalarTo(1, short), ErrSizeMismatch)
	require.ErrorIs(t, v.ScaleTo(1, nil), ErrNilOperand)
}

func TestVectorAddSub(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	w := mustVector(t, 10, 20, 30)

	require.NoError(t, v.AddVec(w))
	require.Equal(t, []float64{11, 22, 33}, v.RawSlice())
	require.NoError(t, v.SubVec(w))
	require.Equal(t, []float64{1, 2, 3}, v.RawSlice())

	require.ErrorIs(t, v.AddVec(nil), ErrNilOperand)
	require.ErrorIs(t, v.AddVec(mustVector(t, 1)), ErrSizeMismatch)

	// Generic operand falls back to the elementwise path.
	stub := newSparseStub(3, map[int]float64{0: 100})
	require.NoError(t, v.AddVec(stub))
	require.Equal(t, []float64{101, 2, 3}, v.RawSlice())
}

func TestAddSubRoundTrip(t *testing.T) {
	v := mustVector(t, 1.5, -2.25, 3.75, 1e10)
	w := mustVector(t, 0.1, 0.2, -0.3, 17)

	sum, err := Add(v, w)
	require.NoError(t, err)
	back, err := Sub(sum, w)
	require.NoError(t, err)
	requireAlmostEqualVec(t, v.RawSlice(), back.(*DenseVector))
}

func TestScaleRoundTrip(t *testing.T) {
	v := mustVector(t, 1, -2, 3.5)
	scaled, err := Scaled(7.3, v)
	require.NoError(t, err)
	back, err := Div(scaled, 7.3)
	require.NoError(t, err)
	requireAlmostEqualVec(t, v.RawSlice(), back.(*DenseVector))
}

func TestAddVecToAliasing(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	w := mustVector(t, 10, 20, 30)

	// dst aliases the receiver.
	require.NoError(t, v.AddVecTo(w, v))
	require.Equal(t, []float64{11, 22, 33}, v.RawSlice())

	// dst aliases the other operand, through a wrap view.
	view, err := WrapVector(w.RawSlice())
	require.NoError(t, err)
	require.NoError(t, v.SubVecTo(w, view))
	require.Equal(t, []float64{1, 2, 3}, w.RawSlice())

	// Non-aliased target for completeness.
	dst := mustVector(t, 0, 0, 0)
	require.NoError(t, v.AddVecTo(w, dst))
	require.Equal(t, []float64{12, 24, 36}, dst.RawSlice())
}

func TestPointwiseMul(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	w := mustVector(t, 4, 5, 6)

	require.NoError(t, v.PointwiseMul(w))
	require.Equal(t, []float64{4, 10, 18}, v.RawSlice())

	stub := newSparseStub(3, map[int]float64{0: 2, 1: 2, 2: 2})
	require.NoError(t, v.PointwiseMul(stub))
	require.Equal(t, []float64{8, 20, 36}, v.RawSlice())

	require.ErrorIs(t, v.PointwiseMul(mustVector(t, 1, 2)), ErrSizeMismatch)
	require.ErrorIs(t, v.PointwiseMul(nil), ErrNilOperand)
}

func TestPointwiseMulTo(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	w := mustVector(t, 4, 5, 6)

	dst := mustVector(t, 0, 0, 0)
	require.NoError(t, v.PointwiseMulTo(w, dst))
	require.Equal(t, []float64{4, 10, 18}, dst.RawSlice())
	require.Equal(t, []float64{1, 2, 3}, v.RawSlice())

	// dst aliases the receiver.
	require.NoError(t, v.PointwiseMulTo(w, v))
	require.Equal(t, []float64{4, 10, 18}, v.RawSlice())
}

func TestNegate(t *testing.T) {
	v := mustVector(t, 1, -2, 0)
	n := v.Negate()
	require.Equal(t, []float64{-1, 2, 0}, n.RawSlice())
	require.Equal(t, []float64{1, -2, 0}, v.RawSlice())

	ng, err := Neg(newSparseStub(2, map[int]float64{0: 4}))
	require.NoError(t, err)
	x, _ := ng.At(0)
	require.Equal(t, -4.0, x)
}

func TestDot(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	w := mustVector(t, 4, 5, 6)

	got, err := v.Dot(w)
	require.NoError(t, err)
	require.Equal(t, 32.0, got)

	// Commutativity is exact for dense pairs: both sides run the same
	// provider kernel over the same index order.
	rev, err := w.Dot(v)
	require.NoError(t, err)
	require.Equal(t, got, rev)

	_, err = v.Dot(mustVector(t, 1, 2))
	require.ErrorIs(t, err, ErrSizeMismatch)
	_, err = Dot(nil, v)
	require.ErrorIs(t, err, ErrNilOperand)

	stub := newSparseStub(3, map[int]float64{2: 10})
	sparseDot, err := v.Dot(stub)
	require.NoError(t, err)
	require.Equal(t, 30.0, sparseDot)
}

func TestNilCheckedBeforeSizeChecked(t *testing.T) {
	v := mustVector(t, 1, 2, 3)

	// A nil operand must surface as ErrNilOperand even where a size
	// mismatch would also apply.
	_, err := Add(v, nil)
	require.ErrorIs(t, err, ErrNilOperand)
	require.NotErrorIs(t, err, ErrSizeMismatch)

	var typedNil *DenseVector
	_, err = Add(v, typedNil)
	require.ErrorIs(t, err, ErrNilOperand)
}
