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

package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBucket(t *testing.T, lower, upper float64) *Bucket {
	t.Helper()
	b, err := NewBucket(lower, upper)
	require.NoError(t, err)
	return b
}

func TestNewBucketValidation(t *testing.T) {
	b, err := NewBucketWithCount(2, 5, 3)
	require.NoError(t, err)
	require.Equal(t, 2.0, b.LowerBound())
	require.Equal(t, 5.0, b.UpperBound())
	require.Equal(t, 3.0, b.Count())
	require.Equal(t, 3.0, b.Width())

	// Zero-width buckets are legal; they back point probes.
	_, err = NewBucket(4, 4)
	require.NoError(t, err)

	_, err = NewBucket(5, 2)
	require.ErrorIs(t, err, ErrInvalidBounds)
	_, err = NewBucket(math.NaN(), 2)
	require.ErrorIs(t, err, ErrInvalidBounds)
	_, err = NewBucketWithCount(2, 5, -1)
	require.ErrorIs(t, err, ErrNegativeCount)
}

func TestContains(t *testing.T) {
	b := mustBucket(t, 2, 5)

	tests := []struct {
		x    float64
		want int
	}{
		{1, -1},
		{2, -1}, // lower bound is excluded
		{2.0000001, 0},
		{3, 0},
		{5, 0}, // upper bound is included
		{6, 1},
		{math.Inf(-1), -1},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, b.Contains(tt.x), "Contains(%g)", tt.x)
	}
}

func TestCompare(t *testing.T) {
	low := mustBucket(t, 0, 5)
	high := mustBucket(t, 5, 10)

	got, err := low.Compare(high)
	require.NoError(t, err)
	require.Equal(t, -1, got)

	got, err = high.Compare(low)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	got, err = low.Compare(mustBucket(t, 0, 5))
	require.NoError(t, err)
	require.Equal(t, 0, got)

	// Bounds off by a few ULPs still compare equal.
	near, err := NewBucket(math.Nextafter(0, 1), math.Nextafter(5, 4))
	require.NoError(t, err)
	got, err = low.Compare(near)
	require.NoError(t, err)
	require.Equal(t, 0, got)

	_, err = low.Compare(mustBucket(t, 3, 8))
	require.ErrorIs(t, err, ErrOverlap)
	_, err = low.Compare(nil)
	require.ErrorIs(t, err, ErrNilBucket)
}

func TestEquals(t *testing.T) {
	a := mustBucket(t, 1, 2)
	require.True(t, a.Equals(mustBucket(t, 1, 2)))
	require.False(t, a.Equals(mustBucket(t, 1, 3)))
	require.False(t, a.Equals(nil))

	// Full equality covers the count too; ordering does not.
	withCount, err := NewBucketWithCount(1, 2, 7)
	require.NoError(t, err)
	require.False(t, a.Equals(withCount))
	got, err := a.Compare(withCount)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestBucketClone(t *testing.T) {
	b, err := NewBucketWithCount(0, 1, 4)
	require.NoError(t, err)
	c := b.Clone()
	c.count++
	require.Equal(t, 4.0, b.Count())
	require.Equal(t, 5.0, c.Count())
}

func TestBucketString(t *testing.T) {
	b, err := NewBucketWithCount(0.5, 2, 3)
	require.NoError(t, err)
	require.Equal(t, "(0.5, 2] = 3", b.String())
}
