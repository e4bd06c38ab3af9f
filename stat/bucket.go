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

// Package stat provides a bucketed histogram over half-open intervals.
//
// A Bucket is the interval (lower, upper] with an associated count, and a
// Histogram is an ordered, disjoint sequence of buckets accumulating counts
// from a data stream. Sorting is lazy: insertions mark the sequence dirty and
// the next bound-dependent query re-sorts once.
package stat

import (
	"fmt"
	"math"

	"github.com/densekit/go-dense/floats"
)

// Bucket is the half-open interval (lower, upper] carrying a non-negative
// count. Bounds only move through Histogram auto-widening; counts only grow.
//
// Counts are float64 so buckets can also hold weighted tallies.
type Bucket struct {
	lower float64
	upper float64
	count float64
}

// NewBucket returns an empty bucket spanning (lower, upper].
// lower above upper returns ErrInvalidBounds.
func NewBucket(lower, upper float64) (*Bucket, error) {
	return NewBucketWithCount(lower, upper, 0)
}

// NewBucketWithCount returns a bucket spanning (lower, upper] preloaded with
// the given count.
func NewBucketWithCount(lower, upper, count float64) (*Bucket, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return nil, fmt.Errorf("bounds (%g, %g]: %w", lower, upper, ErrInvalidBounds)
	}
	if math.IsNaN(count) || count < 0 {
		return nil, fmt.Errorf("count %g: %w", count, ErrNegativeCount)
	}
	return &Bucket{lower: lower, upper: upper, count: count}, nil
}

// LowerBound returns the exclusive lower bound.
func (b *Bucket) LowerBound() float64 { return b.lower }

// UpperBound returns the inclusive upper bound.
func (b *Bucket) UpperBound() float64 { return b.upper }

// Count returns the accumulated count.
func (b *Bucket) Count() float64 { return b.count }

// Width returns upper - lower.
func (b *Bucket) Width() float64 { return b.upper - b.lower }

// Contains places x relative to the interval: 0 when lower < x <= upper,
// -1 when x <= lower, 1 when x > upper. The lower bound itself is outside
// the bucket.
func (b *Bucket) Contains(x float64) int {
	switch {
	case x <= b.lower:
		return -1
	case x > b.upper:
		return 1
	default:
		return 0
	}
}

// Compare orders b against other. Buckets with tolerantly equal bounds
// compare 0; disjoint buckets order by position; partially overlapping
// buckets have no order and return ErrOverlap.
func (b *Bucket) Compare(other *Bucket) (int, error) {
	if other == nil {
		return 0, ErrNilBucket
	}
	if b.boundsEqual(other) {
		return 0, nil
	}
	if b.upper <= other.lower {
		return -1, nil
	}
	if other.upper <= b.lower {
		return 1, nil
	}
	return 0, fmt.Errorf("(%g, %g] vs (%g, %g]: %w", b.lower, b.upper, other.lower, other.upper, ErrOverlap)
}

// Equals reports whether bounds and count all match within floating-point
// tolerance. Ordering only ever looks at bounds; full equality also compares
// the accumulated count.
func (b *Bucket) Equals(other *Bucket) bool {
	return b.boundsEqual(other) && floats.AlmostEqual(b.count, other.count)
}

func (b *Bucket) boundsEqual(other *Bucket) bool {
	if other == nil {
		return false
	}
	return floats.AlmostEqual(b.lower, other.lower) && floats.AlmostEqual(b.upper, other.upper)
}

// Clone returns an independent copy.
func (b *Bucket) Clone() *Bucket {
	c := *b
	return &c
}

func (b *Bucket) String() string {
	return fmt.Sprintf("(%g, %g] = %g", b.lower, b.upper, b.count)
}
