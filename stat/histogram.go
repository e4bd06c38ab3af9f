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
	"fmt"
	"sort"
	"strings"

	"github.com/densekit/go-dense/floats"
)

// Histogram accumulates point counts over an ordered sequence of buckets.
//
// Buckets are kept lazily sorted: AddBucket marks the sequence dirty and the
// next query that depends on order sorts once. Once sorted the buckets must be
// contiguous and disjoint, covering (LowerBound, UpperBound]; points outside
// that span widen the boundary buckets instead of being rejected.
//
// A Histogram is not safe for concurrent use.
type Histogram struct {
	buckets []*Bucket
	sorted  bool
}

// NewHistogram returns a histogram with no buckets.
func NewHistogram() *Histogram {
	return &Histogram{sorted: true}
}

// NewHistogramFromData partitions the span of data into n equal-width buckets
// and tallies every point. The lowest bucket's lower bound is nudged to the
// next representable value below the sample minimum so the minimum itself is
// strictly contained.
func NewHistogramFromData(data []float64, n int) (*Histogram, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	min, max := data[0], data[0]
	for _, x := range data[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return NewHistogramFromRange(data, n, floats.Decrement(min), max)
}

// NewHistogramFromRange partitions (lower, upper] into n equal-width buckets
// and tallies every point, widening the boundary buckets for points outside
// the range.
func NewHistogramFromRange(data []float64, n int, lower, upper float64) (*Histogram, error) {
	if n < 1 {
		return nil, fmt.Errorf("%d buckets: %w", n, ErrBucketCount)
	}
	if lower > upper {
		return nil, fmt.Errorf("bounds (%g, %g]: %w", lower, upper, ErrInvalidBounds)
	}

	h := NewHistogram()
	width := (upper - lower) / float64(n)
	for i := range n {
		b := &Bucket{lower: lower + float64(i)*width, upper: lower + float64(i+1)*width}
		if i == n-1 {
			// Tie the last bound to upper exactly rather than to
			// accumulated increments.
			b.upper = upper
		}
		h.AddBucket(b)
	}
	if err := h.AddDataSlice(data); err != nil {
		return nil, err
	}
	return h, nil
}

// AddBucket appends b and invalidates the sort order.
func (h *Histogram) AddBucket(b *Bucket) error {
	if b == nil {
		return ErrNilBucket
	}
	h.buckets = append(h.buckets, b)
	h.sorted = false
	return nil
}

func (h *Histogram) ensureSorted() {
	if h.sorted {
		return
	}
	sort.Slice(h.buckets, func(i, j int) bool {
		return h.buckets[i].upper < h.buckets[j].upper
	})
	h.sorted = true
}

// AddData tallies one point. Points at or below the histogram's lower bound
// widen the first bucket downward; points above its upper bound widen the
// last bucket upward; everything else lands in the containing bucket.
func (h *Histogram) AddData(x float64) error {
	if len(h.buckets) == 0 {
		return ErrEmptyHistogram
	}
	h.ensureSorted()

	first := h.buckets[0]
	if x <= first.lower {
		first.lower = floats.Decrement(x)
		first.count++
		return nil
	}
	last := h.buckets[len(h.buckets)-1]
	if x > last.upper {
		last.upper = x
		last.count++
		return nil
	}

	i, err := h.searchBucket(x)
	if err != nil {
		return err
	}
	h.buckets[i].count++
	return nil
}

// AddDataSlice tallies every point of xs in order.
func (h *Histogram) AddDataSlice(xs []float64) error {
	for _, x := range xs {
		if err := h.AddData(x); err != nil {
			return err
		}
	}
	return nil
}

// searchBucket assumes sorted buckets. In a sorted and disjoint sequence
// Contains(x) is monotone over the buckets (1..., 0..., -1...), so the first
// bucket with Contains(x) <= 0 is the candidate.
func (h *Histogram) searchBucket(x float64) (int, error) {
	i := sort.Search(len(h.buckets), func(i int) bool {
		return h.buckets[i].Contains(x) <= 0
	})
	if i == len(h.buckets) || h.buckets[i].Contains(x) != 0 {
		return 0, fmt.Errorf("point %g: %w", x, ErrNotFound)
	}
	return i, nil
}

// BucketIndexOf returns the index of the bucket containing x,
// or ErrNotFound when no bucket does.
func (h *Histogram) BucketIndexOf(x float64) (int, error) {
	if len(h.buckets) == 0 {
		return 0, ErrEmptyHistogram
	}
	h.ensureSorted()
	return h.searchBucket(x)
}

// BucketOf returns an independent copy of the bucket containing x.
func (h *Histogram) BucketOf(x float64) (*Bucket, error) {
	i, err := h.BucketIndexOf(x)
	if err != nil {
		return nil, err
	}
	return h.buckets[i].Clone(), nil
}

// BucketAt returns an independent copy of the i-th bucket in sorted order.
func (h *Histogram) BucketAt(i int) (*Bucket, error) {
	if i < 0 || i >= len(h.buckets) {
		return nil, fmt.Errorf("index %d of %d: %w", i, len(h.buckets), ErrIndexOutOfRange)
	}
	h.ensureSorted()
	return h.buckets[i].Clone(), nil
}

// BucketCount returns the number of buckets.
func (h *Histogram) BucketCount() int { return len(h.buckets) }

// LowerBound returns the exclusive lower bound of the lowest bucket.
func (h *Histogram) LowerBound() (float64, error) {
	if len(h.buckets) == 0 {
		return 0, ErrEmptyHistogram
	}
	h.ensureSorted()
	return h.buckets[0].lower, nil
}

// UpperBound returns the inclusive upper bound of the highest bucket.
func (h *Histogram) UpperBound() (float64, error) {
	if len(h.buckets) == 0 {
		return 0, ErrEmptyHistogram
	}
	h.ensureSorted()
	return h.buckets[len(h.buckets)-1].upper, nil
}

// DataCount returns the sum of all bucket counts, recomputed on each call.
func (h *Histogram) DataCount() float64 {
	var total float64
	for _, b := range h.buckets {
		total += b.count
	}
	return total
}

func (h *Histogram) String() string {
	h.ensureSorted()
	var sb strings.Builder
	sb.WriteString("histogram{")
	for i, b := range h.buckets {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.String())
	}
	sb.WriteString("}")
	return sb.String()
}
