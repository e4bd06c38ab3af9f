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

import "errors"

// Sentinel errors returned by this package. Callers match them with
// errors.Is; returned errors may wrap a sentinel with positional detail.
var (
	// ErrInvalidBounds reports a lower bound above the upper bound.
	ErrInvalidBounds = errors.New("stat: lower bound exceeds upper bound")

	// ErrNegativeCount reports a negative bucket count.
	ErrNegativeCount = errors.New("stat: negative count")

	// ErrOverlap reports a comparison between two buckets that partially
	// overlap, which have no defined order.
	ErrOverlap = errors.New("stat: buckets overlap")

	// ErrNotFound reports a point not contained in any bucket.
	ErrNotFound = errors.New("stat: no bucket contains the point")

	// ErrEmptyHistogram reports an operation that needs at least one bucket.
	ErrEmptyHistogram = errors.New("stat: histogram has no buckets")

	// ErrBucketCount reports a requested bucket count below one.
	ErrBucketCount = errors.New("stat: bucket count must be at least 1")

	// ErrNoData reports an empty input sample where one or more points are
	// required.
	ErrNoData = errors.New("stat: empty data sample")

	// ErrNilBucket reports a nil *Bucket operand.
	ErrNilBucket = errors.New("stat: nil bucket")

	// ErrIndexOutOfRange reports a bucket index outside [0, BucketCount).
	ErrIndexOutOfRange = errors.New("stat: bucket index out of range")
)
