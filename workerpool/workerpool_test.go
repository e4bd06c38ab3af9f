// Copyright 2026 The go-dense Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"sync/atomic"
	"testing"
)

func TestParallelForCoversAllIndices(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const n = 10000
	hits := make([]int32, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, h)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var calls atomic.Int32
	pool.ParallelFor(1, func(start, end int) {
		calls.Add(1)
		if start != 0 || end != 1 {
			t.Errorf("got range [%d, %d), want [0, 1)", start, end)
		}
	})
	if calls.Load() != 1 {
		t.Errorf("fn called %d times, want 1", calls.Load())
	}

	pool.ParallelFor(0, func(start, end int) {
		t.Error("fn must not be called for n=0")
	})
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close() // second Close is a no-op

	var count atomic.Int64
	pool.ParallelFor(100, func(start, end int) {
		count.Add(int64(end - start))
	})
	if count.Load() != 100 {
		t.Errorf("sequential fallback processed %d indices, want 100", count.Load())
	}
}

func TestReduceSum(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const n = 5000
	data := make([]float64, n)
	var want float64
	for i := range data {
		data[i] = float64(i%13) - 6
		want += data[i]
	}

	got := Reduce(pool, n, 0.0,
		func(acc float64, start, end int) float64 {
			for i := start; i < end; i++ {
				acc += data[i]
			}
			return acc
		},
		func(a, b float64) float64 { return a + b },
	)

	if got != want {
		t.Errorf("Reduce sum = %v, want %v", got, want)
	}
}

func TestReduceMax(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	const n = 1000
	data := make([]float64, n)
	for i := range data {
		data[i] = float64((i * 7919) % n)
	}
	data[617] = float64(n + 5)

	got := Reduce(pool, n, 0.0,
		func(acc float64, start, end int) float64 {
			for i := start; i < end; i++ {
				if data[i] > acc {
					acc = data[i]
				}
			}
			return acc
		},
		func(a, b float64) float64 { return max(a, b) },
	)

	if got != float64(n+5) {
		t.Errorf("Reduce max = %v, want %v", got, float64(n+5))
	}
}

func TestReduceSeedCountedOnce(t *testing.T) {
	// A nonzero identity seed (1 for products) must not leak into the
	// result an extra time per partition: every pool size has to agree
	// with the sequential fold.
	const n = 24
	data := make([]float64, n)
	for i := range data {
		data[i] = 1 + float64(i%3)/10
	}

	fold := func(acc float64, start, end int) float64 {
		for i := start; i < end; i++ {
			acc *= data[i]
		}
		return acc
	}
	mul := func(a, b float64) float64 { return a * b }

	want := fold(1.0, 0, n)
	for _, workers := range []int{1, 2, 3, 5, 8} {
		pool := New(workers)
		got := Reduce(pool, n, 1.0, fold, mul)
		pool.Close()

		if diff := got - want; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("%d workers: Reduce product = %v, want %v", workers, got, want)
		}
	}
}

func TestReduceEmptyAndClosed(t *testing.T) {
	pool := New(2)

	if got := Reduce(pool, 0, 42.0, nil, nil); got != 42.0 {
		t.Errorf("Reduce with n=0 = %v, want seed 42", got)
	}

	pool.Close()
	got := Reduce(pool, 10, 0.0,
		func(acc float64, start, end int) float64 { return acc + float64(end-start) },
		func(a, b float64) float64 { return a + b },
	)
	if got != 10 {
		t.Errorf("Reduce after Close = %v, want 10", got)
	}
}

func TestDefaultPool(t *testing.T) {
	p1 := Default()
	p2 := Default()
	if p1 != p2 {
		t.Error("Default must return the same pool every time")
	}
	if p1.NumWorkers() < 1 {
		t.Errorf("Default pool has %d workers, want >= 1", p1.NumWorkers())
	}
}
