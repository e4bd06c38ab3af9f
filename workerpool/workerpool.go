// Copyright 2026 The go-dense Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// data-parallel fan-out over index ranges. A Pool is created once and reused
// across many operations, so elementwise vector updates and norm reductions
// do not pay goroutine spawn or channel allocation costs per call.
//
// The execution model is a synchronous barrier: ParallelFor and Reduce
// partition [0, n) into contiguous chunks, hand each chunk to a worker, and
// block the caller until every chunk has completed. Nothing is cancellable
// and nothing times out; all fan-outs run to completion.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(data), func(start, end int) {
//	    scaleRange(data[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close. A Pool is safe for concurrent use by multiple callers.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one partition of a parallel operation.
type task struct {
	run     func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned immediately.
// If workers <= 0, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: workers,
		workC:      make(chan task, workers*2),
	}

	for range workers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.run()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Pending work completes; later ParallelFor and
// Reduce calls degrade to sequential execution. Close is safe to call twice.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) partitioned into contiguous chunks,
// one chunk per worker, and blocks until all chunks complete.
//
// fn receives (start, end) and must process indices in [start, end). The
// chunks are disjoint, so fn may write to per-index state without locking.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := p.partitions(n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- task{
			run:     func() { fn(start, end) },
			barrier: &wg,
		}
	}

	wg.Wait()
}

// partitions reports how many chunks to split n items into: never more than
// the worker count, never more than n, and 1 when the pool is closed.
func (p *Pool) partitions(n int) int {
	if p.closed.Load() {
		return 1
	}
	return min(p.numWorkers, n)
}

// Reduce runs a fork-join reduction over [0, n).
//
// Each partition folds its index range locally starting from seed, with no
// shared state. The partial results are then merged into the final value
// under a single mutex, one partition at a time. combine must be commutative
// and associative, and seed must be an identity for combine (0 for sums,
// 1 for products, -Inf for maxima): every partition starts its fold from
// seed, so a non-identity seed would be counted once per partition.
//
// With a closed pool or a small n the whole fold runs sequentially on the
// calling goroutine, which under the seed and combine contract yields the
// same result as any partitioning.
func Reduce[T any](p *Pool, n int, seed T, fold func(acc T, start, end int) T, combine func(a, b T) T) T {
	if n <= 0 {
		return seed
	}

	workers := p.partitions(n)
	if workers == 1 {
		return fold(seed, 0, n)
	}

	chunk := (n + workers - 1) / workers

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		total T
		first = true
	)
	wg.Add(workers)

	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- task{
			run: func() {
				part := fold(seed, start, end)

				mu.Lock()
				// The first partial stands alone: merging it into a
				// seed-initialized total would count seed one extra time.
				if first {
					total, first = part, false
				} else {
					total = combine(total, part)
				}
				mu.Unlock()
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	return total
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the shared process-wide pool, created on first use with
// GOMAXPROCS workers. It is never closed.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = New(0)
	})
	return defaultPool
}
