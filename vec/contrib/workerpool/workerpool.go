// Copyright 2025 The go-vec256 Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for the parallel outer
// loops of lane kernels: tile rows of a transpose, vector-aligned chunks of a
// bulk transform, ranges of a bit-pattern scan.
//
// Workers are started once by New and reused by every call, so a kernel
// invoked many times per second does not pay for goroutine creation. Every
// method blocks until all of its work has finished. A nil or closed *Pool
// runs the work on the calling goroutine.
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAligned(len(src), vec.Size, func(start, end int) {
//	    algo.Transform(dst[start:end], src[start:end], fn)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed through a channel.
type Pool struct {
	numWorkers int
	workC      chan task

	mu       sync.Mutex
	closed   bool
	inFlight sync.WaitGroup
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close stops the workers. It may run concurrently with other calls: it
// waits for calls already feeding the workers, and calls that start after
// it run on the calling goroutine. Closing twice is a no-op.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.inFlight.Wait()
	close(p.workC)
}

// sequential reports whether work must run on the calling goroutine.
func (p *Pool) sequential() bool {
	return p == nil || p.numWorkers == 1
}

// acquire registers a call that will send to workC. It fails once Close has
// started.
func (p *Pool) acquire() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	p.inFlight.Add(1)
	return true
}

// fanOut runs body on `workers` pool goroutines and waits for all of them.
// On a closed pool the bodies run in order on the calling goroutine.
func (p *Pool) fanOut(workers int, body func(worker int)) {
	if !p.acquire() {
		for w := range workers {
			body(w)
		}
		return
	}
	defer p.inFlight.Done()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.workC <- task{run: func() { body(w) }, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn(start, end) once per range.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every range boundary except n
// itself a multiple of align, so that each range but the last covers whole
// vectors or whole tiles. align <= 0 is treated as 1.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}
	units := (n + align - 1) / align
	workers := min(p.NumWorkers(), units)
	if p.sequential() || workers == 1 {
		fn(0, n)
		return
	}

	chunk := (units + workers - 1) / workers * align
	workers = (n + chunk - 1) / chunk
	p.fanOut(workers, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n). Workers claim indices
// from a shared counter, which balances uneven per-index cost.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched claims batchSize indices at a time from a shared
// counter and calls fn(start, end) for each claimed batch. batchSize <= 0 is
// treated as 1.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := (n + batchSize - 1) / batchSize
	workers := min(p.NumWorkers(), batches)
	if p.sequential() || workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.fanOut(workers, func(int) {
		for {
			start := int(next.Add(int64(batchSize)) - int64(batchSize))
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
