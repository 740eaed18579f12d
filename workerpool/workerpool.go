// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a small persistent worker pool used to build
// benchmark datasets. Workers are spawned once and reused for every dataset,
// so regenerating datasets between runs does not respawn goroutines.
//
// The pool is never used while a sort is being measured.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ForEachBlock(len(values), 40, func(start, end int) {
//	    shuffle(values[start:end])
//	})
package workerpool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned at creation and live
// until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down after pending work completes. Calling Close more
// than once is safe. A closed pool runs work on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForEachBlock splits [0, n) into consecutive blocks of blockSize (the last
// one may be shorter) and calls fn(start, end) for every block. Blocks are
// handed out in contiguous groups, one group per worker, so a worker's
// blocks are adjacent in memory. Blocks until all calls return.
//
// Block boundaries do not depend on the number of workers.
func (p *Pool) ForEachBlock(n, blockSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if blockSize <= 0 {
		blockSize = n
	}

	numBlocks := (n + blockSize - 1) / blockSize
	runGroup := func(first, last int) {
		for b := first; b < last; b++ {
			start := b * blockSize
			fn(start, min(start+blockSize, n))
		}
	}

	workers := min(p.numWorkers, numBlocks)
	if p.closed.Load() || workers == 1 {
		runGroup(0, numBlocks)
		return
	}

	perWorker := (numBlocks + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		first := i * perWorker
		last := min(first+perWorker, numBlocks)
		if first >= numBlocks {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn:      func() { runGroup(first, last) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// Tasks runs task(i) for every i in [0, n) as separate pool items, one per
// task, and returns the errors joined in index order. Meant for a handful of
// uneven jobs such as parsing one dataset file per kind: each job queues on
// its own, so a slow one never holds back the others. Blocks until every task
// returns.
func (p *Pool) Tasks(n int, task func(i int) error) error {
	if n <= 0 {
		return nil
	}
	errs := make([]error, n)
	if p.closed.Load() || p.numWorkers == 1 || n == 1 {
		for i := range n {
			errs[i] = task(i)
		}
		return errors.Join(errs...)
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		p.workC <- workItem{
			fn:      func() { errs[i] = task(i) },
			barrier: &wg,
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}
