// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package batch sorts many independent sequences on a persistent worker
// pool. Each sequence is sorted by a single worker with runsort; the pool
// only spreads whole sequences across workers.
//
// Usage:
//
//	pool := batch.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Reuse the pool across many batches
//	for _, shard := range shards {
//	    batch.Sort(pool, shard.Columns)
//	}
package batch

import (
	"cmp"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-runsort/runsort"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused by every batch.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a batch.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for w := 0; w < numWorkers; w++ {
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

// Close shuts down the pool. Batches already handed to workers complete.
// Calling Close multiple times is safe; later batches run on the caller.
// Close must not race with a batch in progress.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Each calls fn(i) for every i in [0, n). Workers take the next index from
// a shared counter, so batches of uneven sequence lengths stay balanced.
// Blocks until every call returns.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// Sort sorts every sequence of seqs with runsort.Sort. The sequences must
// not share backing memory.
func Sort[E cmp.Ordered](p *Pool, seqs [][]E) {
	p.Each(len(seqs), func(i int) {
		runsort.Sort(seqs[i])
	})
}

// SortFunc sorts every sequence of seqs with runsort.SortFunc. cmp may be
// called from several goroutines at once.
func SortFunc[E any](p *Pool, seqs [][]E, cmp func(a, b E) int) {
	p.Each(len(seqs), func(i int) {
		runsort.SortFunc(seqs[i], cmp)
	})
}
