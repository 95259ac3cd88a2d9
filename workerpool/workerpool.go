// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the schedulers that run the partition tasks of
// a parallel sort. The main one is Pool, a persistent, reusable worker pool:
// it is created once and reused across many sorts and every recursion level
// of each sort, so no goroutines are spawned per partition step.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Run(ctx, len(chunks), func(i int) error {
//	    return process(chunks[i])
//	})
//
// Sequential runs tasks inline in index order and is meant for reproducible
// tests. Group spawns one goroutine per task under an errgroup limit.
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-parsort/internal/envconf"
)

// Scheduler runs a batch of indexed tasks and waits for all of them.
//
// Run calls task(i) for each i in [0, n) and blocks until every call has
// returned. It returns nil, the context error if tasks were skipped because
// ctx was done, or Errors describing every failed task. Panics inside a task
// are recovered and reported as a *TaskError. Once a task has failed, tasks
// that have not started yet are skipped.
type Scheduler interface {
	Run(ctx context.Context, n int, task func(i int) error) error
}

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// Run may be called from many goroutines at once, but a task must not call
// Run on the pool that is executing it: a nested Run can deadlock against a
// concurrent Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	metrics    *Metrics

	// mu guards closed and every send on workC.
	mu     sync.RWMutex
	closed bool
}

// workItem represents a single unit handed to a worker.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// Option configures a Pool.
type Option func(*Pool)

// WithMetrics records task and run statistics into m.
func WithMetrics(m *Metrics) Option {
	return func(p *Pool) {
		p.metrics = m
	}
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses PARSORT_WORKERS or, if that is unset, GOMAXPROCS.
func New(numWorkers int, opts ...Option) *Pool {
	if numWorkers <= 0 {
		numWorkers = envconf.Workers(runtime.GOMAXPROCS(0))
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}
	for _, opt := range opts {
		opt(p)
	}

	for range numWorkers {
		go p.worker()
	}
	p.metrics.addWorkers(numWorkers)

	return p
}

// worker is the main loop for each persistent worker goroutine.
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

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
	p.metrics.addWorkers(-p.numWorkers)
}

// Run executes task for each index in [0, n) using the worker pool and
// blocks until all tasks complete. Workers pull indices with an atomic
// counter, so uneven tasks balance across workers.
//
// A closed pool, or a batch that would only occupy one worker, runs on the
// calling goroutine instead.
func (p *Pool) Run(ctx context.Context, n int, task func(i int) error) error {
	if n <= 0 {
		return nil
	}
	defer p.metrics.observeRun(time.Now())

	r := newBatch(ctx, n, task, p.metrics)
	workers := min(p.numWorkers, n)

	p.mu.RLock()
	if p.closed || workers == 1 {
		p.mu.RUnlock()
		for i := range n {
			r.exec(i)
		}
		return r.result()
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					r.exec(i)
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()

	wg.Wait()
	return r.result()
}

var (
	defaultMu   sync.Mutex
	defaultPool *Pool
)

// Default returns the process-wide pool, creating it on first use.
func Default() *Pool {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPool == nil {
		defaultPool = New(0)
	}
	return defaultPool
}

// CloseDefault shuts down the process-wide pool. A later call to Default
// creates a fresh one.
func CloseDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPool != nil {
		defaultPool.Close()
		defaultPool = nil
	}
}
