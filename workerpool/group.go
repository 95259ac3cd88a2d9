// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Group is an unpooled Scheduler: each Run spawns one goroutine per task,
// at most limit at a time. The first failure cancels the tasks that have
// not started yet.
type Group struct {
	limit int
}

// NewGroup returns a Group running at most limit tasks at once.
// If limit <= 0, uses GOMAXPROCS.
func NewGroup(limit int) *Group {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Group{limit: limit}
}

// Limit returns the maximum number of concurrently running tasks.
func (g *Group) Limit() int {
	return g.limit
}

func (g *Group) Run(ctx context.Context, n int, task func(i int) error) error {
	if n <= 0 {
		return nil
	}
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.limit)

	b := newBatch(gctx, n, task, nil)
	for i := range n {
		eg.Go(func() error {
			return b.exec(i)
		})
	}
	// The errors are collected per index by the batch.
	_ = eg.Wait()

	if errs := b.result(); errs != nil {
		if _, ok := errs.(Errors); ok {
			return errs
		}
		// gctx only reports the parent's cancellation here.
		return ctx.Err()
	}
	return nil
}
