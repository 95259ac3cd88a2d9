// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrPanic is the cause of a TaskError produced by a panicking task.
var ErrPanic = errors.New("workerpool: task panicked")

// TaskError reports a single failed task.
type TaskError struct {
	Index    int
	Panicked bool
	Err      error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %d: %v", e.Index, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// Errors holds every failed task of one Run, ordered by task index.
type Errors []*TaskError

func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return "no task errors"
	case 1:
		return e[0].Error()
	}
	return fmt.Sprintf("%d tasks failed, first: %v", len(e), e[0])
}

func (e Errors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, te := range e {
		errs[i] = te
	}
	return errs
}

// batch is the shared state of one Run call. Each index owns its slot in
// errs, so workers never write the same memory.
type batch struct {
	ctx     context.Context
	task    func(i int) error
	metrics *Metrics

	errs      []*TaskError
	failed    atomic.Bool
	cancelled atomic.Pointer[error]
}

func newBatch(ctx context.Context, n int, task func(i int) error, m *Metrics) *batch {
	return &batch{
		ctx:     ctx,
		task:    task,
		metrics: m,
		errs:    make([]*TaskError, n),
	}
}

// exec runs task i unless the batch already failed or ctx is done. The
// returned error is non-nil only when task i itself failed.
func (b *batch) exec(i int) error {
	if b.failed.Load() {
		return nil
	}
	if err := b.ctx.Err(); err != nil {
		b.cancelled.CompareAndSwap(nil, &err)
		return nil
	}
	te := call(b.task, i)
	b.metrics.taskDone(te != nil)
	if te == nil {
		return nil
	}
	b.errs[i] = te
	b.failed.Store(true)
	return te
}

func (b *batch) result() error {
	var errs Errors
	for _, te := range b.errs {
		if te != nil {
			errs = append(errs, te)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	if err := b.cancelled.Load(); err != nil {
		return *err
	}
	return nil
}

func call(task func(i int) error, i int) (te *TaskError) {
	defer func() {
		if r := recover(); r != nil {
			te = &TaskError{
				Index:    i,
				Panicked: true,
				Err:      errors.Wrap(ErrPanic, fmt.Sprint(r)),
			}
		}
	}()
	if err := task(i); err != nil {
		return &TaskError{Index: i, Err: err}
	}
	return nil
}
