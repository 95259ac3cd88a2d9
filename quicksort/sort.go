// Copyright 2025 go-parsort Authors
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

package quicksort

import (
	"cmp"
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-parsort/workerpool"
)

// Sorter sorts slices of T with a fixed comparison function and
// configuration. A Sorter is safe for concurrent use if its comparison
// function is; chunk tasks call it from several goroutines at once.
type Sorter[T any] struct {
	cmp       func(a, b T) int
	chunkSize int
	scheduler workerpool.Scheduler
	log       logrus.FieldLogger
}

// New returns a Sorter ordering elements by compare, which must implement a
// total order: negative when a < b, zero when equal, positive when a > b.
func New[T any](compare func(a, b T) int, opts ...Option) (*Sorter[T], error) {
	if compare == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil comparison function")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.chunkSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "chunk size %d", o.chunkSize)
	}
	if o.schedulerSet && o.scheduler == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil scheduler")
	}

	return &Sorter[T]{
		cmp:       compare,
		chunkSize: o.chunkSize,
		scheduler: o.scheduler,
		log:       o.log,
	}, nil
}

// NewOrdered returns a Sorter for an ordered type using cmp.Compare, so
// NaNs sort before every other float.
func NewOrdered[T constraints.Ordered](opts ...Option) (*Sorter[T], error) {
	return New(cmp.Compare[T], opts...)
}

// Sort sorts data in ascending order with the default configuration.
func Sort[T constraints.Ordered](data []T) error {
	return SortFunc(data, cmp.Compare[T])
}

// SortFunc sorts data in ascending order as determined by compare, with the
// default configuration.
func SortFunc[T any](data []T, compare func(a, b T) int) error {
	s, err := New(compare)
	if err != nil {
		return err
	}
	return s.Sort(data)
}

// ChunkSize returns the largest number of elements classified by one task.
func (s *Sorter[T]) ChunkSize() int {
	return s.chunkSize
}

// Sort sorts data in place. A nil or single-element slice is left alone.
// On error data is unchanged.
func (s *Sorter[T]) Sort(data []T) error {
	return s.SortContext(context.Background(), data)
}

// SortContext is like Sort but stops with the context error once ctx is
// done. Cancellation is checked before each partition step.
func (s *Sorter[T]) SortContext(ctx context.Context, data []T) error {
	if len(data) < 2 {
		return nil
	}
	return s.qsort(ctx, data)
}

// qsort is the recursive driver. Both groups are sorted in their own
// buffers before anything is copied back, so data is only written once
// the whole level has succeeded.
func (s *Sorter[T]) qsort(ctx context.Context, data []T) error {
	n := len(data)
	if n < 2 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "sorting %d elements", n)
	}

	// Copied out; data is rebuilt below.
	pivot := data[n/2]

	p, err := s.Partition(ctx, data, pivot)
	if err != nil {
		return err
	}
	if err := s.qsort(ctx, p.Less); err != nil {
		return err
	}
	if err := s.qsort(ctx, p.Greater); err != nil {
		return err
	}

	i := copy(data, p.Less)
	i += copy(data[i:], p.Equal)
	copy(data[i:], p.Greater)
	return nil
}

func (s *Sorter[T]) schedulerOrDefault() workerpool.Scheduler {
	if s.scheduler != nil {
		return s.scheduler
	}
	return workerpool.Default()
}
