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
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-parsort/workerpool"
)

// Partition is the result of a three-way partition around a pivot. Less,
// Equal and Greater concatenated form a permutation of the input, and each
// group keeps the input order of its elements.
type Partition[T any] struct {
	Less    []T
	Equal   []T
	Greater []T
}

// Len returns the total number of elements in the three groups.
func (p Partition[T]) Len() int {
	return len(p.Less) + len(p.Equal) + len(p.Greater)
}

// slot holds the result of one chunk task. The padding keeps neighbouring
// slots, written by different workers, off the same cache line.
type slot[T any] struct {
	part Partition[T]
	_    cpu.CacheLinePad
}

// Partition classifies data into elements less than, equal to and greater
// than pivot. data is not modified.
//
// If data fits in one chunk it is classified on the calling goroutine.
// Otherwise each chunk from Plan is classified by its own task on the
// Sorter's scheduler and the per-chunk groups are merged in chunk order,
// independent of the order in which tasks complete.
func (s *Sorter[T]) Partition(ctx context.Context, data []T, pivot T) (Partition[T], error) {
	chunks := Plan(len(data), s.chunkSize)
	if len(chunks) <= 1 {
		return s.partitionInline(data, pivot)
	}

	slots := make([]slot[T], len(chunks))
	err := s.schedulerOrDefault().Run(ctx, len(chunks), func(i int) error {
		c := chunks[i]
		slots[i].part = s.classify(data[c.Start:c.End], pivot)
		return nil
	})
	if err != nil {
		return Partition[T]{}, s.taskFailure(len(data), chunks, err)
	}
	return merge(slots), nil
}

func (s *Sorter[T]) partitionInline(data []T, pivot T) (p Partition[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			te := &workerpool.TaskError{
				Panicked: true,
				Err:      errors.Wrap(workerpool.ErrPanic, fmt.Sprint(r)),
			}
			chunks := []Chunk{{Start: 0, End: len(data)}}
			p, err = Partition[T]{}, s.taskFailure(len(data), chunks, workerpool.Errors{te})
		}
	}()
	return s.classify(data, pivot), nil
}

// classify is the single-pass three-way split of one chunk.
func (s *Sorter[T]) classify(data []T, pivot T) Partition[T] {
	var p Partition[T]
	for _, e := range data {
		switch c := s.cmp(e, pivot); {
		case c < 0:
			p.Less = append(p.Less, e)
		case c > 0:
			p.Greater = append(p.Greater, e)
		default:
			p.Equal = append(p.Equal, e)
		}
	}
	return p
}

// merge concatenates the per-chunk groups in chunk-index order.
func merge[T any](slots []slot[T]) Partition[T] {
	var nl, ne, ng int
	for i := range slots {
		nl += len(slots[i].part.Less)
		ne += len(slots[i].part.Equal)
		ng += len(slots[i].part.Greater)
	}

	p := Partition[T]{
		Less:    make([]T, 0, nl),
		Equal:   make([]T, 0, ne),
		Greater: make([]T, 0, ng),
	}
	for i := range slots {
		p.Less = append(p.Less, slots[i].part.Less...)
		p.Equal = append(p.Equal, slots[i].part.Equal...)
		p.Greater = append(p.Greater, slots[i].part.Greater...)
	}
	return p
}

// taskFailure turns a scheduler error into the error returned by the sort
// and logs every failed chunk. Context errors pass through wrapped.
func (s *Sorter[T]) taskFailure(n int, chunks []Chunk, err error) error {
	tf := &TaskFailure{Len: n, Chunks: len(chunks)}

	var errs workerpool.Errors
	switch {
	case errors.As(err, &errs):
		for _, te := range errs {
			c := Chunk{Index: -1, Start: 0, End: n}
			if te.Index >= 0 && te.Index < len(chunks) {
				c = chunks[te.Index]
			}
			tf.Failures = append(tf.Failures, ChunkFailure{Chunk: c, Panicked: te.Panicked, Err: te.Err})
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errors.Wrapf(err, "partitioning %d elements", n)
	default:
		tf.Failures = []ChunkFailure{{Chunk: Chunk{Index: -1, Start: 0, End: n}, Err: err}}
	}

	for _, f := range tf.Failures {
		s.log.WithFields(logrus.Fields{
			"chunk":    f.Chunk.Index,
			"start":    f.Chunk.Start,
			"end":      f.Chunk.End,
			"panicked": f.Panicked,
		}).WithError(f.Err).Error("partition task failed")
	}
	return tf
}
