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
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned for a nil comparison function, a nil
	// scheduler or a chunk size that is not positive.
	ErrInvalidInput = errors.New("quicksort: invalid input")

	// ErrTaskFailure matches every *TaskFailure.
	ErrTaskFailure = errors.New("quicksort: partition task failed")
)

// ChunkFailure describes one chunk whose classification task failed.
// Chunk.Index is -1 when the scheduler failed without naming a task.
type ChunkFailure struct {
	Chunk    Chunk
	Panicked bool
	Err      error
}

// TaskFailure aborts a sort when partition tasks fail. It lists every failed
// chunk of the partition step, in chunk order.
type TaskFailure struct {
	// Len is the length of the slice that was being partitioned.
	Len      int
	Chunks   int
	Failures []ChunkFailure
}

func (e *TaskFailure) Error() string {
	if len(e.Failures) == 0 {
		return fmt.Sprintf("quicksort: partition of %d elements failed", e.Len)
	}
	f := e.Failures[0]
	return fmt.Sprintf("quicksort: %d of %d partition tasks failed over %d elements, chunk %d [%d,%d): %v",
		len(e.Failures), e.Chunks, e.Len, f.Chunk.Index, f.Chunk.Start, f.Chunk.End, f.Err)
}

func (e *TaskFailure) Is(target error) bool {
	return target == ErrTaskFailure
}

func (e *TaskFailure) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}
