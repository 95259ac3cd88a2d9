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
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-parsort/internal/envconf"
	"github.com/ajroetker/go-parsort/workerpool"
)

// DefaultChunkSize is the partition size above which classification is split
// across concurrent tasks, unless PARSORT_CHUNK_SIZE says otherwise.
const DefaultChunkSize = 1024

type options struct {
	chunkSize    int
	scheduler    workerpool.Scheduler
	schedulerSet bool
	log          logrus.FieldLogger
}

// Option configures a Sorter.
type Option func(*options)

// WithChunkSize sets the maximum number of elements classified by one task.
// Slices no longer than n are partitioned sequentially.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithScheduler runs the partition tasks on s instead of the process-wide
// workerpool.Default pool. Pass workerpool.Sequential for reproducible runs.
func WithScheduler(s workerpool.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
		o.schedulerSet = true
	}
}

// WithLogger sets the logger that reports failed partition tasks.
// A nil logger discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l == nil {
			discard := logrus.New()
			discard.SetOutput(io.Discard)
			l = discard
		}
		o.log = l
	}
}

func defaultOptions() options {
	o := options{
		chunkSize: envconf.ChunkSize(DefaultChunkSize),
		log:       logrus.StandardLogger(),
	}
	if envconf.Sequential() {
		o.scheduler = workerpool.Sequential
	}
	return o
}
