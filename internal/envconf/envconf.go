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

// Package envconf reads the PARSORT_* environment variables that supply
// defaults for chunk size, worker count and forced sequential scheduling.
package envconf

import (
	"os"
	"strconv"
)

// Environment variable names.
const (
	ChunkSizeVar  = "PARSORT_CHUNK_SIZE"
	WorkersVar    = "PARSORT_WORKERS"
	SequentialVar = "PARSORT_SEQUENTIAL"
)

// ChunkSize returns PARSORT_CHUNK_SIZE, or def when it is unset, unparsable
// or not positive.
func ChunkSize(def int) int {
	return positiveInt(ChunkSizeVar, def)
}

// Workers returns PARSORT_WORKERS, or def when it is unset, unparsable or
// not positive.
func Workers(def int) int {
	return positiveInt(WorkersVar, def)
}

// Sequential reports whether PARSORT_SEQUENTIAL asks for single-threaded
// partitioning. Any non-empty value is considered true unless it parses as
// a false bool.
func Sequential() bool {
	val := os.Getenv(SequentialVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func positiveInt(name string, def int) int {
	val := os.Getenv(name)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
