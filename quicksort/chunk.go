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

// Chunk is the half-open range [Start, End) of the slice being partitioned
// that one concurrent task classifies.
type Chunk struct {
	Index int
	Start int
	End   int
}

// Len returns the number of elements in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Plan splits n elements into ceil(n/chunkSize) contiguous chunks of
// ceil(n/count) elements each; the final chunk may be shorter. Empty chunks
// are never returned, so Plan(0, s) is nil and any n <= chunkSize yields a
// single chunk.
func Plan(n, chunkSize int) []Chunk {
	if n <= 0 || chunkSize <= 0 {
		return nil
	}

	count := (n + chunkSize - 1) / chunkSize
	length := (n + count - 1) / count

	chunks := make([]Chunk, 0, count)
	for i := range count {
		start := i * length
		if start >= n {
			break
		}
		chunks = append(chunks, Chunk{
			Index: i,
			Start: start,
			End:   min(start+length, n),
		})
	}
	return chunks
}
