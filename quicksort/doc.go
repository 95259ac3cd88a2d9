// Package quicksort provides a parallel three-way ("Dutch national flag")
// quicksort.
//
// # Algorithm
//
// Each recursion level picks the middle element as pivot and splits the
// slice into elements less than, equal to and greater than the pivot. Small
// slices are classified in a single pass on the calling goroutine. Slices
// longer than the chunk size (1024 by default) are cut into contiguous
// chunks that are classified concurrently on a workerpool.Scheduler; the
// per-chunk groups are then concatenated in chunk order, so every group
// keeps the original relative order of its elements.
//
// The less and greater groups are sorted recursively, then less, equal and
// greater are copied back into the caller's slice. The equal group needs no
// further work.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-parsort/quicksort"
//
//	func SortNames(names []string) error {
//	    return quicksort.Sort(names)
//	}
//
//	func SortByAge(people []Person) error {
//	    return quicksort.SortFunc(people, func(a, b Person) int {
//	        return cmp.Compare(a.Age, b.Age)
//	    })
//	}
//
// # Failures
//
// A failed partition task (an error from the scheduler or a panicking
// comparison function) aborts the sort with a *TaskFailure. The caller's
// slice is only written after every level below it has succeeded, so a
// failed sort leaves the input exactly as it was.
//
// # Limitations
//
// The pivot is always the middle element. Crafted inputs can drive the
// recursion depth to O(n).
package quicksort
