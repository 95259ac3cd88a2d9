package quicksort

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/go-parsort/workerpool"
)

// Generate random data for benchmarks
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(1_000_000)
	}
	return data
}

func BenchmarkSort_1000(b *testing.B) {
	benchmarkSort(b, 1000, workerpool.Default())
}

func BenchmarkSort_100000(b *testing.B) {
	benchmarkSort(b, 100000, workerpool.Default())
}

func BenchmarkSort_1000000(b *testing.B) {
	benchmarkSort(b, 1000000, workerpool.Default())
}

func BenchmarkSortSequential_100000(b *testing.B) {
	benchmarkSort(b, 100000, workerpool.Sequential)
}

func BenchmarkSortGroup_100000(b *testing.B) {
	benchmarkSort(b, 100000, workerpool.NewGroup(0))
}

func benchmarkSort(b *testing.B, n int, sched workerpool.Scheduler) {
	s, err := NewOrdered[int](WithScheduler(sched))
	if err != nil {
		b.Fatal(err)
	}
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if err := s.Sort(data); err != nil {
			b.Fatal(err)
		}
	}
}

// Standard library comparison
func BenchmarkStdSort_100000(b *testing.B) {
	ref := generateInts(100000)
	data := make([]int, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

func BenchmarkPartition_100000(b *testing.B) {
	s, err := NewOrdered[int]()
	if err != nil {
		b.Fatal(err)
	}
	data := generateInts(100000)
	pivot := data[len(data)/2]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Partition(b.Context(), data, pivot); err != nil {
			b.Fatal(err)
		}
	}
}
