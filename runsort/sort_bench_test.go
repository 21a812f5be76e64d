package runsort

import (
	"math/rand"
	"slices"
	"testing"
)

// Int benchmarks
func BenchmarkSort_Random_100(b *testing.B) {
	benchmarkSort(b, "random", 100)
}

func BenchmarkSort_Random_1000(b *testing.B) {
	benchmarkSort(b, "random", 1000)
}

func BenchmarkSort_Random_10000(b *testing.B) {
	benchmarkSort(b, "random", 10000)
}

func BenchmarkSort_Random_100000(b *testing.B) {
	benchmarkSort(b, "random", 100000)
}

func BenchmarkSort_Sorted_10000(b *testing.B) {
	benchmarkSort(b, "sorted", 10000)
}

func BenchmarkSort_Reversed_10000(b *testing.B) {
	benchmarkSort(b, "reversed", 10000)
}

func BenchmarkSort_Sawtooth_10000(b *testing.B) {
	benchmarkSort(b, "sawtooth", 10000)
}

func benchmarkSort(b *testing.B, pattern string, n int) {
	// Generate reference data
	ref := patterns[pattern](rand.New(rand.NewSource(1)), n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Comparator path vs standard library stable sort
func BenchmarkSortFunc_Random_10000(b *testing.B) {
	ref := tag(patterns["random"](rand.New(rand.NewSource(1)), 10000))
	data := make([]item, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		SortFunc(data, byKey)
	}
}

func BenchmarkStdlibSortStableFunc_Random_10000(b *testing.B) {
	ref := tag(patterns["random"](rand.New(rand.NewSource(1)), 10000))
	data := make([]item, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.SortStableFunc(data, byKey)
	}
}

func BenchmarkStdlibSortStableFunc_Reversed_10000(b *testing.B) {
	ref := tag(patterns["reversed"](nil, 10000))
	data := make([]item, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.SortStableFunc(data, byKey)
	}
}
