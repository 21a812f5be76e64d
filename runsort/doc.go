// Package runsort provides a stable, adaptive hybrid merge sort for slices.
//
// The sort is tuned for real-world inputs: partially ordered data, short
// runs and long descending stretches. It never reorders elements that
// compare equal.
//
// # Algorithm
//
// A call runs three phases over the caller's slice:
//   - Run normalization: strictly decreasing runs longer than a small
//     tolerance are reversed in place, so descending input becomes
//     ascending before any other work happens.
//   - Base sorting: the slice is cut into chunks of minrun elements and
//     each chunk is insertion-sorted.
//   - Bottom-up merging: adjacent runs are merged with doubling window
//     sizes through one scratch slice of len(x) elements. Pairs that are
//     already in order are skipped. When two neighbouring pairs both need
//     merging, both are merged into scratch and the two results are merged
//     straight back into the slice ("ping-pong"), saving a copy.
//
// # Code Paths
//
// Every operation comes in two forms:
//   - Ordered: Sort, Merge, InsertionSort, ... for cmp.Ordered element
//     types. Comparisons use the native operator; NaNs order first.
//   - Comparator: SortFunc, MergeFunc, InsertionSortFunc, ... for any
//     element type, given a cmp function in the slices.SortStableFunc
//     convention.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-runsort/runsort"
//
//	func ProcessData(data []float32) {
//	    runsort.Sort(data) // In-place, stable, ascending
//	}
//
//	func ByAge(people []Person) {
//	    runsort.SortFunc(people, func(a, b Person) int {
//	        return cmp.Compare(a.Age, b.Age)
//	    })
//	}
//
// # Resources
//
// A call allocates at most one scratch slice of len(x) elements, and only
// when the input is longer than one minrun. Nothing is retained after the
// call returns. Calls on distinct slices may run concurrently.
package runsort
