// Copyright 2025 go-highway Authors
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

package runsort

import "cmp"

// Sort sorts x in place in ascending order, keeping equal elements in their
// original order. NaNs are ordered before other values.
//
// For element types that are not cmp.Ordered, use SortFunc.
func Sort[E cmp.Ordered](x []E) {
	n := len(x)
	if n <= 1 {
		return
	}

	run := minRun(n)

	// Turn descending stretches into ascending ones before insertion sort
	reverseStrictlyDecreasing(x, reversalTolerance)
	for i := 0; i < n; i += run {
		insertionSort(x[i:min(i+run, n)])
	}

	// Small enough for a single chunk
	if run == n {
		return
	}

	var s scratch[E]
	buf := s.acquire(n)
	defer s.release()

	mergeRuns(x, buf, run, func(mid int) bool {
		return !cmpLess(x[mid], x[mid-1])
	}, merge[E])
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E cmp.Ordered](x []E) bool {
	for i := 1; i < len(x); i++ {
		if cmpLess(x[i], x[i-1]) {
			return false
		}
	}
	return true
}

// Reverse reverses x in place.
func Reverse[E any](x []E) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}

// ReverseStrictlyDecreasing reverses, in place, every maximal strictly
// decreasing run of x that is longer than tolerance elements. Ascending
// runs, runs of equal elements and short decreasing runs are left alone.
// DefaultTolerance reverses every decreasing pair.
//
// It panics with ErrNegativeTolerance if tolerance < 0.
func ReverseStrictlyDecreasing[E cmp.Ordered](x []E, tolerance int) {
	checkTolerance("runsort.ReverseStrictlyDecreasing", tolerance)
	reverseStrictlyDecreasing(x, tolerance)
}

func reverseStrictlyDecreasing[E cmp.Ordered](x []E, tolerance int) {
	n := len(x)
	start := 0
	for end := 1; start < n; end++ {
		if end < n && cmpLess(x[end], x[end-1]) {
			continue
		}
		if end-start > tolerance {
			Reverse(x[start:end])
		}
		start = end
	}
}

// InsertionSort sorts x in place with a stable insertion sort. It is
// quadratic and meant for short slices.
func InsertionSort[E cmp.Ordered](x []E) {
	insertionSort(x)
}

func insertionSort[E cmp.Ordered](x []E) {
	for i := 1; i < len(x); i++ {
		if !cmpLess(x[i], x[i-1]) {
			continue
		}

		// x[j] is the free slot; shift until the predecessor is not greater
		v := x[i]
		j := i
		for {
			x[j] = x[j-1]
			j--
			if j == 0 || !cmpLess(v, x[j-1]) {
				break
			}
		}
		x[j] = v
	}
}

// Merge merges the sorted slices a and b into dst and returns the number of
// elements written, len(a)+len(b). When elements compare equal, the one
// from a comes first.
//
// It panics with ErrShortDestination if dst is too short and with
// ErrOverlap if dst shares memory with a or b.
func Merge[E cmp.Ordered](a, b, dst []E) int {
	checkMerge("runsort.Merge", a, b, dst)
	merge(a, b, dst)
	return len(a) + len(b)
}

func merge[E cmp.Ordered](a, b, dst []E) {
	i, j, k := 0, 0, 0
	for i < len(a) {
		if j == len(b) {
			copy(dst[k:], a[i:])
			return
		}
		// Take from a unless b is strictly smaller
		if cmpLess(b[j], a[i]) {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	copy(dst[k:], b[j:])
}

// cmpLess is cmp.Less inlined for the hot loops.
func cmpLess[E cmp.Ordered](x, y E) bool {
	return (isNaN(x) && !isNaN(y)) || x < y
}

// isNaN reports whether x is a NaN without requiring the math package.
func isNaN[E cmp.Ordered](x E) bool {
	return x != x
}
