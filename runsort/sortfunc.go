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

// Comparator forms of the operations in sort.go. cmp(a, b) returns a
// negative number when a < b, zero when a == b and a positive number when
// a > b, as for slices.SortStableFunc. cmp must be a strict weak ordering;
// otherwise the result is some permutation of the input in unspecified order.

// SortFunc sorts x in place in ascending order as determined by cmp,
// keeping elements that compare equal in their original order.
func SortFunc[E any](x []E, cmp func(a, b E) int) {
	n := len(x)
	if n <= 1 {
		return
	}

	run := minRun(n)

	reverseStrictlyDecreasingFunc(x, reversalTolerance, cmp)
	for i := 0; i < n; i += run {
		insertionSortFunc(x[i:min(i+run, n)], cmp)
	}

	if run == n {
		return
	}

	var s scratch[E]
	buf := s.acquire(n)
	defer s.release()

	mergeRuns(x, buf, run, func(mid int) bool {
		return cmp(x[mid-1], x[mid]) <= 0
	}, func(a, b, dst []E) {
		mergeFunc(a, b, dst, cmp)
	})
}

// IsSortedFunc reports whether x is sorted in ascending order as
// determined by cmp.
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	for i := 1; i < len(x); i++ {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}

// ReverseStrictlyDecreasingFunc is ReverseStrictlyDecreasing ordered by cmp.
func ReverseStrictlyDecreasingFunc[E any](x []E, tolerance int, cmp func(a, b E) int) {
	checkTolerance("runsort.ReverseStrictlyDecreasingFunc", tolerance)
	reverseStrictlyDecreasingFunc(x, tolerance, cmp)
}

func reverseStrictlyDecreasingFunc[E any](x []E, tolerance int, cmp func(a, b E) int) {
	n := len(x)
	start := 0
	for end := 1; start < n; end++ {
		if end < n && cmp(x[end], x[end-1]) < 0 {
			continue
		}
		if end-start > tolerance {
			Reverse(x[start:end])
		}
		start = end
	}
}

// InsertionSortFunc is InsertionSort ordered by cmp.
func InsertionSortFunc[E any](x []E, cmp func(a, b E) int) {
	insertionSortFunc(x, cmp)
}

func insertionSortFunc[E any](x []E, cmp func(a, b E) int) {
	for i := 1; i < len(x); i++ {
		if cmp(x[i], x[i-1]) >= 0 {
			continue
		}

		v := x[i]
		j := i
		for {
			x[j] = x[j-1]
			j--
			if j == 0 || cmp(x[j-1], v) <= 0 {
				break
			}
		}
		x[j] = v
	}
}

// MergeFunc is Merge ordered by cmp. On ties the element from a comes first.
func MergeFunc[E any](a, b, dst []E, cmp func(a, b E) int) int {
	checkMerge("runsort.MergeFunc", a, b, dst)
	mergeFunc(a, b, dst, cmp)
	return len(a) + len(b)
}

func mergeFunc[E any](a, b, dst []E, cmp func(a, b E) int) {
	i, j, k := 0, 0, 0
	for i < len(a) {
		if j == len(b) {
			copy(dst[k:], a[i:])
			return
		}
		if cmp(a[i], b[j]) <= 0 {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}
		k++
	}
	copy(dst[k:], b[j:])
}
