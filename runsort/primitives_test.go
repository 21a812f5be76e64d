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

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		in   []int
		want []int
	}{
		{[]int{}, []int{}},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3}, []int{3, 2, 1}},
		{[]int{1, 2, 3, 4}, []int{4, 3, 2, 1}},
	}
	for _, tt := range tests {
		got := slices.Clone(tt.in)
		Reverse(got)
		require.Equal(t, tt.want, got, "Reverse(%v)", tt.in)
	}
}

func TestReverseStrictlyDecreasing(t *testing.T) {
	tests := []struct {
		name      string
		in        []int
		tolerance int
		want      []int
	}{
		{"empty", []int{}, 1, []int{}},
		{"single", []int{4}, 1, []int{4}},
		{"full run", []int{5, 4, 3, 2, 1}, 2, []int{1, 2, 3, 4, 5}},
		{"run at tolerance", []int{5, 4}, 2, []int{5, 4}},
		{"pair default", []int{5, 4}, DefaultTolerance, []int{4, 5}},
		{"ascending untouched", []int{1, 2, 3, 4}, 1, []int{1, 2, 3, 4}},
		{"equal never reversed", []int{3, 3, 3, 2, 2}, 1, []int{3, 3, 2, 3, 2}},
		{"mixed runs", []int{9, 8, 7, 1, 2, 6, 5, 4, 3}, 2, []int{1, 7, 8, 9, 2, 3, 4, 5, 6}},
		{"short runs kept", []int{2, 1, 4, 3, 6, 5}, 2, []int{2, 1, 4, 3, 6, 5}},
		{"zero tolerance", []int{2, 1, 3}, 0, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(tt.in)
			ReverseStrictlyDecreasing(got, tt.tolerance)
			require.Equal(t, tt.want, got)

			items := tag(tt.in)
			ReverseStrictlyDecreasingFunc(items, tt.tolerance, byKey)
			keys := make([]int, len(items))
			for i, it := range items {
				keys[i] = it.Key
			}
			require.Equal(t, tt.want, keys)
		})
	}
}

func TestReverseStrictlyDecreasingKeepsEqualOrder(t *testing.T) {
	items := tag([]int{4, 3, 3, 2, 1})
	ReverseStrictlyDecreasingFunc(items, DefaultTolerance, byKey)
	// Runs are [4 3] and [3 2 1]; the two 3s keep their order.
	require.Equal(t, []item{{3, 1}, {4, 0}, {1, 4}, {2, 3}, {3, 2}}, items)
}

func TestReverseStrictlyDecreasingNegativeTolerance(t *testing.T) {
	mustPanicWith(t, ErrNegativeTolerance, func() {
		ReverseStrictlyDecreasing([]int{2, 1}, -1)
	})
	mustPanicWith(t, ErrNegativeTolerance, func() {
		ReverseStrictlyDecreasingFunc([]item{}, -3, byKey)
	})
}

func TestInsertionSort(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{0, 1, 2, 5, 9, 16, 40} {
		data := patterns["random"](rng, n)
		want := slices.Clone(data)
		slices.Sort(want)
		InsertionSort(data)
		require.Equal(t, want, data, "InsertionSort(n=%d)", n)
	}
}

func TestInsertionSortStable(t *testing.T) {
	items := tag([]int{2, 1, 2, 0, 1, 2, 0})
	InsertionSortFunc(items, byKey)
	require.Equal(t, []item{{0, 3}, {0, 6}, {1, 1}, {1, 4}, {2, 0}, {2, 2}, {2, 5}}, items)
}

func TestMergeTieBreak(t *testing.T) {
	a := []item{{1, 0}, {3, 1}, {3, 2}}
	b := []item{{2, 10}, {3, 11}, {4, 12}}
	dst := make([]item, 6)
	n := MergeFunc(a, b, dst, byKey)
	require.Equal(t, 6, n)
	require.Equal(t, []item{{1, 0}, {2, 10}, {3, 1}, {3, 2}, {3, 11}, {4, 12}}, dst)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		a, b []int
		want []int
	}{
		{[]int{1, 3, 3}, []int{2, 3, 4}, []int{1, 2, 3, 3, 3, 4}},
		{[]int{}, []int{1, 2}, []int{1, 2}},
		{[]int{1, 2}, []int{}, []int{1, 2}},
		{[]int{}, []int{}, []int{}},
		{[]int{5, 6, 7}, []int{1, 2}, []int{1, 2, 5, 6, 7}},
		{[]int{1, 2}, []int{5, 6, 7}, []int{1, 2, 5, 6, 7}},
	}
	for _, tt := range tests {
		dst := make([]int, len(tt.a)+len(tt.b)+2)
		n := Merge(tt.a, tt.b, dst)
		require.Equal(t, len(tt.want), n)
		require.Equal(t, tt.want, dst[:n], "Merge(%v, %v)", tt.a, tt.b)
	}
}

func TestMergeShortDestination(t *testing.T) {
	mustPanicWith(t, ErrShortDestination, func() {
		Merge([]int{1, 2}, []int{3}, make([]int, 2))
	})
	mustPanicWith(t, ErrShortDestination, func() {
		MergeFunc([]item{{1, 0}}, []item{{2, 1}}, nil, byKey)
	})
}

func TestMergeOverlap(t *testing.T) {
	backing := []int{1, 3, 2, 4, 0, 0, 0, 0}
	mustPanicWith(t, ErrOverlap, func() {
		Merge(backing[0:2], backing[2:4], backing[3:7])
	})
	mustPanicWith(t, ErrOverlap, func() {
		Merge(backing[0:2], backing[2:4], backing[0:4])
	})

	// Adjacent but disjoint memory is fine.
	n := Merge(backing[0:2], backing[2:4], backing[4:8])
	require.Equal(t, 4, n)
	require.Equal(t, []int{1, 2, 3, 4}, backing[4:8])
}

func TestOverlaps(t *testing.T) {
	x := make([]int, 10)
	require.True(t, overlaps(x[0:5], x[4:6]))
	require.False(t, overlaps(x[0:5], x[5:6]))
	require.False(t, overlaps(x[0:0], x[0:5]))
	require.False(t, overlaps(x, make([]int, 10)))

	z := make([]struct{}, 4)
	require.False(t, overlaps(z, z))
}
