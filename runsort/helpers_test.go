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
	"cmp"
	"errors"
	"math/rand"
	"testing"

	"github.com/samber/lo"
)

// item is a key tagged with its input position, so equal keys stay
// distinguishable after sorting.
type item struct {
	Key int
	Seq int
}

func byKey(a, b item) int {
	return cmp.Compare(a.Key, b.Key)
}

func tag(keys []int) []item {
	return lo.Map(keys, func(k int, i int) item {
		return item{Key: k, Seq: i}
	})
}

// Input patterns shared by tests and benchmarks.
var patterns = map[string]func(rng *rand.Rand, n int) []int{
	"random": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return rng.Intn(10000) - 5000 })
	},
	"sorted": func(rng *rand.Rand, n int) []int {
		return lo.Range(n)
	},
	"reversed": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(i int) int { return n - i })
	},
	"sawtooth": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(i int) int { return i % 37 })
	},
	"descending-sawtooth": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(i int) int { return 50 - i%50 })
	},
	"few-unique": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return rng.Intn(4) })
	},
	"all-equal": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return 7 })
	},
}

var sizes = []int{0, 1, 2, 3, 7, 8, 9, 10, 11, 15, 16, 17, 31, 32, 33, 63, 64, 100, 256, 1000, 2000}

// mustPanicWith runs fn and checks that it panics with an error wrapping target.
func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not wrap %v", err, target)
		}
	}()
	fn()
}
