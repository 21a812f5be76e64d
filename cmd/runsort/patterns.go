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

package main

import (
	"math/rand"
	"slices"

	"github.com/samber/lo"
)

// generator produces n keys of one input shape.
type generator func(rng *rand.Rand, n int) []int

var generators = map[string]generator{
	"random": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return rng.Intn(max(n, 1)) })
	},
	"sorted": func(_ *rand.Rand, n int) []int {
		return lo.Range(n)
	},
	"reversed": func(_ *rand.Rand, n int) []int {
		return lo.Times(n, func(i int) int { return n - i })
	},
	// Ascending ramps of 64 with a random offset each, like appended batches.
	"sawtooth": func(rng *rand.Rand, n int) []int {
		offset := 0
		return lo.Times(n, func(i int) int {
			if i%64 == 0 {
				offset = rng.Intn(1000)
			}
			return offset + i%64
		})
	},
	"few-unique": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return rng.Intn(8) })
	},
}

func patternNames() []string {
	names := lo.Keys(generators)
	slices.Sort(names)
	return names
}
