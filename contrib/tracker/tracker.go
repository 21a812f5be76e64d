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

// Package tracker provides an instrumented element type for observing a
// sort: values remember their input position, and a Recorder counts and
// logs the comparisons a sort performs on them.
//
// Usage:
//
//	rec := tracker.NewRecorder(logger)
//	vals := rec.Make([]int{3, 1, 2})
//	runsort.SortFunc(vals, rec.Compare)
//	fmt.Println(rec.Comparisons(), tracker.Stable(vals))
package tracker

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync/atomic"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Value is a sort key tagged with its position in the input. Seq breaks no
// ties during sorting; it only lets callers check stability afterwards.
type Value struct {
	Key int
	Seq int
}

// String prints the key only, so sorted output reads like plain numbers.
func (v Value) String() string {
	return strconv.Itoa(v.Key)
}

// GoString includes the input position.
func (v Value) GoString() string {
	return fmt.Sprintf("tracker.Value{Key:%d, Seq:%d}", v.Key, v.Seq)
}

// Recorder creates Values and observes comparisons between them. It is
// safe for concurrent use.
type Recorder struct {
	logger      *zap.Logger
	created     atomic.Int64
	comparisons atomic.Int64
}

// NewRecorder returns a Recorder logging through logger. A nil logger
// disables logging.
func NewRecorder(logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{logger: logger.Named("tracker")}
}

// Make tags keys with their positions.
func (r *Recorder) Make(keys []int) []Value {
	vals := lo.Map(keys, func(k int, i int) Value {
		v := Value{Key: k, Seq: i}
		r.logger.Debug("value constructed", zap.Int("key", v.Key), zap.Int("seq", v.Seq))
		return v
	})
	r.created.Add(int64(len(vals)))
	return vals
}

// Random makes n Values with keys drawn uniformly from [1, n].
func (r *Recorder) Random(rng *rand.Rand, n int) []Value {
	return r.Make(lo.Times(n, func(int) int {
		return 1 + rng.Intn(max(n, 1))
	}))
}

// Compare orders Values by Key. It is a valid cmp function for
// runsort.SortFunc and slices.SortStableFunc.
func (r *Recorder) Compare(a, b Value) int {
	r.comparisons.Add(1)
	c := 0
	switch {
	case a.Key < b.Key:
		c = -1
	case a.Key > b.Key:
		c = 1
	}
	if ce := r.logger.Check(zap.DebugLevel, "compared"); ce != nil {
		ce.Write(zap.Stringer("a", a), zap.Stringer("b", b), zap.Int("result", c))
	}
	return c
}

// Comparisons returns the number of Compare calls since the last Reset.
func (r *Recorder) Comparisons() int64 {
	return r.comparisons.Load()
}

// Created returns the number of Values made since the last Reset.
func (r *Recorder) Created() int64 {
	return r.created.Load()
}

// Reset zeroes the counters.
func (r *Recorder) Reset() {
	r.comparisons.Store(0)
	r.created.Store(0)
}

// Keys returns the keys of vals in order.
func Keys(vals []Value) []int {
	return lo.Map(vals, func(v Value, _ int) int { return v.Key })
}

// Stable reports whether vals is sorted by Key with equal keys in ascending
// Seq order. It returns the first offending index, or -1.
func Stable(vals []Value) (bool, int) {
	for i := 1; i < len(vals); i++ {
		prev, cur := vals[i-1], vals[i]
		if prev.Key > cur.Key || (prev.Key == cur.Key && prev.Seq > cur.Seq) {
			return false, i
		}
	}
	return true, -1
}
