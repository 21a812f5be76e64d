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

// Thresholds for the different phases.
const (
	// minRunThreshold: minrun is halved until it drops below this value.
	minRunThreshold = 10

	// reversalTolerance: Sort only reverses decreasing runs longer than this.
	reversalTolerance = 2

	// DefaultTolerance reverses every strictly decreasing run of two or
	// more elements.
	DefaultTolerance = 1
)

// minRun returns the chunk length handed to insertion sort for n elements.
// It halves (rounding up) until the value is below minRunThreshold, so any
// n >= minRunThreshold yields a minrun in [5, 9].
func minRun(n int) int {
	run := n
	for run >= minRunThreshold {
		run = (run + 1) / 2
	}
	return run
}

// step is the action taken for one pair of adjacent runs within a window.
type step uint8

const (
	// stepSkip: the pair is already in order; nothing moves.
	stepSkip step = iota

	// stepSingle: merge the pair into scratch and copy it back.
	stepSingle

	// stepDouble: merge this pair and the next one into scratch, then merge
	// both results straight back into the sequence.
	stepDouble
)

func (s step) String() string {
	switch s {
	case stepSkip:
		return "skip"
	case stepSingle:
		return "single"
	case stepDouble:
		return "double"
	default:
		return "unknown"
	}
}

// advance returns how far the pair index moves after taking s with window w.
func (s step) advance(w int) int {
	if s == stepDouble {
		return 4 * w
	}
	return 2 * w
}

// classify picks the step for the pair of runs [i, i+w) and [i+w, ...) of
// an n-element sequence. ordered(mid) reports x[mid-1] <= x[mid].
// The caller guarantees i+w < n.
func classify(i, w, n int, ordered func(mid int) bool) step {
	if ordered(i + w) {
		return stepSkip
	}
	// The next pair needs at least one element in its right run.
	if i+3*w >= n || ordered(i+3*w) {
		return stepSingle
	}
	return stepDouble
}

// mergeRuns merges the sorted runs of length run covering x until x is one
// sorted run. buf must hold len(x) elements. merge must take from its first
// input on ties.
func mergeRuns[E any](x, buf []E, run int, ordered func(mid int) bool, merge func(a, b, dst []E)) {
	n := len(x)
	for w := run; w < n; w *= 2 {
		for i := 0; i+w < n; {
			s := classify(i, w, n, ordered)
			switch s {
			case stepSingle:
				back := min(i+2*w, n)
				merge(x[i:i+w], x[i+w:back], buf)
				copy(x[i:back], buf[:back-i])
			case stepDouble:
				j := i + 2*w
				back := min(j+2*w, n)
				merge(x[i:i+w], x[i+w:j], buf)
				merge(x[j:j+w], x[j+w:back], buf[2*w:])
				merge(buf[:2*w], buf[2*w:back-i], x[i:back])
			}
			i += s.advance(w)
		}
	}
}

// scratch is a lease over the merge buffer. release clears the elements so
// pointers held by E do not outlive the call.
type scratch[E any] struct {
	buf []E
}

func (s *scratch[E]) acquire(n int) []E {
	if s.buf != nil {
		panic("runsort: scratch acquired twice")
	}
	s.buf = make([]E, n)
	return s.buf
}

func (s *scratch[E]) release() {
	clear(s.buf)
	s.buf = nil
}
