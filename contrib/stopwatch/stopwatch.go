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

// Package stopwatch measures elapsed wall-clock time around sort calls.
//
// Usage:
//
//	var sw stopwatch.Stopwatch
//	sw.Start()
//	runsort.Sort(data)
//	sw.Stop()
//	fmt.Printf("%dms\n", sw.ElapsedIn(time.Millisecond))
package stopwatch

import "time"

// Stopwatch records a start and a stop instant. The zero value is ready to
// use. Readings come from the monotonic clock carried by time.Now.
type Stopwatch struct {
	start   time.Time
	end     time.Time
	running bool
}

// New returns a started Stopwatch.
func New() *Stopwatch {
	s := &Stopwatch{}
	s.Start()
	return s
}

// Start (re)starts the measurement.
func (s *Stopwatch) Start() {
	s.start = time.Now()
	s.end = time.Time{}
	s.running = true
}

// Stop ends the measurement. Stopping a stopped Stopwatch keeps the first
// reading.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.end = time.Now()
	s.running = false
}

// Running reports whether Start was called without a matching Stop.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the time between Start and Stop, or since Start while
// still running. A Stopwatch that was never started reads zero.
func (s *Stopwatch) Elapsed() time.Duration {
	switch {
	case s.running:
		return time.Since(s.start)
	case s.start.IsZero():
		return 0
	default:
		return s.end.Sub(s.start)
	}
}

// ElapsedIn returns Elapsed as a whole number of units, truncated toward
// zero. For example ElapsedIn(time.Millisecond).
func (s *Stopwatch) ElapsedIn(unit time.Duration) int64 {
	if unit <= 0 {
		unit = time.Nanosecond
	}
	return int64(s.Elapsed() / unit)
}

// Measure times a single call of fn.
func Measure(fn func()) time.Duration {
	var s Stopwatch
	s.Start()
	fn()
	s.Stop()
	return s.Elapsed()
}
