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
	"errors"
	"fmt"
	"unsafe"
)

// Contract violations. Operations panic with an error wrapping one of
// these; use errors.Is on the recovered value.
var (
	// ErrShortDestination: a merge destination cannot hold both inputs.
	ErrShortDestination = errors.New("runsort: destination shorter than merged inputs")

	// ErrOverlap: a merge destination shares memory with one of its inputs.
	ErrOverlap = errors.New("runsort: destination overlaps an input")

	// ErrNegativeTolerance: a run reversal tolerance below zero.
	ErrNegativeTolerance = errors.New("runsort: negative reversal tolerance")
)

func violation(op string, err error, format string, args ...any) {
	panic(fmt.Errorf("%s: %w (%s)", op, err, fmt.Sprintf(format, args...)))
}

// checkMerge validates the Merge/MergeFunc contract.
func checkMerge[E any](op string, a, b, dst []E) {
	need := len(a) + len(b)
	if len(dst) < need {
		violation(op, ErrShortDestination, "have %d, need %d", len(dst), need)
	}
	out := dst[:need]
	if overlaps(out, a) || overlaps(out, b) {
		violation(op, ErrOverlap, "destination of %d elements", need)
	}
}

func checkTolerance(op string, tolerance int) {
	if tolerance < 0 {
		violation(op, ErrNegativeTolerance, "tolerance %d", tolerance)
	}
}

// overlaps reports whether the backing memory of a and b intersects.
func overlaps[E any](a, b []E) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero E
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
