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

// Command runsort demonstrates and benchmarks the runsort stable sort.
//
// Usage:
//
//	runsort demo --size 100                 # sort 100 tracked values, print before/after
//	runsort bench --sizes 1000,100000       # time patterns against slices.SortStableFunc
//	runsort --config runsort.toml bench     # read settings from a TOML file
//
// Log output goes to stderr; results go to stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
