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
	"fmt"
	"io"
	"math/rand"
	"slices"
	"sync/atomic"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-runsort/contrib/batch"
	"github.com/ajroetker/go-runsort/contrib/stopwatch"
	"github.com/ajroetker/go-runsort/contrib/tracker"
	"github.com/ajroetker/go-runsort/internal/hostinfo"
	"github.com/ajroetker/go-runsort/runsort"
)

func benchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time runsort against slices.SortStableFunc on several input patterns",
		Long: "For every pattern and size, run --trials independent sorts on a worker pool with " +
			"both algorithms, check they agree, and report the mean time and comparisons per trial.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runBench(a)
			return err
		},
	}
	flags := cmd.Flags()
	flags.Int("trials", a.cfg.Trials, "sorts per pattern, size and algorithm")
	flags.Int("workers", a.cfg.Workers, "worker pool size (0 = GOMAXPROCS)")
	flags.IntSlice("sizes", a.cfg.Sizes, "input sizes")
	flags.StringSlice("patterns", a.cfg.Patterns, "input patterns")
	return cmd
}

// algorithm is a stable sort under test.
type algorithm struct {
	name string
	sort func(vals []tracker.Value, cmp func(a, b tracker.Value) int)
}

var algorithms = []algorithm{
	{"runsort", runsort.SortFunc[tracker.Value]},
	{"stdlib", slices.SortStableFunc[[]tracker.Value, tracker.Value]},
}

type benchResult struct {
	Pattern     string
	Size        int
	Algorithm   string
	Mean        time.Duration
	Comparisons int64
}

func runBench(a *app) ([]benchResult, error) {
	pool := batch.New(a.cfg.Workers)
	defer pool.Close()

	a.logger.Info("bench starting",
		hostinfo.Detect().Field(),
		zap.Int("workers", pool.NumWorkers()),
		zap.Int64("seed", a.cfg.Seed),
	)

	var results []benchResult
	for _, pattern := range a.cfg.Patterns {
		for _, size := range a.cfg.Sizes {
			rs, err := benchCase(a, pool, pattern, size)
			if err != nil {
				return nil, err
			}
			results = append(results, rs...)
		}
	}

	if err := writeResults(a.out, results); err != nil {
		return nil, err
	}
	return results, nil
}

// benchCase runs every algorithm on the same trial inputs.
func benchCase(a *app, pool *batch.Pool, pattern string, size int) ([]benchResult, error) {
	gen := generators[pattern]
	trials := a.cfg.Trials

	outputs := make([][][]tracker.Value, len(algorithms))
	results := make([]benchResult, len(algorithms))
	for ai, alg := range algorithms {
		rec := tracker.NewRecorder(nil)
		outputs[ai] = make([][]tracker.Value, trials)
		var total atomic.Int64

		pool.Each(trials, func(trial int) {
			rng := rand.New(rand.NewSource(a.cfg.Seed + int64(trial)))
			vals := rec.Make(gen(rng, size))
			d := stopwatch.Measure(func() {
				alg.sort(vals, rec.Compare)
			})
			total.Add(int64(d))
			outputs[ai][trial] = vals
		})

		results[ai] = benchResult{
			Pattern:     pattern,
			Size:        size,
			Algorithm:   alg.name,
			Mean:        time.Duration(total.Load() / int64(trials)),
			Comparisons: rec.Comparisons() / int64(trials),
		}
		a.logger.Debug("bench case done",
			zap.String("pattern", pattern),
			zap.Int("size", size),
			zap.String("algorithm", alg.name),
			zap.Duration("mean", results[ai].Mean),
		)
	}

	// Both algorithms are stable, so the outputs must match exactly.
	for trial := 0; trial < trials; trial++ {
		for ai := 1; ai < len(algorithms); ai++ {
			if !slices.Equal(outputs[0][trial], outputs[ai][trial]) {
				return nil, fmt.Errorf("bench %s/%d trial %d: %s and %s disagree",
					pattern, size, trial, algorithms[0].name, algorithms[ai].name)
			}
		}
	}
	return results, nil
}

func writeResults(w io.Writer, results []benchResult) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "pattern\tsize\talgorithm\tmean\tcomparisons\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\t\n", r.Pattern, r.Size, r.Algorithm, r.Mean, r.Comparisons)
	}
	return tw.Flush()
}
