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
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-runsort/contrib/stopwatch"
	"github.com/ajroetker/go-runsort/contrib/tracker"
	"github.com/ajroetker/go-runsort/runsort"
)

func demoCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Sort random tracked values and print them before and after",
		Long: "Fill a slice with --size random values in [1, size], print it, sort it with " +
			"runsort.SortFunc and print the result with the elapsed time and comparison count. " +
			"Run with --log-level debug to see every value creation and comparison.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(a)
		},
	}
	cmd.Flags().Int("size", a.cfg.Size, "number of values to sort")
	return cmd
}

func runDemo(a *app) error {
	rec := tracker.NewRecorder(a.logger)
	vals := rec.Random(rand.New(rand.NewSource(a.cfg.Seed)), a.cfg.Size)

	if err := printValues(a.out, vals); err != nil {
		return err
	}

	var sw stopwatch.Stopwatch
	sw.Start()
	runsort.SortFunc(vals, rec.Compare)
	sw.Stop()

	if err := printValues(a.out, vals); err != nil {
		return err
	}

	stable, at := tracker.Stable(vals)
	a.logger.Info("demo sorted",
		zap.Int("size", len(vals)),
		zap.Int64("seed", a.cfg.Seed),
		zap.Int64("comparisons", rec.Comparisons()),
		zap.Duration("elapsed", sw.Elapsed()),
		zap.Bool("stable", stable),
	)
	if !stable {
		return fmt.Errorf("demo: equal keys reordered at index %d", at)
	}

	_, err := fmt.Fprintf(a.out, "%dms\n", sw.ElapsedIn(time.Millisecond))
	return err
}

func printValues(w io.Writer, vals []tracker.Value) error {
	var b strings.Builder
	for _, v := range vals {
		b.WriteString(v.String())
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
