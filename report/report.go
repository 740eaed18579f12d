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

// Package report summarizes result logs: one row per (dataset, algorithm)
// with run count and time/memory statistics.
package report

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/ajroetker/go-sortbench/harness"
	"github.com/ajroetker/go-sortbench/sorts"
	"github.com/samber/lo"
)

// Row aggregates every run of one algorithm over one dataset.
type Row struct {
	Dataset   string
	Algorithm string
	Size      int
	Runs      int

	MeanMs float64
	MinMs  float64
	MaxMs  float64

	// MeanMemoryBytes averages best-effort samples; it may be negative.
	MeanMemoryBytes float64
}

type groupKey struct {
	dataset, algorithm string
}

// Summarize groups records by dataset and algorithm. Datasets keep the order
// in which they first appear; algorithms follow registry order, with unknown
// names after the known ones in first-seen order.
func Summarize(records []harness.Record) []Row {
	if len(records) == 0 {
		return nil
	}
	groups := lo.GroupBy(records, func(r harness.Record) groupKey {
		return groupKey{r.Dataset, r.Algorithm}
	})

	datasets := lo.Uniq(lo.Map(records, func(r harness.Record, _ int) string { return r.Dataset }))
	algorithms := algorithmOrder(records)

	var rows []Row
	for _, ds := range datasets {
		for _, alg := range algorithms {
			g, ok := groups[groupKey{ds, alg}]
			if !ok {
				continue
			}
			rows = append(rows, summarizeGroup(ds, alg, g))
		}
	}
	return rows
}

func algorithmOrder(records []harness.Record) []string {
	registered := lo.Map(sorts.All(), func(a sorts.Algorithm, _ int) string { return a.Name })
	seen := lo.Uniq(lo.Map(records, func(r harness.Record, _ int) string { return r.Algorithm }))
	known := lo.Filter(registered, func(name string, _ int) bool { return lo.Contains(seen, name) })
	return append(known, lo.Without(seen, registered...)...)
}

func summarizeGroup(ds, alg string, g []harness.Record) Row {
	n := float64(len(g))
	fastest := lo.MinBy(g, func(a, b harness.Record) bool { return a.Elapsed < b.Elapsed })
	slowest := lo.MaxBy(g, func(a, b harness.Record) bool { return a.Elapsed > b.Elapsed })
	return Row{
		Dataset:         ds,
		Algorithm:       alg,
		Size:            lo.Max(lo.Map(g, func(r harness.Record, _ int) int { return r.Size })),
		Runs:            len(g),
		MeanMs:          lo.SumBy(g, func(r harness.Record) float64 { return r.TimeMs() }) / n,
		MinMs:           fastest.TimeMs(),
		MaxMs:           slowest.TimeMs(),
		MeanMemoryBytes: float64(lo.SumBy(g, func(r harness.Record) int64 { return r.MemoryBytes })) / n,
	}
}

// Fastest maps every dataset to the algorithm with the lowest mean time.
func Fastest(rows []Row) map[string]string {
	out := make(map[string]string)
	for ds, group := range lo.GroupBy(rows, func(r Row) string { return r.Dataset }) {
		best := lo.MinBy(group, func(a, b Row) bool { return a.MeanMs < b.MeanMs })
		out[ds] = best.Algorithm
	}
	return out
}

// Render writes rows as an aligned table, one block per dataset, marking the
// fastest algorithm of each block with '*'.
func Render(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no measurements")
		return err
	}
	fastest := Fastest(rows)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	datasets := lo.Uniq(lo.Map(rows, func(r Row, _ int) string { return r.Dataset }))
	for i, ds := range datasets {
		if i > 0 {
			fmt.Fprintln(tw, "\t\t\t\t\t\t\t")
		}
		block := lo.Filter(rows, func(r Row, _ int) bool { return r.Dataset == ds })
		fmt.Fprintf(tw, "%s (n=%d)\tRuns\tMean ms\tMin ms\tMax ms\tMean MB\t\t\n",
			ds, slices.MaxFunc(block, func(a, b Row) int { return a.Size - b.Size }).Size)
		for _, r := range block {
			mark := ""
			if fastest[ds] == r.Algorithm {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%s\t\n",
				r.Algorithm, r.Runs, r.MeanMs, r.MinMs, r.MaxMs, r.MeanMemoryBytes/(1024*1024), mark)
		}
	}
	return tw.Flush()
}
