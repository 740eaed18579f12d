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
	"time"

	"github.com/ajroetker/go-sortbench/dataset"
	"github.com/ajroetker/go-sortbench/harness"
	"github.com/ajroetker/go-sortbench/platform"
	"github.com/ajroetker/go-sortbench/report"
	"github.com/ajroetker/go-sortbench/workerpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure every algorithm on every dataset, appending to the result log",
		Long: `Measure every algorithm on every dataset, appending to the result log.

Without --runs or --regenerate the command asks for them on standard input.
Datasets missing from --data-dir are generated before the first run.

Memory figures are heap deltas sampled around each sort. The collector runs
concurrently, so they are approximate and can be negative.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, cfg)
		},
	}
	fs := cmd.Flags()
	addDataFlags(fs, cfg)
	addLogFlag(fs, cfg)
	fs.IntVarP(&cfg.runs, "runs", "n", 0, "number of runs (0: ask)")
	fs.BoolVarP(&cfg.regenerate, "regenerate", "r", false, "regenerate datasets before each run (asked when not given)")
	fs.StringSliceVar(&cfg.algorithms, "algorithms", nil, "algorithms to run: RadixSort, QuickSort, MergeSort, HeapSort (default all)")
	fs.BoolVar(&cfg.verify, "verify", false, "check every sorted copy for order and permutation")
	fs.BoolVar(&cfg.noGC, "no-gc", platform.EnvBool("SORTBENCH_NO_GC"), "skip the collection before each baseline memory reading")
	return cmd
}

func runBench(cmd *cobra.Command, cfg *config) error {
	logger, err := newLogger(cfg.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	algorithms, err := harness.SelectAlgorithms(cfg.algorithms)
	if err != nil {
		return err
	}
	kinds, err := parseKinds(cfg.kinds)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("seed") {
		cfg.seed = uint64(time.Now().UnixNano())
	}

	out := cmd.OutOrStdout()
	ask := newPrompter(cmd.InOrStdin(), out)
	if cfg.runs <= 0 {
		if cfg.runs, err = ask.runCount(); err != nil {
			return fmt.Errorf("reading run count: %w", err)
		}
	}
	if !cmd.Flags().Changed("regenerate") {
		if cfg.regenerate, err = ask.yesNo("Regenerate datasets before each run?"); err != nil {
			return fmt.Errorf("reading regenerate answer: %w", err)
		}
	}

	host := platform.Detect()
	fmt.Fprintf(out, "Host: %s\n", host)
	logger.Info("starting benchmark",
		zap.String("host", host.String()),
		zap.Int("runs", cfg.runs),
		zap.Bool("regenerate", cfg.regenerate),
		zap.Int("size", cfg.size),
		zap.Uint64("seed", cfg.seed))

	pool := workerpool.New(0)
	defer pool.Close()
	gen := &dataset.Generator{Seed: cfg.seed, Pool: pool, Logger: logger}

	if missing := dataset.Missing(cfg.dataDir, kinds); len(missing) > 0 && !cfg.regenerate {
		logger.Info("generating missing datasets", zap.Int("count", len(missing)))
		if err := gen.WriteFiles(cmd.Context(), cfg.dataDir, missing, cfg.size); err != nil {
			return err
		}
	}

	resultLog, err := harness.OpenResultLog(cfg.logPath)
	if err != nil {
		return err
	}
	defer resultLog.Close()

	h := harness.New(harness.Options{
		Sink:   resultLog,
		Output: out,
		Logger: logger,
		Probe:  harness.RuntimeProbe{SkipGC: cfg.noGC},
		Verify: cfg.verify,
	})

	var all []harness.Record
	for run := 1; run <= cfg.runs; run++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		if cfg.regenerate {
			gen.Seed = cfg.seed + uint64(run-1)
			if err := gen.WriteFiles(cmd.Context(), cfg.dataDir, kinds, cfg.size); err != nil {
				return err
			}
		}
		datasets, err := dataset.LoadDir(pool, cfg.dataDir, kinds, logger)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\n=== Run %d/%d ===\n", run, cfg.runs)
		records, err := h.RunSuite(datasets, algorithms)
		all = append(all, records...)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nResults appended to %s\n\n", resultLog.Path())
	return report.Render(out, report.Summarize(all))
}
