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
	"github.com/ajroetker/go-sortbench/report"
	"github.com/ajroetker/go-sortbench/workerpool"
	"github.com/spf13/cobra"
)

func newGenerateCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the dataset CSV files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cfg.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			kinds, err := parseKinds(cfg.kinds)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				cfg.seed = uint64(time.Now().UnixNano())
			}

			pool := workerpool.New(0)
			defer pool.Close()
			gen := &dataset.Generator{Seed: cfg.seed, Pool: pool, Logger: logger}
			if err := gen.WriteFiles(cmd.Context(), cfg.dataDir, kinds, cfg.size); err != nil {
				return err
			}
			for _, k := range kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d values\n", k.FileName(), cfg.size)
			}
			return nil
		},
	}
	addDataFlags(cmd.Flags(), cfg)
	return cmd
}

func newReportCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a result log per dataset and algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := harness.ReadRecordsFile(cfg.logPath)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), report.Summarize(records))
		},
	}
	addLogFlag(cmd.Flags(), cfg)
	return cmd
}
