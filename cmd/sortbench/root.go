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
	"os"

	"github.com/ajroetker/go-sortbench/dataset"
	"github.com/ajroetker/go-sortbench/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogPath = "sort_results.csv"

// config holds every flag of every subcommand.
type config struct {
	dataDir    string
	logPath    string
	size       int
	seed       uint64
	runs       int
	regenerate bool
	algorithms []string
	kinds      []string
	verify     bool
	noGC       bool
	verbose    bool
}

func defaultDataDir() string {
	if dir := os.Getenv("SORTBENCH_DATA_DIR"); dir != "" {
		return dir
	}
	return "."
}

func addDataFlags(fs *pflag.FlagSet, cfg *config) {
	fs.StringVar(&cfg.dataDir, "data-dir", defaultDataDir(), "directory holding the dataset CSV files")
	fs.IntVar(&cfg.size, "size", dataset.DefaultSize, "number of values per generated dataset")
	fs.Uint64Var(&cfg.seed, "seed", 0, "generator seed (default: time based)")
	fs.StringSliceVar(&cfg.kinds, "datasets", nil, "datasets to use: random, nearly_sorted, reverse_sorted, duplicated (default all)")
}

func addLogFlag(fs *pflag.FlagSet, cfg *config) {
	fs.StringVar(&cfg.logPath, "log", defaultLogPath, "result log (CSV, appended to)")
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark radix, quick, merge and heap sort on integer datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newRunCmd(cfg),
		newGenerateCmd(cfg),
		newReportCmd(cfg),
		newEnvCmd(),
	)
	return root
}

// newLogger returns a development logger when verbose is set and a terse
// console logger on stderr otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	zc.DisableCaller = true
	return zc.Build()
}

// parseKinds resolves --datasets; an empty list selects every kind.
func parseKinds(names []string) ([]dataset.Kind, error) {
	if len(names) == 0 {
		return dataset.Kinds(), nil
	}
	kinds := make([]dataset.Kind, 0, len(names))
	for _, name := range names {
		k, err := dataset.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Describe the host measurements are taken on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := platform.Detect()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "os/arch:    %s/%s\n", h.OS, h.Arch)
			fmt.Fprintf(out, "cpus:       %d (GOMAXPROCS %d)\n", h.NumCPU, h.GOMAXPROCS)
			fmt.Fprintf(out, "go:         %s\n", h.GoVersion)
			fmt.Fprintf(out, "simd level: %s\n", h.Level)
			fmt.Fprintf(out, "features:   %v\n", h.Features)
			fmt.Fprintf(out, "no-gc:      %v\n", platform.EnvBool("SORTBENCH_NO_GC"))
			return nil
		},
	}
}
