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

// Command sortbench measures RadixSort, QuickSort, MergeSort and HeapSort over
// random, nearly sorted, reverse sorted and duplicate-heavy datasets, and
// appends every measurement to a CSV result log.
//
// Usage:
//
//	sortbench run                       # prompts for run count and regeneration
//	sortbench run -n 5 -r=false         # 5 runs over the existing datasets
//	sortbench run -n 3 -r --size 200000 # regenerate 200k-value datasets before each run
//	sortbench generate --size 1000000   # write the four dataset files
//	sortbench report --log sort_results.csv
//	sortbench env                       # describe the host
//
// Environment:
//
//	SORTBENCH_DATA_DIR  default for --data-dir
//	SORTBENCH_NO_GC     default for --no-gc
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
