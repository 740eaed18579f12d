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

package dataset

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/ajroetker/go-sortbench/workerpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Generator builds datasets deterministically from Seed.
type Generator struct {
	// Seed fixes the output: the same Seed, kind and size always produce the
	// same values, whatever the number of workers.
	Seed uint64

	// Pool shuffles NearlySorted blocks in parallel. Optional.
	Pool *workerpool.Pool

	Logger *zap.Logger
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

func (g *Generator) rng(kind Kind) *rand.Rand {
	return rand.New(rand.NewPCG(g.Seed, uint64(kind)+1))
}

// Generate builds a dataset of n values of the given kind.
func (g *Generator) Generate(kind Kind, n int) Dataset {
	if n < 0 {
		n = 0
	}
	var values []int32
	switch kind {
	case Random:
		values = ascending(n)
		shuffle(g.rng(kind), values)
	case NearlySorted:
		values = ascending(n)
		g.shuffleBlocks(values)
	case Reverse:
		values = make([]int32, n)
		for i := range values {
			values[i] = int32(n - i)
		}
	case Duplicated:
		values = duplicated(g.rng(kind), n)
	default:
		values = ascending(n)
	}
	return Dataset{Label: kind.Label(), Values: values}
}

func ascending(n int) []int32 {
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(i + 1)
	}
	return values
}

// shuffle is a Fisher-Yates shuffle.
func shuffle(rng *rand.Rand, values []int32) {
	for i := len(values) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// shuffleBlocks shuffles each BlockSize window of values independently. Every
// block gets its own generator keyed by its offset so the result does not
// depend on how blocks are spread over workers.
func (g *Generator) shuffleBlocks(values []int32) {
	fn := func(start, end int) {
		rng := rand.New(rand.NewPCG(g.Seed, uint64(start)<<3|uint64(NearlySorted)))
		shuffle(rng, values[start:end])
	}
	if g.Pool == nil {
		for start := 0; start < len(values); start += BlockSize {
			fn(start, min(start+BlockSize, len(values)))
		}
		return
	}
	g.Pool.ForEachBlock(len(values), BlockSize, fn)
}

func duplicated(rng *rand.Rand, n int) []int32 {
	values := make([]int32, 0, n)
	for v := int32(1); len(values) < n; v++ {
		repeats := 1 + rng.IntN(MaxRepeats)
		for i := 0; i < repeats && len(values) < n; i++ {
			values = append(values, v)
		}
	}
	shuffle(rng, values)
	return values
}

// WriteFiles generates every kind and writes it to dir/<label>.csv. Files are
// generated and written concurrently.
func (g *Generator) WriteFiles(ctx context.Context, dir string, kinds []Kind, n int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, kind := range kinds {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			ds := g.Generate(kind, n)
			path := filepath.Join(dir, kind.FileName())
			if err := WriteFile(path, ds.Values); err != nil {
				return err
			}
			g.logger().Info("dataset written",
				zap.String("dataset", ds.Label),
				zap.String("path", path),
				zap.Int("size", ds.Len()),
				zap.Duration("took", time.Since(start)))
			return nil
		})
	}
	return eg.Wait()
}
