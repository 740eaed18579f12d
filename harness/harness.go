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

// Package harness times and measures sorts.
//
// Every measurement follows the same protocol: clone the input, stabilize the
// heap and read a baseline, time the sort on the clone, read the heap again
// without collecting, then emit a Record. The caller's slice is never
// modified, so one dataset can feed every algorithm.
//
// Measurements run one at a time on the calling goroutine. Sorts are not
// cancellable: a pathological input runs to completion, which is exactly the
// behavior being measured.
package harness

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/ajroetker/go-sortbench/dataset"
	"github.com/ajroetker/go-sortbench/sorts"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	// ErrNotSorted reports a sort whose output is out of order.
	ErrNotSorted = errors.New("output is not sorted")

	// ErrNotPermutation reports a sort whose output holds different values
	// than its input.
	ErrNotPermutation = errors.New("output is not a permutation of the input")
)

// Options configures a Harness. The zero value is usable.
type Options struct {
	// Sink receives every record. Optional.
	Sink Sink

	// Output receives a one-line summary per record. Optional.
	Output io.Writer

	Logger *zap.Logger

	// Probe samples heap usage. Defaults to RuntimeProbe{}.
	Probe MemoryProbe

	// Clock stamps records. Defaults to time.Now.
	Clock func() time.Time

	// Verify checks every sorted copy for order and permutation before the
	// record is emitted. Verification is not timed.
	Verify bool
}

// Harness measures sorts according to its Options.
type Harness struct {
	opts   Options
	logger *zap.Logger
}

// New returns a Harness using opts.
func New(opts Options) *Harness {
	if opts.Probe == nil {
		opts.Probe = RuntimeProbe{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Harness{opts: opts, logger: logger}
}

// Measure sorts a private copy of data with fn and returns the resulting
// record. Inputs with fewer than two values are skipped: ok is false and no
// record is emitted. When the sink fails, the record is returned with ok set
// alongside the error.
func (h *Harness) Measure(algorithm, label string, data []int32, fn sorts.Func) (rec Record, ok bool, err error) {
	if len(data) <= 1 {
		h.logger.Info("skipping degenerate dataset",
			zap.String("algorithm", algorithm),
			zap.String("dataset", label),
			zap.Int("size", len(data)))
		return Record{}, false, nil
	}

	work := slices.Clone(data)

	before := h.opts.Probe.Stabilize()
	start := time.Now()
	fn(work)
	elapsed := time.Since(start)
	after := h.opts.Probe.Current()

	if h.opts.Verify {
		if err := verify(data, work); err != nil {
			return Record{}, false, fmt.Errorf("%s on %s: %w", algorithm, label, err)
		}
	}

	rec = Record{
		Algorithm:   algorithm,
		Dataset:     label,
		Size:        len(data),
		Elapsed:     elapsed,
		MemoryBytes: int64(after) - int64(before),
		Timestamp:   h.opts.Clock(),
	}
	if err := h.emit(rec); err != nil {
		return rec, true, err
	}
	return rec, true, nil
}

func (h *Harness) emit(rec Record) error {
	h.logger.Debug("measured",
		zap.String("algorithm", rec.Algorithm),
		zap.String("dataset", rec.Dataset),
		zap.Int("size", rec.Size),
		zap.Duration("elapsed", rec.Elapsed),
		zap.Int64("memory_bytes", rec.MemoryBytes))
	if h.opts.Output != nil {
		fmt.Fprintln(h.opts.Output, rec.String())
	}
	if h.opts.Sink != nil {
		if err := h.opts.Sink.Append(rec); err != nil {
			return fmt.Errorf("recording %s on %s: %w", rec.Algorithm, rec.Dataset, err)
		}
	}
	return nil
}

func verify(input, sorted []int32) error {
	if !sorts.IsSorted(sorted) {
		return ErrNotSorted
	}
	want := slices.Clone(input)
	slices.Sort(want)
	if !slices.Equal(want, sorted) {
		return ErrNotPermutation
	}
	return nil
}

// RunSuite measures every algorithm on every dataset, datasets in the outer
// loop, and returns the records in measurement order. It stops at the first
// error. A record that was measured but could not be appended to the sink is
// still the last element of the returned slice.
func (h *Harness) RunSuite(datasets []dataset.Dataset, algorithms []sorts.Algorithm) ([]Record, error) {
	var records []Record
	for _, ds := range datasets {
		h.logger.Info("measuring dataset", zap.String("dataset", ds.Label), zap.Int("size", ds.Len()))
		for _, alg := range algorithms {
			rec, ok, err := h.Measure(alg.Name, ds.Label, ds.Values, alg.Sort)
			if ok {
				records = append(records, rec)
			}
			if err != nil {
				return records, err
			}
		}
	}
	return records, nil
}

// SelectAlgorithms returns the registered algorithms named in names, in
// registry order. An empty names selects all of them.
func SelectAlgorithms(names []string) ([]sorts.Algorithm, error) {
	all := sorts.All()
	if len(names) == 0 {
		return all, nil
	}
	known := lo.Map(all, func(a sorts.Algorithm, _ int) string { return a.Name })
	if unknown := lo.Without(lo.Uniq(names), known...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown algorithms %v (known: %v)", unknown, known)
	}
	return lo.Filter(all, func(a sorts.Algorithm, _ int) bool {
		return lo.Contains(names, a.Name)
	}), nil
}
