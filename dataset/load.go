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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ajroetker/go-sortbench/workerpool"
	"go.uber.org/zap"
)

// Load reads the dataset stored at path under the given label. A missing file
// yields an empty dataset, not an error.
func Load(path, label string, logger *zap.Logger) (Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("dataset file not found, using empty dataset",
			zap.String("dataset", label), zap.String("path", path))
		return Dataset{Label: label}, nil
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("opening dataset %s: %w", label, err)
	}
	defer f.Close()

	values, stats, err := ReadCSV(f)
	if err != nil {
		return Dataset{}, fmt.Errorf("loading dataset %s: %w", label, err)
	}
	if stats.Skipped > 0 {
		logger.Debug("skipped malformed values",
			zap.String("dataset", label), zap.Int("skipped", stats.Skipped))
	}
	logger.Debug("dataset loaded",
		zap.String("dataset", label), zap.Int("size", len(values)), zap.Int("lines", stats.Lines))
	return Dataset{Label: label, Values: values}, nil
}

// LoadDir loads dir/<label>.csv for every kind, in kind order. Files are
// parsed on pool workers when pool is not nil.
func LoadDir(pool *workerpool.Pool, dir string, kinds []Kind, logger *zap.Logger) ([]Dataset, error) {
	out := make([]Dataset, len(kinds))
	load := func(i int) (err error) {
		k := kinds[i]
		out[i], err = Load(filepath.Join(dir, k.FileName()), k.Label(), logger)
		return err
	}
	var err error
	if pool == nil {
		errs := make([]error, len(kinds))
		for i := range kinds {
			errs[i] = load(i)
		}
		err = errors.Join(errs...)
	} else {
		err = pool.Tasks(len(kinds), load)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Missing returns the kinds whose file does not exist in dir.
func Missing(dir string, kinds []Kind) []Kind {
	var missing []Kind
	for _, k := range kinds {
		if _, err := os.Stat(filepath.Join(dir, k.FileName())); errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, k)
		}
	}
	return missing
}
