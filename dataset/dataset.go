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

// Package dataset builds, stores and loads the integer datasets sortbench
// measures: random, nearly sorted, reverse sorted and duplicate heavy.
//
// Datasets are stored as comma separated text, 10,000 values per line. The
// reader is tolerant: blank lines and tokens that are not 32-bit integers are
// skipped and counted, never reported as errors.
package dataset

import (
	"fmt"
	"strings"
)

// Dataset is a labelled sequence of integers. Values must not be modified
// once the dataset is handed to a harness; sorts always work on a copy.
type Dataset struct {
	Label  string
	Values []int32
}

// Len returns the number of values.
func (d Dataset) Len() int { return len(d.Values) }

// Kind selects the shape of a generated dataset.
type Kind int

const (
	// Random holds 1..n fully shuffled.
	Random Kind = iota

	// NearlySorted holds 1..n with every consecutive block of BlockSize
	// values shuffled in place.
	NearlySorted

	// Reverse holds n down to 1.
	Reverse

	// Duplicated holds ascending values each repeated 1..MaxRepeats times,
	// fully shuffled.
	Duplicated
)

const (
	// BlockSize is the shuffle window of NearlySorted datasets.
	BlockSize = 40

	// MaxRepeats is the largest number of copies of one value in a
	// Duplicated dataset.
	MaxRepeats = 7

	// DefaultSize is the number of values in a generated dataset.
	DefaultSize = 1_000_000
)

// Kinds returns every kind in the order datasets are measured.
func Kinds() []Kind {
	return []Kind{Random, NearlySorted, Reverse, Duplicated}
}

// Label returns the dataset label used in result logs.
func (k Kind) Label() string {
	switch k {
	case Random:
		return "random_data"
	case NearlySorted:
		return "nearly_sorted_data"
	case Reverse:
		return "reverse_sorted_data"
	case Duplicated:
		return "duplicated_data"
	default:
		return fmt.Sprintf("kind_%d", int(k))
	}
}

// FileName returns the CSV file name the dataset is stored under.
func (k Kind) FileName() string {
	return k.Label() + ".csv"
}

// String implements fmt.Stringer.
func (k Kind) String() string { return k.Label() }

// ParseKind accepts a label ("random_data") or its short form ("random",
// "nearly_sorted", "reverse_sorted", "reverse", "duplicated").
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		label := k.Label()
		if s == label || s == strings.TrimSuffix(label, "_data") {
			return k, nil
		}
	}
	if s == "reverse" {
		return Reverse, nil
	}
	return 0, fmt.Errorf("unknown dataset kind %q", s)
}
