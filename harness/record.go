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

package harness

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout of the Timestamp column of the result log.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one measurement of one algorithm over one dataset.
type Record struct {
	Algorithm string
	Dataset   string
	Size      int
	Elapsed   time.Duration

	// MemoryBytes is the heap growth observed across the sort. It is a
	// best-effort sample and may be negative; see MemoryProbe.
	MemoryBytes int64

	Timestamp time.Time
}

// TimeMs returns the elapsed time in fractional milliseconds.
func (r Record) TimeMs() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// MemoryMB returns MemoryBytes in mebibytes.
func (r Record) MemoryMB() float64 {
	return float64(r.MemoryBytes) / (1024 * 1024)
}

// String renders the record as a one-line human-readable summary.
func (r Record) String() string {
	return fmt.Sprintf("%-9s %-20s n=%-9d %14.6f ms %12.6f MB (%d bytes)",
		r.Algorithm, r.Dataset, r.Size, r.TimeMs(), r.MemoryMB(), r.MemoryBytes)
}
