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
	"runtime"
)

// MemoryProbe samples heap usage around a measured sort.
//
// Readings are approximate. The Go collector runs concurrently and may reclaim
// garbage during or right after the sort, so the difference between Current
// and Stabilize can be smaller than what the sort allocated, or even negative.
// Treat memory deltas as order-of-magnitude indicators for comparing
// algorithms, never as exact allocation counts.
type MemoryProbe interface {
	// Stabilize collects garbage and returns the baseline heap size in bytes.
	Stabilize() uint64

	// Current returns the heap size in bytes without forcing a collection.
	// Garbage created by the sort but not yet reclaimed is included.
	Current() uint64
}

// RuntimeProbe reads the live heap from runtime.MemStats.
type RuntimeProbe struct {
	// SkipGC makes Stabilize read the heap without collecting first.
	SkipGC bool
}

var _ MemoryProbe = RuntimeProbe{}

// Stabilize implements MemoryProbe. It runs two collections so objects freed
// by finalizers in the first one are gone before the baseline is read.
func (p RuntimeProbe) Stabilize() uint64 {
	if !p.SkipGC {
		runtime.GC()
		runtime.GC()
	}
	return heapAlloc()
}

// Current implements MemoryProbe.
func (p RuntimeProbe) Current() uint64 {
	return heapAlloc()
}

func heapAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
