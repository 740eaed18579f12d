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

package sorts

import (
	"math"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func randomInt32s(rng *rand.Rand, n int, span int32) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rng.Int31n(span) - span/2
	}
	return data
}

// TestSortTrivial tests that every algorithm leaves empty and single-element input alone.
func TestSortTrivial(t *testing.T) {
	for _, alg := range All() {
		t.Run(alg.Name, func(t *testing.T) {
			var empty []int32
			alg.Sort(empty)
			if len(empty) != 0 {
				t.Errorf("%s(empty) = %v, want []", alg.Name, empty)
			}

			zero := []int32{}
			alg.Sort(zero)
			if len(zero) != 0 {
				t.Errorf("%s([]) = %v, want []", alg.Name, zero)
			}

			single := []int32{7}
			alg.Sort(single)
			if diff := cmp.Diff([]int32{7}, single); diff != "" {
				t.Errorf("%s([7]) mismatch (-want +got):\n%s", alg.Name, diff)
			}
		})
	}
}

func TestSortScenario(t *testing.T) {
	want := []int32{1, 1, 2, 3, 3, 4, 5, 5, 6, 9}
	for _, alg := range All() {
		t.Run(alg.Name, func(t *testing.T) {
			data := []int32{5, 3, 3, 1, 4, 1, 5, 9, 2, 6}
			alg.Sort(data)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortNegatives(t *testing.T) {
	want := []int32{-100, -5, -1, 0, 2, 3}
	for _, alg := range All() {
		t.Run(alg.Name, func(t *testing.T) {
			data := []int32{-5, 3, -1, 0, 2, -100}
			alg.Sort(data)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortExtremes(t *testing.T) {
	input := []int32{0, math.MaxInt32, -1, math.MinInt32, 1, math.MinInt32 + 1, math.MaxInt32 - 1, 0}
	want := []int32{math.MinInt32, math.MinInt32 + 1, -1, 0, 0, 1, math.MaxInt32 - 1, math.MaxInt32}
	for _, alg := range All() {
		t.Run(alg.Name, func(t *testing.T) {
			data := slices.Clone(input)
			alg.Sort(data)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortShapes(t *testing.T) {
	const n = 1000
	shapes := map[string]func() []int32{
		"ascending": func() []int32 {
			data := make([]int32, n)
			for i := range data {
				data[i] = int32(i)
			}
			return data
		},
		"descending": func() []int32 {
			data := make([]int32, n)
			for i := range data {
				data[i] = int32(n - i)
			}
			return data
		},
		"all_equal": func() []int32 {
			data := make([]int32, n)
			for i := range data {
				data[i] = 42
			}
			return data
		},
		"two_values": func() []int32 {
			data := make([]int32, n)
			for i := range data {
				data[i] = int32(i % 2)
			}
			return data
		},
		"organ_pipe": func() []int32 {
			data := make([]int32, n)
			for i := range data {
				data[i] = int32(min(i, n-i))
			}
			return data
		},
	}

	for name, gen := range shapes {
		for _, alg := range All() {
			t.Run(name+"/"+alg.Name, func(t *testing.T) {
				data := gen()
				want := slices.Clone(data)
				slices.Sort(want)
				alg.Sort(data)
				if diff := cmp.Diff(want, data); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

// TestSortMatchesStdlib checks order, permutation and cross-algorithm agreement
// against slices.Sort over random input.
func TestSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000, 10000}
	for _, n := range sizes {
		ref := randomInt32s(rng, n, 1<<30)
		want := slices.Clone(ref)
		slices.Sort(want)

		for _, alg := range All() {
			data := slices.Clone(ref)
			alg.Sort(data)
			if len(data) != n {
				t.Fatalf("%s(n=%d) changed length to %d", alg.Name, n, len(data))
			}
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("%s(n=%d) mismatch (-want +got):\n%s", alg.Name, n, diff)
			}
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ref := randomInt32s(rng, 5000, 200)
	for _, alg := range All() {
		once := slices.Clone(ref)
		alg.Sort(once)
		twice := slices.Clone(once)
		alg.Sort(twice)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("%s not idempotent (-once +twice):\n%s", alg.Name, diff)
		}
	}
}

func TestQuickSortSortedInputTerminates(t *testing.T) {
	n := 1000
	if !testing.Short() {
		n = 1_000_000
	}
	for _, name := range []string{"ascending", "descending"} {
		data := make([]int32, n)
		for i := range data {
			if name == "ascending" {
				data[i] = int32(i)
			} else {
				data[i] = int32(n - i)
			}
		}
		start := time.Now()
		Quick(data)
		if elapsed := time.Since(start); elapsed > 5*time.Second {
			t.Errorf("QuickSort(%s, n=%d) took %v", name, n, elapsed)
		}
		if !IsSorted(data) {
			t.Errorf("QuickSort(%s, n=%d) produced unsorted result", name, n)
		}
	}
}

func TestQuickSortSubRange(t *testing.T) {
	data := []int32{9, 8, 5, 3, 4, 1, 0, -1}
	QuickSort(data, 2, 5)
	want := []int32{9, 8, 1, 3, 4, 5, 0, -1}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// left >= right is a no-op.
	QuickSort(data, 4, 4)
	QuickSort(data, 5, 2)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("no-op range changed data (-want +got):\n%s", diff)
	}
}

func TestMergeSortSubRange(t *testing.T) {
	data := []int32{9, 8, 5, 3, 4, 1, 0, -1}
	MergeSort(data, 2, 5)
	want := []int32{9, 8, 1, 3, 4, 5, 0, -1}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestHoarePartition(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 200; trial++ {
		data := randomInt32s(rng, 2+rng.Intn(60), 20)
		left, right := 0, len(data)-1
		pivot := data[(left+right)/2]
		p := hoarePartition(data, left, right)
		if p < left || p >= right {
			t.Fatalf("partition index %d outside [%d, %d)", p, left, right)
		}
		for i := left; i <= p; i++ {
			if data[i] > pivot {
				t.Fatalf("data[%d]=%d should be <= pivot %d", i, data[i], pivot)
			}
		}
		for i := p + 1; i <= right; i++ {
			if data[i] < pivot {
				t.Fatalf("data[%d]=%d should be >= pivot %d", i, data[i], pivot)
			}
		}
	}
}

type tagged struct {
	key int32
	tag int
}

func TestMergeSortStable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	data := make([]tagged, 2000)
	for i := range data {
		data[i] = tagged{key: rng.Int31n(10), tag: i}
	}

	mergeSortFunc(data, 0, len(data)-1, func(a, b tagged) bool { return a.key <= b.key })

	for i := 1; i < len(data); i++ {
		prev, cur := data[i-1], data[i]
		if prev.key > cur.key {
			t.Fatalf("not sorted at %d: %v > %v", i, prev, cur)
		}
		if prev.key == cur.key && prev.tag > cur.tag {
			t.Fatalf("equal keys reordered at %d: %v before %v", i, prev, cur)
		}
	}
}

func TestHeapify(t *testing.T) {
	data := []int32{1, 9, 8, 7, 6, 5, 4}
	heapify(data, len(data), 0)
	for i := range data {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(data) && data[c] > data[i] {
				t.Errorf("heap violated: data[%d]=%d < child data[%d]=%d", i, data[i], c, data[c])
			}
		}
	}
	if diff := cmp.Diff([]int32{9, 7, 8, 1, 6, 5, 4}, data); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{RadixSortName, QuickSortName, MergeSortName, HeapSortName} {
		alg, ok := Lookup(name)
		if !ok || alg.Name != name || alg.Sort == nil {
			t.Errorf("Lookup(%q) = %+v, %v", name, alg, ok)
		}
	}
	if _, ok := Lookup("BubbleSort"); ok {
		t.Errorf("Lookup(BubbleSort) should fail")
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []int32
		want bool
	}{
		{"empty", []int32{}, true},
		{"single", []int32{1}, true},
		{"sorted", []int32{1, 2, 3, 4, 5}, true},
		{"unsorted", []int32{1, 3, 2, 4, 5}, false},
		{"reverse", []int32{5, 4, 3, 2, 1}, false},
		{"equal", []int32{3, 3, 3, 3}, true},
		{"negatives", []int32{-3, -1, 0, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSorted(tt.data); got != tt.want {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

// TestSortAllocs pins the scratch-space shape of each algorithm: RadixSort
// allocates its buffer once, QuickSort and HeapSort work in place, and
// MergeSort allocates both halves at every merge.
func TestSortAllocs(t *testing.T) {
	const n = 4096
	ref := randomInt32s(rand.New(rand.NewSource(3)), n, 1<<20)
	work := make([]int32, n)

	tests := []struct {
		name string
		fn   Func
		want float64
	}{
		{RadixSortName, RadixSort, 1},
		{QuickSortName, Quick, 0},
		{MergeSortName, Merge, 2 * (n - 1)},
		{HeapSortName, HeapSort, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocs := testing.AllocsPerRun(10, func() {
				copy(work, ref)
				tt.fn(work)
			})
			if allocs != tt.want {
				t.Errorf("%s allocs/run = %v, want %v", tt.name, allocs, tt.want)
			}
		})
	}
}
