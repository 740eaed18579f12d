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

// Func sorts data in place into non-decreasing order.
type Func func(data []int32)

// Algorithm names as they appear in the result log.
const (
	RadixSortName = "RadixSort"
	QuickSortName = "QuickSort"
	MergeSortName = "MergeSort"
	HeapSortName  = "HeapSort"
)

// Algorithm pairs a sort function with the name it is reported under.
type Algorithm struct {
	Name string
	Sort Func
}

// All returns the four algorithms in reporting order.
func All() []Algorithm {
	return []Algorithm{
		{Name: RadixSortName, Sort: RadixSort},
		{Name: QuickSortName, Sort: Quick},
		{Name: MergeSortName, Sort: Merge},
		{Name: HeapSortName, Sort: HeapSort},
	}
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, bool) {
	for _, alg := range All() {
		if alg.Name == name {
			return alg, true
		}
	}
	return Algorithm{}, false
}

// Quick sorts the whole of data with QuickSort.
func Quick(data []int32) {
	QuickSort(data, 0, len(data)-1)
}

// Merge sorts the whole of data with MergeSort.
func Merge(data []int32) {
	MergeSort(data, 0, len(data)-1)
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int32) bool {
	for i := 0; i < len(data)-1; i++ {
		if data[i] > data[i+1] {
			return false
		}
	}
	return true
}
