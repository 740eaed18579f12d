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

// MergeSort sorts data[left:right+1] in place with a stable top-down merge
// sort. Each merge copies both halves into fresh temporaries.
func MergeSort(data []int32, left, right int) {
	mergeSortFunc(data, left, right, lessEqualInt32)
}

func lessEqualInt32(a, b int32) bool { return a <= b }

// mergeSortFunc is MergeSort over any element type ordered by le.
// When le(a, b) holds for a from the left run, a is taken first, which is what
// makes the sort stable.
func mergeSortFunc[E any](data []E, left, right int, le func(a, b E) bool) {
	if left >= right {
		return
	}
	mid := (left + right) / 2
	mergeSortFunc(data, left, mid, le)
	mergeSortFunc(data, mid+1, right, le)
	mergeRuns(data, left, mid, right, le)
}

func mergeRuns[E any](data []E, left, mid, right int, le func(a, b E) bool) {
	lo := make([]E, mid-left+1)
	hi := make([]E, right-mid)
	copy(lo, data[left:mid+1])
	copy(hi, data[mid+1:right+1])

	p, q, k := 0, 0, left
	for p < len(lo) && q < len(hi) {
		if le(lo[p], hi[q]) {
			data[k] = lo[p]
			p++
		} else {
			data[k] = hi[q]
			q++
		}
		k++
	}
	k += copy(data[k:], lo[p:])
	copy(data[k:], hi[q:])
}
