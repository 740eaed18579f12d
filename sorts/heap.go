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

// HeapSort sorts data in place with a binary max-heap. It uses no auxiliary
// memory.
func HeapSort(data []int32) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		heapify(data, n, i)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		heapify(data, i, 0)
	}
}

// heapify sifts data[root] down within the first heapSize elements.
func heapify(data []int32, heapSize, root int) {
	for {
		largest := root
		left := 2*root + 1
		right := 2*root + 2

		if left < heapSize && data[left] > data[largest] {
			largest = left
		}
		if right < heapSize && data[right] > data[largest] {
			largest = right
		}

		if largest == root {
			return
		}

		data[root], data[largest] = data[largest], data[root]
		root = largest
	}
}
