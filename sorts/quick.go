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

// QuickSort sorts data[left:right+1] in place using Hoare partitioning with
// the middle element of the range as pivot.
//
// After partitioning at p the halves are [left, p] and [p+1, right]; p itself
// belongs to the left half. The smaller half is sorted recursively and the
// larger one iteratively, which keeps stack depth logarithmic without changing
// the result.
func QuickSort(data []int32, left, right int) {
	if len(data) < 2 {
		return
	}
	for left < right {
		p := hoarePartition(data, left, right)
		if p-left < right-p {
			QuickSort(data, left, p)
			left = p + 1
		} else {
			QuickSort(data, p+1, right)
			right = p
		}
	}
}

// hoarePartition returns j such that every element of data[left:j+1] is
// <= pivot and every element of data[j+1:right+1] is >= pivot, with
// left <= j < right.
func hoarePartition(data []int32, left, right int) int {
	pivot := data[(left+right)/2]
	i := left - 1
	j := right + 1

	for {
		for {
			i++
			if data[i] >= pivot {
				break
			}
		}
		for {
			j--
			if data[j] <= pivot {
				break
			}
		}
		if i >= j {
			return j
		}
		data[i], data[j] = data[j], data[i]
	}
}
