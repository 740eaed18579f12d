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

// RadixSort sorts data in place with 32 stable bit-plane passes.
//
// Pass k (shift = 31-k) moves the values whose bit k is set behind the values
// whose bit k is clear, keeping relative order inside both groups. Shifting a
// value left by shift puts bit k in the sign position, so the test is a plain
// sign check. The final pass (shift 0) looks at the sign bit itself, where a
// set bit means a smaller value, so the keep/move decision is inverted there.
//
// A single scratch buffer of len(data) is shared by all passes.
func RadixSort(data []int32) {
	n := len(data)
	if n <= 1 {
		return
	}

	tmp := make([]int32, n)
	for shift := 31; shift >= 0; shift-- {
		j := 0
		for i := 0; i < n; i++ {
			keep := data[i]<<shift >= 0
			if shift == 0 {
				keep = !keep
			}
			if keep {
				data[i-j] = data[i]
			} else {
				tmp[j] = data[i]
				j++
			}
		}
		copy(data[n-j:], tmp[:j])
	}
}
