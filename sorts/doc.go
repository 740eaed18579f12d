// Package sorts provides the four int32 sorting algorithms measured by
// sortbench: bit-plane radix sort, Hoare quicksort, top-down mergesort and
// in-place heapsort.
//
// # Algorithms
//
//   - RadixSort: 32 stable bit-plane partition passes sharing one scratch
//     buffer. Cost is O(n·32) regardless of value distribution. Negative
//     values are handled by flipping the partition on the sign-bit pass.
//   - QuickSort: Hoare partitioning around the middle element of the range.
//     Deterministic, so adversarial orderings are measurable rather than hidden.
//   - MergeSort: top-down and stable; every merge allocates its own temporaries.
//   - HeapSort: binary max-heap, O(1) auxiliary space.
//
// # Example Usage
//
//	import sorts "github.com/ajroetker/go-sortbench/sorts"
//
//	func Process(data []int32) {
//	    sorts.RadixSort(data) // in-place ascending sort
//	}
//
//	func SortAll(data []int32) {
//	    for _, alg := range sorts.All() {
//	        work := slices.Clone(data)
//	        alg.Sort(work)
//	    }
//	}
//
// Every sort is a no-op on empty and single-element input and never changes
// the length of the slice it is given.
package sorts
