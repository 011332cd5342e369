package heapsort

import "fmt"

// SiftDown restores the max-heap property for the subtree rooted at i,
// assuming the subtrees rooted at its children already satisfy it. The
// out-of-place element descends one level per step, so the cost is bounded
// by the height of the subtree, i.e. O(log n) from the root.
//
// i must satisfy 1 <= i <= Len(); SiftDown panics otherwise. No element
// outside the subtree rooted at i is read or written.
func (h *Heap) SiftDown(i int) {
	if i < 1 || i > h.live {
		panic(fmt.Sprintf("heapsort: sift index %d outside live range [1, %d]", i, h.live))
	}
	for {
		l, r := left(i), right(i)
		largest := i
		if l <= h.live && h.storage[l] > h.storage[largest] {
			largest = l
		}
		if r <= h.live && h.storage[r] > h.storage[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		h.storage[i], h.storage[largest] = h.storage[largest], h.storage[i]
		// only the subtree the displaced element landed in may now violate
		// the invariant
		i = largest
	}
}
