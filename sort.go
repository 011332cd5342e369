package heapsort

import (
	"time"

	"github.com/heaplab/heapsort/debug"
	"github.com/heaplab/heapsort/logger"
)

// Build turns arbitrary storage contents into a valid max-heap in place,
// declaring all capacity elements live and writing the sentinel.
//
// Internal nodes (indices n/2 down to 1) each get one sift-down pass;
// leaves are single-element heaps already. The bottom-up order guarantees
// that both children subtrees of a node are valid by the time the node is
// processed. Total work is O(n) despite the n/2 sift-down calls: nodes get
// shallower as they get more numerous. Calling Build on an already valid
// heap is redundant but harmless.
func (h *Heap) Build() {
	h.live = h.Cap()
	h.storage[0] = sentinel
	for i := h.live >> 1; i >= 1; i-- {
		h.SiftDown(i)
	}
	if debug.Debug && !h.Valid() {
		panic("heapsort: max-heap invariant broken after Build\n" + debug.Stack())
	}
}

// Sort reorders the element region into ascending order in place.
//
// After Build the maximum sits at the root; swapping it with the last live
// element parks it in its final position, and shrinking the live region by
// one excludes it from the sift that follows. The live counter must be
// decremented after the swap and before the sift: the sift has to operate
// on the shrunken region only. n extractions at O(log n) each give the
// O(n log n) total.
//
// Terminal state: Values() ascending, Len() == 0.
func (h *Heap) Sort() {
	log := logger.Logger()
	start := time.Now()

	h.Build()
	for h.live > 1 {
		h.storage[1], h.storage[h.live] = h.storage[h.live], h.storage[1]
		h.live--
		h.SiftDown(1)
	}
	// the last element is already in place; the heap is fully drained
	h.live = 0

	log.Debug().Int("n", h.Cap()).Dur("took", time.Since(start)).Msg("heapsort done")
}

// Sort sorts a plain 0-based slice of ints in ascending order, in place,
// using heapsort. It allocates one sentinel-prefixed copy of values.
func Sort(values []int) {
	h := FromValues(values...)
	h.Sort()
	copy(values, h.Values())
}
