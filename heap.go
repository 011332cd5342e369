package heapsort

// Heap is an array-backed max-heap of ints.
//
// storage uses 1-based indexing: index 0 holds an unused sentinel so the
// parent/child arithmetic stays uniform. The live region is the prefix
// storage[1..live]; elements past it are either not yet declared live or
// already sorted out by Sort.
//
// A Heap is not safe for concurrent use. Distinct instances share no state
// and may be used from distinct goroutines.
type Heap struct {
	storage []int
	live    int // 0 <= live <= Cap()
}

// value written at index 0 by Build; never read
const sentinel = -1

func parent(i int) int { return i >> 1 }
func left(i int) int   { return i << 1 }
func right(i int) int  { return i<<1 | 1 }

// New returns an empty Heap able to hold capacity elements. The backing
// array has capacity+1 slots, the extra one being the sentinel.
func New(capacity int) *Heap {
	return &Heap{storage: make([]int, capacity+1)}
}

// Wrap returns a Heap over caller-allocated storage. storage[0] is reserved
// for the sentinel and the heap capacity is len(storage)-1; all capacity
// elements start live. The slice is not copied: heap operations mutate it in
// place, and the caller must not touch it concurrently.
//
// Wrap panics if storage has no room for the sentinel slot.
func Wrap(storage []int) *Heap {
	if len(storage) == 0 {
		panic("heapsort: storage has no room for the sentinel slot")
	}
	return &Heap{storage: storage, live: len(storage) - 1}
}

// FromValues copies values into fresh 1-based storage and returns a Heap
// with all of them live. Build (or Sort) must still be called before the
// max-heap invariant holds.
func FromValues(values ...int) *Heap {
	h := New(len(values))
	copy(h.storage[1:], values)
	h.live = len(values)
	return h
}

// Len returns the number of live elements.
func (h *Heap) Len() int { return h.live }

// Cap returns the fixed capacity of the heap.
func (h *Heap) Cap() int { return len(h.storage) - 1 }

// Max returns the heap root, which after Build holds the maximum of the
// live region. Panics on an empty heap.
func (h *Heap) Max() int {
	if h.live == 0 {
		panic("heapsort: Max on empty heap")
	}
	return h.storage[1]
}

// Values returns the element region storage[1..capacity] of the backing
// array, without the sentinel. The returned slice aliases the heap storage.
func (h *Heap) Values() []int {
	return h.storage[1:]
}

// Valid reports whether the live region satisfies the max-heap property,
// that is storage[i/2] >= storage[i] for every live index i > 1.
func (h *Heap) Valid() bool {
	for i := 2; i <= h.live; i++ {
		if h.storage[parent(i)] < h.storage[i] {
			return false
		}
	}
	return true
}
