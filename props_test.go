package heapsort

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSortProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	genValues := gen.SliceOf(gen.IntRange(-1000, 1000))

	properties.Property("sorted output is ascending", prop.ForAll(
		func(values []int) bool {
			h := FromValues(values...)
			h.Sort()
			out := h.Values()
			for i := 1; i < len(out); i++ {
				if out[i-1] > out[i] {
					return false
				}
			}
			return true
		},
		genValues,
	))

	properties.Property("sorted output is a permutation of the input", prop.ForAll(
		func(values []int) bool {
			counts := make(map[int]int, len(values))
			for _, v := range values {
				counts[v]++
			}
			h := FromValues(values...)
			h.Sort()
			for _, v := range h.Values() {
				counts[v]--
			}
			for _, c := range counts {
				if c != 0 {
					return false
				}
			}
			return true
		},
		genValues,
	))

	properties.Property("build establishes the max-heap invariant", prop.ForAll(
		func(values []int) bool {
			h := FromValues(values...)
			h.Build()
			return h.Valid() && h.Len() == len(values)
		},
		genValues,
	))

	properties.Property("build is idempotent", prop.ForAll(
		func(values []int) bool {
			h := FromValues(values...)
			h.Build()
			once := append([]int{}, h.Values()...)
			h.Build()
			twice := h.Values()
			for i := range once {
				if once[i] != twice[i] {
					return false
				}
			}
			return true
		},
		genValues,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// inSubtree reports whether index j lies in the subtree rooted at root;
// every index in that subtree reaches root by repeated parent steps.
func inSubtree(j, root int) bool {
	for ; j >= root; j = parent(j) {
		if j == root {
			return true
		}
	}
	return false
}

func TestSiftDownLocality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("sift-down never touches elements outside its subtree", prop.ForAll(
		func(values []int, pick uint8, v int) bool {
			if len(values) == 0 {
				return true
			}
			h := FromValues(values...)
			h.Build()

			// corrupt one node; its children subtrees stay valid heaps,
			// which is exactly the sift-down precondition
			i := int(pick)%h.Len() + 1
			h.Values()[i-1] = v
			before := append([]int{}, h.Values()...)

			h.SiftDown(i)

			for j := 1; j <= h.Len(); j++ {
				if !inSubtree(j, i) && h.Values()[j-1] != before[j-1] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
		gen.UInt8(),
		gen.IntRange(-10000, 10000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
