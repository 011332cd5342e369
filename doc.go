// Package heapsort implements in-place heapsort over arrays of integers.
//
// The construction is the classical textbook one: Build turns an arbitrary
// array into a max-heap in linear time, Sort then repeatedly swaps the heap
// root with the last live element and sifts the new root down, for an
// O(n log n) total. All operations mutate the backing array in place; the
// only auxiliary state is the live-element counter.
//
// The backing array is 1-based with a sentinel slot at index 0, so that for
// an index i the parent is i/2 and the children are 2i and 2i+1.
package heapsort

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
