// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Less is the ordering capability consumed by Addressable. It reports
// whether a is ordered before b and must define a strict weak ordering
// (irreflexive, transitive, with transitive incomparability). The heap
// structure is undefined, though never a crash, for predicates that
// violate this. Less is a function type rather than an interface so
// that instantiated comparisons inline into the sift loops.
type Less[V any] func(a, b V) bool

// Ascending returns a Less ordering values smallest first, yielding a
// min-heap. For floating point types a NaN is ordered before every
// non-NaN value so that the predicate remains a strict weak ordering
// even in the presence of unorderable values.
func Ascending[V constraints.Ordered]() Less[V] {
	return cmp.Less[V]
}

// Descending returns a Less ordering values largest first, yielding a
// max-heap. As with Ascending, a NaN is ordered after every non-NaN
// value rather than being incomparable.
func Descending[V constraints.Ordered]() Less[V] {
	return func(a, b V) bool { return cmp.Less(b, a) }
}

// AscendingFast is Ascending without the NaN special case, ie. a raw
// < comparison. It is faster in the sift loops but the heap structure
// is undefined if a NaN is ever inserted.
func AscendingFast[V constraints.Ordered]() Less[V] {
	return func(a, b V) bool { return a < b }
}

// DescendingFast is Descending without the NaN special case.
func DescendingFast[V constraints.Ordered]() Less[V] {
	return func(a, b V) bool { return b < a }
}

// ReverseOf returns a Less with the sense of less inverted, turning a
// min-heap ordering into a max-heap ordering and vice versa.
func ReverseOf[V any](less Less[V]) Less[V] {
	return func(a, b V) bool { return less(b, a) }
}
