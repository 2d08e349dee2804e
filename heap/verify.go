// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"

	"cloudeng.io/errors"
)

// IsHeap reports whether the first n elements of values satisfy the
// heap property under less, ie. no element is ordered before its
// parent. The slice is a plain 0-based Go slice, unrelated to any
// Addressable instance; the check is purely structural, does not
// mutate and short-circuits on the first violation. O(n).
func IsHeap[V any](values []V, n int, less Less[V]) bool {
	if n > len(values) {
		n = len(values)
	}
	for p := 0; p < n/2; p++ {
		l := 2*p + 1
		if l < n && less(values[l], values[p]) {
			return false
		}
		if r := l + 1; r < n && less(values[r], values[p]) {
			return false
		}
	}
	return true
}

// Validate checks every structural invariant of the heap: the heap
// property for each parent/child pair, that the handle to position
// mapping and its inverse agree over the live range, and that the
// live count fits the backing storage. Unlike IsHeap it does not
// short-circuit; every violation found is reported in the returned
// error. A nil return means the heap is consistent.
//
// Validate exists for diagnostics and tests; the exported operations
// preserve all of these invariants.
func (h *Addressable[V]) Validate() error {
	errs := errors.M{}
	if h.count > len(h.values)-1 || h.count > len(h.reverse)-1 {
		errs.Append(fmt.Errorf("count %v exceeds storage %v/%v", h.count, len(h.values)-1, len(h.reverse)-1))
		return errs.Err()
	}
	for p := 2; p <= h.count; p++ {
		if h.less(h.values[p], h.values[p/2]) {
			errs.Append(fmt.Errorf("heap property violated: [%v] %v is ordered before its parent [%v] %v", p, h.values[p], p/2, h.values[p/2]))
		}
	}
	for p := 1; p <= h.count; p++ {
		hd := h.reverse[p]
		if hd < 1 || int(hd) >= len(h.forward) {
			errs.Append(fmt.Errorf("position %v refers to unissued handle %v", p, hd))
			continue
		}
		if h.forward[hd] != p {
			errs.Append(fmt.Errorf("bimap mismatch: position %v holds handle %v but handle %v maps to position %v", p, hd, hd, h.forward[hd]))
		}
	}
	live := 0
	for hd := 1; hd < len(h.forward); hd++ {
		p := h.forward[hd]
		if p == 0 {
			continue
		}
		live++
		if p < 0 || p > h.count {
			errs.Append(fmt.Errorf("handle %v maps to position %v outside the live range 1..%v", hd, p, h.count))
		}
	}
	if live != h.count {
		errs.Append(fmt.Errorf("%v live handles for %v live values", live, h.count))
	}
	return errs.Err()
}
