// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// The sift primitives are the only code that touches values, forward
// and reverse together; every mutating operation reduces to a single
// call of one of them. Both work hole-style: rather than swapping v
// into place level by level, the displaced value at each level is
// moved one level (with its bimap entry repaired in place) and v and
// its handle are written exactly once, into the final slot.

// siftDown restores the heap property for the subtree rooted at pos,
// assuming the only possible violation is between v and that subtree.
// Positions beyond boundary are treated as vacated. At each level the
// child ordered first is promoted if it is ordered before v. Cost is
// O(log(boundary)).
func (h *Addressable[V]) siftDown(pos int, hd Handle, v V, boundary int) {
	for {
		c := 2 * pos
		if c > boundary {
			break
		}
		if r := c + 1; r <= boundary && h.less(h.values[r], h.values[c]) {
			c = r
		}
		if !h.less(h.values[c], v) {
			break
		}
		h.values[pos] = h.values[c]
		h.reverse[pos] = h.reverse[c]
		h.forward[h.reverse[c]] = pos
		pos = c
	}
	h.values[pos] = v
	h.reverse[pos] = hd
	h.forward[hd] = pos
}

// siftUp restores the heap property on the path from pos to the root,
// assuming the only possible violation is between v and its
// ancestors. Ancestors ordered after v are moved down a level until
// the root or an ancestor ordered before (or equal to) v is reached.
// Cost is O(log(pos)).
func (h *Addressable[V]) siftUp(pos int, hd Handle, v V) {
	for pos > 1 {
		p := pos / 2
		if !h.less(v, h.values[p]) {
			break
		}
		h.values[pos] = h.values[p]
		h.reverse[pos] = h.reverse[p]
		h.forward[h.reverse[p]] = pos
		pos = p
	}
	h.values[pos] = v
	h.reverse[pos] = hd
	h.forward[hd] = pos
}
