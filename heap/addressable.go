// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides an addressable binary heap: a binary-heap
// ordered dense array augmented with a stable handle for every value
// it holds. A handle keeps identifying its value no matter how many
// push and pop operations relocate that value within the array, so a
// caller can update or remove a value it inserted earlier in O(log n).
// This is the decrease-key/increase-key primitive required by
// shortest-path and event-scheduling algorithms.
//
// Values that compare equal have no guaranteed relative order; a
// sequence of operations may leave any two equal values in either
// arrangement and callers must not rely on insertion order between
// them.
//
// The package performs no synchronization and is not safe for
// concurrent use without external locking.
package heap

// Handle is a stable, opaque identifier for a value resident in an
// Addressable heap, assigned by Push or positionally by Heapify. It
// remains valid until the value it identifies is removed.
//
// Handle ids are drawn from a monotonic counter; retired ids are
// recycled, most recently retired first, by subsequent pushes. A
// retired id never silently resolves to another live value: lookups
// through it fail with ErrInvalidHandle until the id is explicitly
// reissued by a later Push. The zero Handle is never issued.
type Handle int

// Addressable is a binary heap over values of type V addressable by
// stable handles. Storage is 1-based with a dummy slot at index 0:
// position p has parent p/2 and children 2p and 2p+1. The handle to
// position mapping and its inverse are held in two plain int-indexed
// slices so that relocating a value during a sift costs two slice
// writes and no allocation.
type Addressable[V any] struct {
	less    Less[V]
	values  []V      // values[1..count] are live, slot 0 is the dummy.
	reverse []Handle // position -> handle, parallel to values.
	forward []int    // handle -> position, 0 marks a retired handle.
	free    []Handle // retired handles, reissued LIFO.
	count   int
	exact   bool
}

// New returns an empty addressable heap ordered by less.
func New[V any](less Less[V], opts ...Option[V]) *Addressable[V] {
	var o options[V]
	o.sliceCap = 1
	for _, fn := range opts {
		fn(&o)
	}
	h := &Addressable[V]{
		less:    less,
		values:  make([]V, 1, o.sliceCap+1),
		reverse: make([]Handle, 1, o.sliceCap+1),
		forward: make([]int, 1),
		exact:   o.exactFit,
	}
	if len(o.values) > 0 {
		h.init(o.values)
	}
	if h.exact {
		h.Trim()
	}
	return h
}

// Heapify returns a heap built from values in O(n) using Floyd's
// bottom-up construction rather than n pushes. Handles are assigned
// positionally: values[i] receives Handle(i+1). The input slice is
// copied, not retained.
func Heapify[V any](values []V, less Less[V], opts ...Option[V]) *Addressable[V] {
	return New(less, append(opts, WithValues(values))...)
}

func (h *Addressable[V]) init(values []V) {
	n := len(values)
	h.values = append(h.values, values...)
	h.reverse = append(h.reverse, make([]Handle, n)...)
	h.forward = append(h.forward, make([]int, n)...)
	for p := 1; p <= n; p++ {
		h.reverse[p] = Handle(p)
		h.forward[p] = p
	}
	h.count = n
	for p := n / 2; p >= 1; p-- {
		h.siftDown(p, h.reverse[p], h.values[p], n)
	}
}

// Len returns the number of live values in the heap.
func (h *Addressable[V]) Len() int { return h.count }

// IsEmpty reports whether the heap holds no values.
func (h *Addressable[V]) IsEmpty() bool { return h.count == 0 }

// Cap returns the number of values the backing storage can hold
// without reallocating. Under the exact-fit policy Cap always equals
// Len.
func (h *Addressable[V]) Cap() int { return cap(h.values) - 1 }

// Reserve grows the backing storage to hold at least n values without
// changing the contents of the heap. It fails with ErrOutOfRange if n
// is negative.
func (h *Addressable[V]) Reserve(n int) error {
	if n < 0 {
		return ErrOutOfRange
	}
	if n <= h.Cap() {
		return nil
	}
	values := make([]V, h.count+1, n+1)
	copy(values, h.values)
	h.values = values
	reverse := make([]Handle, h.count+1, n+1)
	copy(reverse, h.reverse)
	h.reverse = reverse
	return nil
}

// Trim reallocates the backing storage to exactly the live size,
// releasing the slack capacity accumulated by pops and removals under
// the default amortized policy.
func (h *Addressable[V]) Trim() {
	if cap(h.values) == h.count+1 && cap(h.reverse) == h.count+1 {
		return
	}
	values := make([]V, h.count+1)
	copy(values, h.values)
	h.values = values
	reverse := make([]Handle, h.count+1)
	copy(reverse, h.reverse)
	h.reverse = reverse
}

// Clear removes every value and retires every live handle. The handle
// counter is reset, so ids retired here may be reissued by subsequent
// pushes.
func (h *Addressable[V]) Clear() {
	clear(h.values[1:])
	clear(h.reverse[1:])
	h.values = h.values[:1]
	h.reverse = h.reverse[:1]
	h.forward = h.forward[:1]
	h.free = h.free[:0]
	h.count = 0
	if h.exact {
		h.Trim()
	}
}

// Push inserts v and returns the handle identifying it for later
// update or removal. O(log n) worst case.
func (h *Addressable[V]) Push(v V) Handle {
	hd := h.alloc()
	h.values = append(h.values, v)
	h.reverse = append(h.reverse, hd)
	h.count++
	h.siftUp(h.count, hd, v)
	if h.exact {
		h.Trim()
	}
	return hd
}

// Peek returns the root value without removing it. It fails with
// ErrEmpty on an empty heap.
func (h *Addressable[V]) Peek() (V, error) {
	if h.count == 0 {
		var zero V
		return zero, ErrEmpty
	}
	return h.values[1], nil
}

// Pop removes and returns the root value, retiring its handle. It
// fails with ErrEmpty on an empty heap. O(log n).
func (h *Addressable[V]) Pop() (V, error) {
	if h.count == 0 {
		var zero V
		return zero, ErrEmpty
	}
	root := h.values[1]
	h.retire(h.reverse[1])
	n := h.count
	if n > 1 {
		h.siftDown(1, h.reverse[n], h.values[n], n-1)
	}
	h.shrink(n)
	return root, nil
}

// Value returns the value at position pos, 1 being the root. It fails
// with ErrOutOfRange if pos is outside 1..Len().
func (h *Addressable[V]) Value(pos int) (V, error) {
	if pos < 1 || pos > h.count {
		var zero V
		return zero, ErrOutOfRange
	}
	return h.values[pos], nil
}

// Position returns the current position of the value identified by
// hd, an O(1) lookup. It fails with ErrInvalidHandle if hd was never
// issued or has been retired.
func (h *Addressable[V]) Position(hd Handle) (int, error) {
	if hd < 1 || int(hd) >= len(h.forward) || h.forward[hd] == 0 {
		return 0, ErrInvalidHandle
	}
	return h.forward[hd], nil
}

// ValueOf returns the value currently identified by hd.
func (h *Addressable[V]) ValueOf(hd Handle) (V, error) {
	pos, err := h.Position(hd)
	if err != nil {
		var zero V
		return zero, err
	}
	return h.values[pos], nil
}

// Update replaces the value at position pos, keeping its handle. A
// single comparison against the displaced value picks the side of the
// tree that may now be violated: the subtree below if the displaced
// value was ordered first, the ancestors otherwise. Exactly one
// repair pass runs; the other side is left untouched. O(log n) worst
// case, O(1) when the replacement violates neither direction.
func (h *Addressable[V]) Update(pos int, v V) error {
	if pos < 1 || pos > h.count {
		return ErrOutOfRange
	}
	hd := h.reverse[pos]
	if h.less(h.values[pos], v) {
		h.siftDown(pos, hd, v, h.count)
	} else {
		h.siftUp(pos, hd, v)
	}
	return nil
}

// UpdateRoot replaces the root value, keeping its handle. The root
// has no ancestors, so the dispatch in Update is skipped and only the
// subtree below is repaired. It fails with ErrEmpty on an empty heap.
func (h *Addressable[V]) UpdateRoot(v V) error {
	if h.count == 0 {
		return ErrEmpty
	}
	h.siftDown(1, h.reverse[1], v, h.count)
	return nil
}

// UpdateHandle replaces the value identified by hd wherever it
// currently resides. This is the decrease-key (or increase-key)
// operation.
func (h *Addressable[V]) UpdateHandle(hd Handle, v V) error {
	pos, err := h.Position(hd)
	if err != nil {
		return err
	}
	return h.Update(pos, v)
}

// Remove deletes and returns the value at position pos, retiring its
// handle. The vacated slot is refilled with the last live value,
// which is then sifted in the one direction the Update dispatch
// selects. O(log n).
func (h *Addressable[V]) Remove(pos int) (V, error) {
	if pos < 1 || pos > h.count {
		var zero V
		return zero, ErrOutOfRange
	}
	old := h.values[pos]
	h.retire(h.reverse[pos])
	n := h.count
	if pos < n {
		last, lastH := h.values[n], h.reverse[n]
		if h.less(old, last) {
			h.siftDown(pos, lastH, last, n-1)
		} else {
			h.siftUp(pos, lastH, last)
		}
	}
	h.shrink(n)
	return old, nil
}

// RemoveHandle deletes and returns the value identified by hd,
// retiring hd.
func (h *Addressable[V]) RemoveHandle(hd Handle) (V, error) {
	pos, err := h.Position(hd)
	if err != nil {
		var zero V
		return zero, err
	}
	return h.Remove(pos)
}

func (h *Addressable[V]) alloc() Handle {
	if n := len(h.free); n > 0 {
		hd := h.free[n-1]
		h.free = h.free[:n-1]
		return hd
	}
	h.forward = append(h.forward, 0)
	return Handle(len(h.forward) - 1)
}

func (h *Addressable[V]) retire(hd Handle) {
	h.forward[hd] = 0
	h.free = append(h.free, hd)
}

// shrink drops the vacated last slot, n being the live count before
// the removal.
func (h *Addressable[V]) shrink(n int) {
	clear(h.values[n:])
	h.values = h.values[:n]
	h.reverse[n] = 0
	h.reverse = h.reverse[:n]
	h.count = n - 1
	if h.exact {
		h.Trim()
	}
}
