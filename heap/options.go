// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[V any] struct {
	sliceCap int
	exactFit bool
	values   []V
}

// Option represents the options that can be passed to New and Heapify.
type Option[V any] func(*options[V])

// WithSliceCap sets the initial capacity of the backing slices.
func WithSliceCap[V any](n int) Option[V] {
	return func(o *options[V]) {
		o.sliceCap = n
	}
}

// WithValues sets the initial contents of the heap; they are
// heapified in O(n) during construction with handles assigned
// positionally, exactly as by Heapify. The slice is copied.
func WithValues[V any](values []V) Option[V] {
	return func(o *options[V]) {
		o.values = values
	}
}

// WithExactFit selects the exact-fit storage policy: the backing
// slices are reallocated to exactly the live size after every
// mutation, so Cap always equals Len. The default amortized policy
// lets capacity exceed the live size, with pops and removals only
// decrementing the count, and releases slack storage only on Trim.
// The two policies differ solely in Cap and allocation behavior.
func WithExactFit[V any]() Option[V] {
	return func(o *options[V]) {
		o.exactFit = true
	}
}
