// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap //nolint:revive // intentional shadowing

import "testing"

func (h *Addressable[V]) Verify(t *testing.T) {
	t.Helper()
	if err := h.Validate(); err != nil {
		t.Errorf("heap inconsistent: %v", err)
	}
}

// Live returns a copy of the live value range in position order, for
// tests that need to inspect placement directly.
func (h *Addressable[V]) Live() []V {
	live := make([]V, h.count)
	copy(live, h.values[1:h.count+1])
	return live
}

// FreeListLen reports the number of retired handles awaiting reuse.
func (h *Addressable[V]) FreeListLen() int {
	return len(h.free)
}
