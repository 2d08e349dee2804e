// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cloudeng.io/errors"

var (
	// ErrEmpty is returned by operations that require at least one
	// live value, such as Pop, Peek and UpdateRoot.
	ErrEmpty = errors.New("heap: empty")

	// ErrOutOfRange is returned for a position outside the live range
	// 1..Len(), or a size argument that is negative.
	ErrOutOfRange = errors.New("heap: position out of range")

	// ErrInvalidHandle is returned for a handle that was never issued
	// or whose value has since been removed.
	ErrInvalidHandle = errors.New("heap: invalid handle")
)
