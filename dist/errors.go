// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "errors"

// Errors reported by operations in this package. These are sentinel
// values; callers should test for them with errors.Is, since some
// operations wrap them with additional context.
var (
	// ErrZeroTotal is returned when a distribution with zero total
	// weight is normalized or converted. A distribution with no
	// mass cannot be rescaled to sum to anything.
	ErrZeroTotal = errors.New("total weight is zero")

	// ErrEmpty is returned by queries that have no meaning on an
	// empty collection, such as the maximum weight of or a random
	// draw from a distribution with no values.
	ErrEmpty = errors.New("collection is empty")

	// ErrKeyNotFound is returned by Remove when the value is not
	// present.
	ErrKeyNotFound = errors.New("value not found")

	// ErrOutOfRange is returned when a probability argument lies
	// outside [0, 1], or a percentile outside [0, 100].
	ErrOutOfRange = errors.New("argument out of range")
)
