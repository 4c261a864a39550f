// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A Rand is a source of uniform random variates in [0, 1). It is the
// only source of randomness used by this package; every operation that
// draws from a distribution takes one explicitly, so callers control
// seeding and reproducibility. *math/rand.Rand satisfies Rand.
type Rand interface {
	Float64() float64
}
