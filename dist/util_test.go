// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

var _ Rand = (*rand.Rand)(nil)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// fixedRand replays a fixed sequence of variates, for deterministic
// draw tests.
type fixedRand struct {
	vals []float64
	i    int
}

func (r *fixedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}
