// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Weight is the numeric weight attached to a value: an integer
// frequency in a Hist, or a floating-point probability mass in a PMF.
type Weight interface {
	~int64 | ~float64
}

// Real is the constraint satisfied by value types that can be treated
// as real numbers. Moment computations (Mean, Variance, CDFMean) are
// only defined for distributions over Real values; distributions keyed
// by strings support everything else.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// A WeightedMap maps values of an ordered type to numeric weights. It
// is the backing store shared by Hist and PMF, which embed it. An
// absent value reads as weight zero.
//
// The zero value of a WeightedMap is an empty map ready to use.
type WeightedMap[V cmp.Ordered, W Weight] struct {
	name string
	m    map[V]W
}

func (w *WeightedMap[V, W]) ensure() {
	if w.m == nil {
		w.m = make(map[V]W)
	}
}

// Name returns the display name of the map. The name is a label for
// the caller's benefit; no operation depends on it.
func (w *WeightedMap[V, W]) Name() string { return w.name }

// SetName sets the display name of the map.
func (w *WeightedMap[V, W]) SetName(name string) { w.name = name }

// Len returns the number of distinct values.
func (w *WeightedMap[V, W]) Len() int { return len(w.m) }

// Set assigns weight to x, overwriting any previous weight.
func (w *WeightedMap[V, W]) Set(x V, weight W) {
	w.ensure()
	w.m[x] = weight
}

// Increment adds delta to the weight of x, treating an absent x as
// weight zero. Tallying a sample is Increment(x, 1).
func (w *WeightedMap[V, W]) Increment(x V, delta W) {
	w.ensure()
	w.m[x] += delta
}

// Scale multiplies the weight of x by factor, treating an absent x as
// weight zero (which it leaves at zero, as an entry).
func (w *WeightedMap[V, W]) Scale(x V, factor W) {
	w.ensure()
	w.m[x] *= factor
}

// Remove deletes x from the map. It returns an error wrapping
// ErrKeyNotFound if x is not present.
func (w *WeightedMap[V, W]) Remove(x V) error {
	if _, ok := w.m[x]; !ok {
		return fmt.Errorf("remove %v: %w", x, ErrKeyNotFound)
	}
	delete(w.m, x)
	return nil
}

// Total returns the sum of all weights.
func (w *WeightedMap[V, W]) Total() W {
	var total W
	for _, wt := range w.m {
		total += wt
	}
	return total
}

// MaxWeight returns the largest weight in the map. It returns
// ErrEmpty if the map has no values.
func (w *WeightedMap[V, W]) MaxWeight() (W, error) {
	var max W
	if len(w.m) == 0 {
		return max, ErrEmpty
	}
	first := true
	for _, wt := range w.m {
		if first || wt > max {
			max = wt
			first = false
		}
	}
	return max, nil
}

// Values returns the values in ascending order.
func (w *WeightedMap[V, W]) Values() []V {
	xs := make([]V, 0, len(w.m))
	for x := range w.m {
		xs = append(xs, x)
	}
	slices.Sort(xs)
	return xs
}

// Render returns the values in ascending order and their weights in
// the same order, as parallel slices suitable for plotting.
func (w *WeightedMap[V, W]) Render() ([]V, []W) {
	xs := w.Values()
	ws := make([]W, len(xs))
	for i, x := range xs {
		ws[i] = w.m[x]
	}
	return xs, ws
}

// weight returns the weight of x, or zero if absent.
func (w *WeightedMap[V, W]) weight(x V) W { return w.m[x] }

// clone returns an independent copy of the map and its name.
func (w *WeightedMap[V, W]) clone() WeightedMap[V, W] {
	return WeightedMap[V, W]{name: w.name, m: maps.Clone(w.m)}
}
