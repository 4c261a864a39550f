// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "cmp"

// A Hist is a histogram: a map from values to integer frequencies.
//
// The zero value of a Hist is an empty histogram ready to use.
type Hist[V cmp.Ordered] struct {
	WeightedMap[V, int64]
}

// NewHist returns an empty histogram with the given display name.
func NewHist[V cmp.Ordered](name string) *Hist[V] {
	return &Hist[V]{WeightedMap[V, int64]{name: name}}
}

// HistFromSamples tallies an unsorted sequence of observations into a
// histogram.
func HistFromSamples[V cmp.Ordered](samples []V, name string) *Hist[V] {
	h := NewHist[V](name)
	for _, x := range samples {
		h.Increment(x, 1)
	}
	return h
}

// HistFromCounts builds a histogram from a map of values to
// frequencies. The map is copied; the caller keeps ownership of it.
func HistFromCounts[V cmp.Ordered](counts map[V]int64, name string) *Hist[V] {
	h := NewHist[V](name)
	for x, n := range counts {
		h.Set(x, n)
	}
	return h
}

// Copy returns an independent copy of h with the same name. Rename
// the copy with SetName if needed.
func (h *Hist[V]) Copy() *Hist[V] {
	return &Hist[V]{h.clone()}
}

// Frequency returns the frequency of x, or 0 if x is not present.
func (h *Hist[V]) Frequency(x V) int64 { return h.weight(x) }

// IsSubsetOf reports whether every frequency in h is at most the
// corresponding frequency in other.
func (h *Hist[V]) IsSubsetOf(other *Hist[V]) bool {
	for x, freq := range h.m {
		if freq > other.Frequency(x) {
			return false
		}
	}
	return true
}

// Subtract decrements h by the frequencies in other. Counts are not
// clamped, so subtracting more than h holds leaves negative
// frequencies.
func (h *Hist[V]) Subtract(other *Hist[V]) {
	for x, freq := range other.m {
		h.Increment(x, -freq)
	}
}
