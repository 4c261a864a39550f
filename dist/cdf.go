// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"cmp"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A CDF is a discrete cumulative distribution function, stored as a
// sorted slice of values and a parallel slice of cumulative
// probabilities. For every index i, ps[i] is the probability that the
// random variable is at most xs[i]. In a properly constructed CDF, xs
// is sorted ascending, ps is non-decreasing, and the final cumulative
// probability is 1.
type CDF[V cmp.Ordered] struct {
	name string
	xs   []V
	ps   []float64
}

// NewCDF returns an empty CDF with the given display name, to be
// populated with Append.
func NewCDF[V cmp.Ordered](name string) *CDF[V] {
	return &CDF[V]{name: name}
}

// Name returns the display name of the CDF.
func (c *CDF[V]) Name() string { return c.name }

// SetName sets the display name of the CDF.
func (c *CDF[V]) SetName(name string) { c.name = name }

// Len returns the number of distinct values.
func (c *CDF[V]) Len() int { return len(c.xs) }

// Values returns the sorted values.
func (c *CDF[V]) Values() []V { return slices.Clone(c.xs) }

// Probs returns the cumulative probabilities, parallel to Values.
func (c *CDF[V]) Probs() []float64 { return slices.Clone(c.ps) }

// Append adds an (x, p) pair to the end of the CDF. It is intended
// for building a CDF from scratch; it does not re-validate that the
// result is sorted, which remains the caller's responsibility.
func (c *CDF[V]) Append(x V, p float64) {
	c.xs = append(c.xs, x)
	c.ps = append(c.ps, p)
}

// Value returns the cumulative probability at x, the probability that
// the random variable is at most x. If x is smaller than every stored
// value the result is 0. If the CDF is empty the result is NaN.
func (c *CDF[V]) Value(x V) float64 {
	if len(c.xs) == 0 {
		return math.NaN()
	}
	// Rightmost insertion point: a stored value equal to x falls
	// before it, so runs of equal values resolve to the cumulative
	// probability after the whole run.
	i := sort.Search(len(c.xs), func(i int) bool { return c.xs[i] > x })
	if i == 0 {
		return 0
	}
	return c.ps[i-1]
}

// InverseValue returns the smallest value whose cumulative probability
// is at least p. It returns ErrOutOfRange unless 0 <= p <= 1, and
// ErrEmpty if the CDF has no values. p=0 yields the smallest stored
// value and p=1 the largest. When p exactly equals a stored cumulative
// probability, the value at that position is returned rather than the
// next one; this matters on plateaus, where two boundary values carry
// the same cumulative probability.
func (c *CDF[V]) InverseValue(p float64) (V, error) {
	var zero V
	if !(p >= 0 && p <= 1) {
		return zero, ErrOutOfRange
	}
	if len(c.xs) == 0 {
		return zero, ErrEmpty
	}
	if p == 0 {
		return c.xs[0], nil
	}
	if p == 1 {
		return c.xs[len(c.xs)-1], nil
	}
	i := sort.Search(len(c.ps), func(i int) bool { return c.ps[i] > p })
	if i > 0 && c.ps[i-1] == p {
		return c.xs[i-1], nil
	}
	if i == len(c.xs) {
		// Possible only if the CDF is malformed and tops out
		// below p.
		return c.xs[len(c.xs)-1], nil
	}
	return c.xs[i], nil
}

// Percentile returns the value at the pct'th percentile,
// InverseValue(pct/100).
func (c *CDF[V]) Percentile(pct float64) (V, error) {
	return c.InverseValue(pct / 100)
}

// DrawRandom draws a value from the distribution by inverse transform
// sampling with a uniform variate from r.
func (c *CDF[V]) DrawRandom(r Rand) (V, error) {
	return c.InverseValue(r.Float64())
}

// Sample returns n independent draws from the distribution using
// uniform variates from r.
func (c *CDF[V]) Sample(r Rand, n int) ([]V, error) {
	xs := make([]V, n)
	for i := range xs {
		x, err := c.DrawRandom(r)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

// CDFMean returns the mean of a CDF over real values. It recovers
// point masses by differencing consecutive cumulative probabilities,
// without building an intermediate PMF.
func CDFMean[V Real](c *CDF[V]) float64 {
	prev := 0.0
	total := 0.0
	for i, x := range c.xs {
		total += (c.ps[i] - prev) * float64(x)
		prev = c.ps[i]
	}
	return total
}

// Render returns coordinates for plotting the CDF as a step function.
// Each cumulative probability is emitted at its own value and repeated
// at the next value, making the horizontal segments explicit, and the
// first point is preceded by (xs[0], 0) so the step up from zero is
// visible. Linear interpolation of these points reproduces the
// right-continuous empirical CDF exactly.
func (c *CDF[V]) Render() ([]V, []float64) {
	if len(c.xs) == 0 {
		return nil, nil
	}
	xs := make([]V, 0, 2*len(c.xs))
	ps := make([]float64, 0, 2*len(c.xs))
	xs = append(xs, c.xs[0])
	ps = append(ps, 0)
	for i, p := range c.ps {
		xs = append(xs, c.xs[i])
		ps = append(ps, p)
		if i+1 < len(c.xs) {
			xs = append(xs, c.xs[i+1])
			ps = append(ps, p)
		}
	}
	return xs, ps
}

// cdfFromCounts builds a CDF from a map of values to weights: sort the
// values, accumulate a running sum of weights, and scale by the total.
func cdfFromCounts[V cmp.Ordered, W Weight](counts map[V]W, name string) (*CDF[V], error) {
	if len(counts) == 0 {
		return nil, ErrZeroTotal
	}
	xs := make([]V, 0, len(counts))
	for x := range counts {
		xs = append(xs, x)
	}
	slices.Sort(xs)
	ws := make([]float64, len(xs))
	for i, x := range xs {
		ws[i] = float64(counts[x])
	}
	ps := floats.CumSum(make([]float64, len(ws)), ws)
	total := ps[len(ps)-1]
	if total == 0 {
		return nil, ErrZeroTotal
	}
	floats.Scale(1/total, ps)
	return &CDF[V]{name: name, xs: xs, ps: ps}, nil
}

// CDFFromItems builds a CDF from parallel slices of values and counts,
// in any order. Counts for duplicate values are summed. It panics if
// the slices have different lengths and returns ErrZeroTotal if the
// counts sum to zero.
func CDFFromItems[V cmp.Ordered, W Weight](values []V, counts []W, name string) (*CDF[V], error) {
	if len(values) != len(counts) {
		panic("dist: CDFFromItems given slices of unequal length")
	}
	m := make(map[V]W, len(values))
	for i, x := range values {
		m[x] += counts[i]
	}
	return cdfFromCounts(m, name)
}

// CDFFromMap builds a CDF from a map of values to counts or masses.
// It returns ErrZeroTotal if the weights sum to zero.
func CDFFromMap[V cmp.Ordered, W Weight](counts map[V]W, name string) (*CDF[V], error) {
	return cdfFromCounts(counts, name)
}

// CDFFromHist builds a CDF from a histogram, keeping its name.
func CDFFromHist[V cmp.Ordered](h *Hist[V]) (*CDF[V], error) {
	return cdfFromCounts(h.m, h.Name())
}

// CDFFromPMF builds a CDF from a PMF, keeping its name. The PMF need
// not be normalized; the CDF is scaled by the total mass.
func CDFFromPMF[V cmp.Ordered](p *PMF[V]) (*CDF[V], error) {
	return cdfFromCounts(p.m, p.Name())
}

// CDFFromSamples tallies an unsorted sequence of observations and
// builds a CDF from the tally. It returns ErrZeroTotal if samples is
// empty.
func CDFFromSamples[V cmp.Ordered](samples []V, name string) (*CDF[V], error) {
	return CDFFromHist(HistFromSamples(samples, name))
}
