// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "cmp"

// A Likelihood computes P(data | hypo), the probability of observing
// data if hypothesis hypo is true. It must be non-negative. The Suite
// machinery is agnostic to its meaning; it is the caller's model.
type Likelihood[H cmp.Ordered, D any] func(hypo H, data D) float64

// A Suite is a PMF over a fixed set of hypotheses together with a
// likelihood function, supporting sequential Bayesian updates. The
// hypothesis set is fixed at construction; the weights are the
// posterior probabilities after the updates applied so far.
type Suite[H cmp.Ordered, D any] struct {
	PMF[H]
	like Likelihood[H, D]
}

// NewSuite returns a suite with a uniform prior over hypos. like must
// be non-nil. It returns ErrZeroTotal if hypos is empty.
func NewSuite[H cmp.Ordered, D any](hypos []H, like Likelihood[H, D], name string) (*Suite[H, D], error) {
	if like == nil {
		panic("dist: NewSuite given nil likelihood")
	}
	s := &Suite[H, D]{PMF: *NewPMF[H](name), like: like}
	for _, h := range hypos {
		s.Set(h, 1)
	}
	if _, err := s.Normalize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Update reweights every hypothesis by its likelihood of data and
// normalizes. It returns the normalizing constant: the total mass
// before normalizing, which is the marginal probability of data under
// the prior. It returns ErrZeroTotal if every hypothesis assigns zero
// likelihood to data, in which case the weights are left as the
// un-normalizable products.
func (s *Suite[H, D]) Update(data D) (float64, error) {
	for _, h := range s.Values() {
		s.Scale(h, s.like(h, data))
	}
	return s.Normalize()
}

// UpdateBatch reweights every hypothesis by its likelihood of each
// datum in dataset and normalizes once at the end, returning the final
// normalizing constant. Because normalization only rescales, the
// posterior is the same as applying Update per datum, up to
// floating-point rounding; deferring it just avoids the intermediate
// passes.
func (s *Suite[H, D]) UpdateBatch(dataset []D) (float64, error) {
	for _, data := range dataset {
		for _, h := range s.Values() {
			s.Scale(h, s.like(h, data))
		}
	}
	return s.Normalize()
}

// ArgMax returns the value with the highest mass in p. Ties resolve
// to the smallest such value. It returns ErrEmpty if p has no values.
func ArgMax[V cmp.Ordered](p *PMF[V]) (V, error) {
	var zero V
	if p.Len() == 0 {
		return zero, ErrEmpty
	}
	xs := p.Values()
	best, bestMass := xs[0], p.m[xs[0]]
	for _, x := range xs[1:] {
		if mass := p.m[x]; mass > bestMass {
			best, bestMass = x, mass
		}
	}
	return best, nil
}

// PercentileOf returns the smallest value at or below which at least
// pct percent of p's mass lies, by a linear scan of the mass in
// ascending value order. p should be normalized; if the total mass
// falls short of pct/100, the largest value is returned. It returns
// ErrOutOfRange unless 0 <= pct <= 100 and ErrEmpty if p has no
// values.
func PercentileOf[V cmp.Ordered](p *PMF[V], pct float64) (V, error) {
	var zero V
	if !(pct >= 0 && pct <= 100) {
		return zero, ErrOutOfRange
	}
	xs := p.Values()
	if len(xs) == 0 {
		return zero, ErrEmpty
	}
	target := pct / 100
	total := 0.0
	for _, x := range xs {
		total += p.m[x]
		if total >= target {
			return x, nil
		}
	}
	return xs[len(xs)-1], nil
}

// ConfidenceInterval returns the central interval covering pct percent
// of p's mass: the values at cumulative probabilities α/2 and 1−α/2
// where α = 1 − pct/100. It returns ErrOutOfRange unless
// 0 <= pct <= 100 and ErrZeroTotal if p has no mass.
func ConfidenceInterval[V cmp.Ordered](p *PMF[V], pct float64) (lo, hi V, err error) {
	var zero V
	if !(pct >= 0 && pct <= 100) {
		return zero, zero, ErrOutOfRange
	}
	cdf, err := CDFFromPMF(p)
	if err != nil {
		return zero, zero, err
	}
	alpha := (1 - pct/100) / 2
	lo, err = cdf.InverseValue(alpha)
	if err != nil {
		return zero, zero, err
	}
	hi, err = cdf.InverseValue(1 - alpha)
	if err != nil {
		return zero, zero, err
	}
	return lo, hi, nil
}
