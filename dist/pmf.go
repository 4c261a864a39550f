// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"cmp"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A PMF is a probability mass function: a map from values to
// probability mass. A PMF is not necessarily normalized; operations
// that require the total mass to be 1 say so, and Normalize rescales
// on demand.
//
// The zero value of a PMF is an empty distribution ready to use.
type PMF[V cmp.Ordered] struct {
	WeightedMap[V, float64]
}

// NewPMF returns an empty PMF with the given display name.
func NewPMF[V cmp.Ordered](name string) *PMF[V] {
	return &PMF[V]{WeightedMap[V, float64]{name: name}}
}

// Copy returns an independent copy of p with the same name. Rename
// the copy with SetName if needed.
func (p *PMF[V]) Copy() *PMF[V] {
	return &PMF[V]{p.clone()}
}

// Probability returns the mass of x, or 0 if x is not present.
func (p *PMF[V]) Probability(x V) float64 { return p.weight(x) }

// ProbabilityDefault returns the mass of x, or def if x is not
// present.
func (p *PMF[V]) ProbabilityDefault(x V, def float64) float64 {
	if pr, ok := p.m[x]; ok {
		return pr
	}
	return def
}

// Normalize rescales p so the total mass is 1 and returns the total
// mass before rescaling. It returns ErrZeroTotal if the total is
// exactly zero.
func (p *PMF[V]) Normalize() (float64, error) {
	return p.NormalizeTo(1)
}

// NormalizeTo rescales p so the total mass is target and returns the
// total mass before rescaling. It returns ErrZeroTotal if the total
// is exactly zero.
func (p *PMF[V]) NormalizeTo(target float64) (float64, error) {
	total := p.Total()
	if total == 0 {
		return 0, ErrZeroTotal
	}
	factor := target / total
	for x := range p.m {
		p.m[x] *= factor
	}
	return total, nil
}

// DrawRandom draws a value from p using uniform variates from r. It
// walks values in ascending order accumulating mass until the running
// total reaches the variate, so draws are reproducible given a seeded
// source. p should be normalized. It returns ErrEmpty if p has no
// values, and panics if the accumulated mass never reaches the
// variate, which cannot happen for a normalized PMF.
func (p *PMF[V]) DrawRandom(r Rand) (V, error) {
	var zero V
	if p.Len() == 0 {
		return zero, ErrEmpty
	}
	target := r.Float64()
	total := 0.0
	for _, x := range p.Values() {
		total += p.m[x]
		if total >= target {
			return x, nil
		}
	}
	panic("dist: random draw exhausted probability mass")
}

// LogTransform replaces each mass with the log of its ratio to the
// maximum mass, so the largest entry becomes 0 and the rest negative.
// All masses must be positive. On error p is unchanged.
func (p *PMF[V]) LogTransform() error {
	max, err := p.MaxWeight()
	if err != nil {
		return err
	}
	for x, pr := range p.m {
		if pr <= 0 {
			return fmt.Errorf("log transform: mass %v of value %v is not positive", pr, x)
		}
	}
	for x, pr := range p.m {
		p.m[x] = math.Log(pr / max)
	}
	return nil
}

// ExpTransform exponentiates each mass relative to the maximum mass,
// undoing LogTransform up to a constant factor. Shifting by the
// maximum before exponentiating avoids overflow for large
// log-likelihoods. It returns ErrEmpty if p has no values.
func (p *PMF[V]) ExpTransform() error {
	max, err := p.MaxWeight()
	if err != nil {
		return err
	}
	for x, pr := range p.m {
		p.m[x] = math.Exp(pr - max)
	}
	return nil
}

// Mean returns the mean Σ p(x)·x of a PMF over real values. p should
// be normalized.
func Mean[V Real](p *PMF[V]) float64 {
	mu := 0.0
	for x, pr := range p.m {
		mu += pr * float64(x)
	}
	return mu
}

// Variance returns the variance of a PMF over real values, computed
// around its mean. p should be normalized.
func Variance[V Real](p *PMF[V]) float64 {
	return VarianceAround(p, Mean(p))
}

// VarianceAround returns the second moment Σ p(x)·(x−mu)² of a PMF
// over real values around the point mu.
func VarianceAround[V Real](p *PMF[V], mu float64) float64 {
	v := 0.0
	for x, pr := range p.m {
		d := float64(x) - mu
		v += pr * d * d
	}
	return v
}

// PMFFromSamples tallies an unsorted sequence of observations and
// normalizes the result. It returns ErrZeroTotal if samples is empty.
func PMFFromSamples[V cmp.Ordered](samples []V, name string) (*PMF[V], error) {
	return PMFFromHist(HistFromSamples(samples, name))
}

// PMFFromMap builds a PMF from a map of values to (possibly
// un-normalized) masses and normalizes it. The map is copied. It
// returns ErrZeroTotal if the masses sum to zero.
func PMFFromMap[V cmp.Ordered](probs map[V]float64, name string) (*PMF[V], error) {
	p := NewPMF[V](name)
	for x, pr := range probs {
		p.Set(x, pr)
	}
	if _, err := p.Normalize(); err != nil {
		return nil, err
	}
	return p, nil
}

// PMFFromHist converts a histogram to a normalized PMF with the same
// name. It returns ErrZeroTotal if the histogram's frequencies sum to
// zero.
func PMFFromHist[V cmp.Ordered](h *Hist[V]) (*PMF[V], error) {
	p := NewPMF[V](h.Name())
	for x, freq := range h.m {
		p.Set(x, float64(freq))
	}
	if _, err := p.Normalize(); err != nil {
		return nil, err
	}
	return p, nil
}

// PMFFromCDF recovers the point masses of a CDF by differencing
// consecutive cumulative probabilities: mass(x[i]) = ps[i] − ps[i−1],
// with ps[−1] taken as 0.
func PMFFromCDF[V cmp.Ordered](c *CDF[V]) *PMF[V] {
	p := NewPMF[V](c.name)
	prev := 0.0
	for i, x := range c.xs {
		p.Increment(x, c.ps[i]-prev)
		prev = c.ps[i]
	}
	return p
}

// A MixtureComponent is one branch of a discrete mixture: a component
// distribution and its mixture proportion.
type MixtureComponent[V cmp.Ordered] struct {
	Dist   *PMF[V]
	Weight float64
}

// Mixture flattens a discrete mixture into a single PMF by the law of
// total probability: each value's mass is the sum over components of
// the component's mass times the component's proportion. The result
// is not normalized; it sums to 1 when the components are normalized
// and the proportions sum to 1.
func Mixture[V cmp.Ordered](parts []MixtureComponent[V], name string) *PMF[V] {
	mix := NewPMF[V](name)
	for _, part := range parts {
		for x, pr := range part.Dist.m {
			mix.Increment(x, pr*part.Weight)
		}
	}
	return mix
}

// PMFFromBinomial returns the PMF of the number of successes in n
// Bernoulli trials with success probability prob. It returns
// ErrOutOfRange if n is negative or prob lies outside [0, 1].
func PMFFromBinomial(n int64, prob float64) (*PMF[int64], error) {
	if n < 0 || prob < 0 || prob > 1 {
		return nil, fmt.Errorf("binomial(n=%d, p=%v): %w", n, prob, ErrOutOfRange)
	}
	b := distuv.Binomial{N: float64(n), P: prob}
	p := NewPMF[int64]("")
	for k := int64(0); k <= n; k++ {
		p.Set(k, b.Prob(float64(k)))
	}
	return p, nil
}

// PMFFromPoisson returns the PMF of a Poisson distribution with rate
// lambda, truncated at high and renormalized over 0..high. It returns
// ErrOutOfRange if lambda is not positive or high is negative.
func PMFFromPoisson(lambda float64, high int64) (*PMF[int64], error) {
	if lambda <= 0 || high < 0 {
		return nil, fmt.Errorf("poisson(lambda=%v, high=%d): %w", lambda, high, ErrOutOfRange)
	}
	pois := distuv.Poisson{Lambda: lambda}
	p := NewPMF[int64]("")
	for k := int64(0); k <= high; k++ {
		p.Set(k, pois.Prob(float64(k)))
	}
	if _, err := p.Normalize(); err != nil {
		return nil, err
	}
	return p, nil
}
