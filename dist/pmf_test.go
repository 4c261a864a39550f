// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestPMFFromSamples(t *testing.T) {
	p, err := PMFFromSamples([]int{1, 2, 2, 3, 3, 3}, "test")
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]float64{1: 1.0 / 6, 2: 1.0 / 3, 3: 0.5}
	for x, mass := range want {
		if got := p.Probability(x); !aeq(mass, got) {
			t.Errorf("Probability(%d) = %v, want %v", x, got, mass)
		}
	}
	if got := p.Probability(4); got != 0 {
		t.Errorf("Probability(4) = %v, want 0", got)
	}
	if got := p.ProbabilityDefault(4, -1); got != -1 {
		t.Errorf("ProbabilityDefault(4, -1) = %v, want -1", got)
	}
	if _, err := PMFFromSamples([]int{}, ""); !errors.Is(err, ErrZeroTotal) {
		t.Errorf("PMFFromSamples(nil) error = %v, want ErrZeroTotal", err)
	}
}

func TestPMFCopy(t *testing.T) {
	p, err := PMFFromMap(map[string]float64{"x": 0.25, "y": 0.75}, "orig")
	if err != nil {
		t.Fatal(err)
	}
	c := p.Copy()
	if c.Name() != "orig" {
		t.Errorf("copy Name = %q, want %q", c.Name(), "orig")
	}
	c.Set("x", 1)
	c.SetName("changed")
	if got := p.Probability("x"); !aeq(0.25, got) {
		t.Errorf("mutating copy changed original: Probability(x) = %v, want 0.25", got)
	}
	if p.Name() != "orig" {
		t.Errorf("renaming copy changed original: Name = %q, want %q", p.Name(), "orig")
	}
}

func TestPMFNormalize(t *testing.T) {
	p := NewPMF[string]("")
	p.Set("a", 2)
	p.Set("b", 6)

	total, err := p.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(8, total) {
		t.Errorf("Normalize returned %v, want 8", total)
	}
	if !aeq(1, p.Total()) {
		t.Errorf("Total after Normalize = %v, want 1", p.Total())
	}
	if !aeq(0.25, p.Probability("a")) || !aeq(0.75, p.Probability("b")) {
		t.Errorf("normalized masses = %v, %v, want 0.25, 0.75", p.Probability("a"), p.Probability("b"))
	}

	if _, err := p.NormalizeTo(2); err != nil {
		t.Fatal(err)
	}
	if !aeq(2, p.Total()) {
		t.Errorf("Total after NormalizeTo(2) = %v, want 2", p.Total())
	}
}

func TestPMFNormalizeZeroTotal(t *testing.T) {
	p := NewPMF[int]("")
	if _, err := p.Normalize(); !errors.Is(err, ErrZeroTotal) {
		t.Errorf("Normalize on empty PMF = %v, want ErrZeroTotal", err)
	}
	p.Set(1, 1)
	p.Set(2, -1)
	if _, err := p.Normalize(); !errors.Is(err, ErrZeroTotal) {
		t.Errorf("Normalize with cancelling masses = %v, want ErrZeroTotal", err)
	}
}

func TestPMFMoments(t *testing.T) {
	p, err := PMFFromMap(map[float64]float64{1: 1, 2: 2, 3: 3}, "")
	if err != nil {
		t.Fatal(err)
	}
	// mean = 1/6 + 2/3 + 3/2 = 7/3
	if got := Mean(p); !aeq(7.0/3, got) {
		t.Errorf("Mean = %v, want %v", got, 7.0/3)
	}
	// var = E[x^2] - mean^2 = 6 - 49/9 = 5/9
	if got := Variance(p); !aeq(5.0/9, got) {
		t.Errorf("Variance = %v, want %v", got, 5.0/9)
	}
	if got := VarianceAround(p, 0); !aeq(6, got) {
		t.Errorf("VarianceAround(0) = %v, want 6", got)
	}

	// Cross-check the weighted mean against gonum.
	xs, ws := p.Render()
	if want := stat.Mean(xs, ws); !aeq(want, Mean(p)) {
		t.Errorf("Mean = %v, gonum weighted mean = %v", Mean(p), want)
	}
}

func TestPMFLogExpTransforms(t *testing.T) {
	p, err := PMFFromMap(map[int]float64{1: 0.1, 2: 0.2, 3: 0.7}, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := p.LogTransform(); err != nil {
		t.Fatal(err)
	}
	if got := p.Probability(3); !aeq(0, got) {
		t.Errorf("after LogTransform, mass of max value = %v, want 0", got)
	}
	if got := p.Probability(1); !aeq(math.Log(1.0/7), got) {
		t.Errorf("after LogTransform, Probability(1) = %v, want %v", got, math.Log(1.0/7))
	}

	// ExpTransform inverts LogTransform up to a constant factor.
	if err := p.ExpTransform(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Normalize(); err != nil {
		t.Fatal(err)
	}
	want := map[int]float64{1: 0.1, 2: 0.2, 3: 0.7}
	for x, mass := range want {
		if got := p.Probability(x); !aeq(mass, got) {
			t.Errorf("after round trip, Probability(%d) = %v, want %v", x, got, mass)
		}
	}
}

func TestPMFLogTransformNonPositive(t *testing.T) {
	p := NewPMF[int]("")
	p.Set(1, 0.5)
	p.Set(2, 0)
	if err := p.LogTransform(); err == nil {
		t.Error("LogTransform with a zero mass succeeded, want error")
	}
	if !aeq(0.5, p.Probability(1)) {
		t.Errorf("failed LogTransform mutated the PMF: Probability(1) = %v", p.Probability(1))
	}

	empty := NewPMF[int]("")
	if err := empty.LogTransform(); !errors.Is(err, ErrEmpty) {
		t.Errorf("LogTransform on empty PMF = %v, want ErrEmpty", err)
	}
}

func TestPMFDrawRandom(t *testing.T) {
	p, err := PMFFromMap(map[int]float64{1: 1, 2: 2, 3: 3}, "")
	if err != nil {
		t.Fatal(err)
	}
	// Ascending-order accumulation: 1/6, then 1/2, then 1.
	for _, c := range []struct {
		u    float64
		want int
	}{
		{0, 1},
		{0.1, 1},
		{0.2, 2},
		{0.49, 2},
		{0.51, 3},
		{0.99, 3},
	} {
		got, err := p.DrawRandom(&fixedRand{vals: []float64{c.u}})
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("DrawRandom with u=%v = %d, want %d", c.u, got, c.want)
		}
	}

	empty := NewPMF[int]("")
	if _, err := empty.DrawRandom(&fixedRand{vals: []float64{0.5}}); !errors.Is(err, ErrEmpty) {
		t.Errorf("DrawRandom on empty PMF = %v, want ErrEmpty", err)
	}
}

func TestMixture(t *testing.T) {
	die6, err := PMFFromMap(map[int]float64{1: 1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1}, "d6")
	if err != nil {
		t.Fatal(err)
	}
	die4, err := PMFFromMap(map[int]float64{1: 1, 2: 1, 3: 1, 4: 1}, "d4")
	if err != nil {
		t.Fatal(err)
	}
	mix := Mixture([]MixtureComponent[int]{
		{Dist: die4, Weight: 0.5},
		{Dist: die6, Weight: 0.5},
	}, "mix")

	if !aeq(1, mix.Total()) {
		t.Errorf("mixture Total = %v, want 1", mix.Total())
	}
	// P(x) = 0.5*(1/4) + 0.5*(1/6) for x <= 4, 0.5*(1/6) above.
	if got := mix.Probability(2); !aeq(5.0/24, got) {
		t.Errorf("mixture Probability(2) = %v, want %v", got, 5.0/24)
	}
	if got := mix.Probability(5); !aeq(1.0/12, got) {
		t.Errorf("mixture Probability(5) = %v, want %v", got, 1.0/12)
	}
}

func TestPMFFromCDFRoundTrip(t *testing.T) {
	orig, err := PMFFromSamples([]int{1, 2, 2, 3, 3, 3}, "")
	if err != nil {
		t.Fatal(err)
	}
	cdf, err := CDFFromPMF(orig)
	if err != nil {
		t.Fatal(err)
	}
	back := PMFFromCDF(cdf)
	for _, x := range orig.Values() {
		if !aeq(orig.Probability(x), back.Probability(x)) {
			t.Errorf("round trip Probability(%d) = %v, want %v", x, back.Probability(x), orig.Probability(x))
		}
	}
}

func TestPMFFromBinomial(t *testing.T) {
	p, err := PMFFromBinomial(5, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int64]float64{
		0: 0.32768,
		1: 0.4096,
		2: 0.2048,
		3: 0.0512,
		4: 0.0064,
		5: math.Pow(0.2, 5),
	}
	for k, mass := range want {
		if got := p.Probability(k); !aeq(mass, got) {
			t.Errorf("binomial Probability(%d) = %v, want %v", k, got, mass)
		}
	}
	if !aeq(1, p.Total()) {
		t.Errorf("binomial Total = %v, want 1", p.Total())
	}

	if _, err := PMFFromBinomial(-1, 0.5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("PMFFromBinomial(-1, 0.5) error = %v, want ErrOutOfRange", err)
	}
	if _, err := PMFFromBinomial(5, 1.5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("PMFFromBinomial(5, 1.5) error = %v, want ErrOutOfRange", err)
	}
}

func TestPMFFromPoisson(t *testing.T) {
	p, err := PMFFromPoisson(2, 20)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(1, p.Total()) {
		t.Errorf("poisson Total = %v, want 1", p.Total())
	}
	// P(X=2) = e^-2 * 2^2 / 2!; truncation at 20 is negligible.
	want := math.Exp(-2) * 2
	if got := p.Probability(2); !aeq(want, got) {
		t.Errorf("poisson Probability(2) = %v, want %v", got, want)
	}

	if _, err := PMFFromPoisson(0, 10); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("PMFFromPoisson(0, 10) error = %v, want ErrOutOfRange", err)
	}
}
