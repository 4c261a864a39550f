// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides discrete probability distributions: histograms,
// probability mass functions (PMFs), cumulative distribution functions
// (CDFs), conversions between them, and a Bayesian updating framework
// (Suite) built on top of PMFs.
//
// All distributions in this package are over a finite set of values of
// some ordered type. Histograms map values to integer frequencies; PMFs
// map values to probability mass; CDFs store sorted values alongside
// cumulative probabilities and support forward lookup, inverse lookup,
// and sampling.
package dist // import "github.com/statmodel/go-discrete/dist"
