// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle defines the separation-oracle contracts that the cutting
// package drives. A cutting-plane method never inspects a problem's
// structure directly; it only ever asks an oracle "does x satisfy the
// constraints, and if not, which cut separates it?".
package oracle

import "github.com/luk036/ellalgo-go/ell"

// FeasibilityOracle answers a single question: given a trial point x, is it
// feasible? If not, Assess returns a cut that separates x from every
// feasible point.
type FeasibilityOracle interface {
	Assess(x []float64) (cut ell.Cut, feasible bool)
}

// OptimizationOracle additionally tracks a best-known objective value t and
// tightens the feasible region as t improves, for convex minimization by
// cutting_plane_dc.
type OptimizationOracle interface {
	// Assess returns a cut for x and, when x is feasible and improves on t,
	// a new tightened t and true.
	Assess(x []float64, t float64) (cut ell.Cut, newT float64, tUpdated bool)
}

// DiscreteOracle is an OptimizationOracle whose feasible set is restricted
// to a lattice or other discrete structure: the cut returned by Assess is
// computed at the rounded witness point x0 rather than at x itself, so
// cutting_plane_q must track x0 (not x) as the best-known discrete
// solution. A cut may also report NoEffect even though the oracle found no
// improvement — cutting_plane_q retries with a bounded budget in that case.
type DiscreteOracle interface {
	Assess(x []float64, t float64) (cut ell.Cut, newT float64, x0 []float64, tUpdated bool)
}

// BisectionOracle checks feasibility of a single scalar threshold, for use
// by Bsearch: Assess(t) reports whether the problem parametrized by t is
// feasible.
type BisectionOracle interface {
	Assess(t float64) bool
}

// BsearchAdaptor is the contract for adapting a FeasibilityOracle
// parametrized by a scalar bound into a BisectionOracle, by re-running
// cutting_plane_feas at each candidate t. It is an interface only: no type
// in this module implements it.
type BsearchAdaptor interface {
	BisectionOracle
	// LastFeasible reports the last x found feasible, for callers that need
	// the witness point and not just the threshold.
	LastFeasible() []float64
}
