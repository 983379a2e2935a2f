// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ell implements the ellipsoid update engine: the 1-D interval
// tracker, the naive n-D ellipsoid, and the numerically stable n-D
// ellipsoid that stores its shape matrix as an LDLᵀ factorization. All
// three shrink under central, deep, and parallel cuts.
package ell

import "math"

// CutKind tags which of the three cut shapes a Cut carries.
type CutKind int

const (
	// CentralCut passes through the centroid: g'(x-xc) <= 0.
	CentralCut CutKind = iota
	// DeepCut is a single hyperplane shifted into the ellipsoid:
	// g'(x-xc) + Beta <= 0, Beta > 0.
	DeepCut
	// ParallelCut bounds a slab with two parallel hyperplanes:
	// g'(x-xc) + Beta <= 0 <= g'(x-xc) + Beta1, Beta <= Beta1.
	ParallelCut
)

// Cut is a separating hyperplane (or slab) (g, β) guaranteeing that the
// half-space g'(x - xc) + β <= 0 contains the feasible set.
type Cut struct {
	Kind  CutKind
	G     []float64
	Beta  float64 // central/deep cut offset, or the lower bound β0 of a parallel cut
	Beta1 float64 // upper bound β1, only meaningful when Kind == ParallelCut
}

// NewCentralCut builds a central cut through g.
func NewCentralCut(g []float64) Cut {
	return Cut{Kind: CentralCut, G: g}
}

// NewDeepCut builds a deep cut (g, beta) with beta > 0.
func NewDeepCut(g []float64, beta float64) Cut {
	if beta == 0 {
		return NewCentralCut(g)
	}
	return Cut{Kind: DeepCut, G: g, Beta: beta}
}

// NewParallelCut builds a parallel cut (g, beta0, beta1) with beta0 <= beta1.
func NewParallelCut(g []float64, beta0, beta1 float64) Cut {
	return Cut{Kind: ParallelCut, G: g, Beta: beta0, Beta1: beta1}
}

// CutStatus reports the outcome of applying a Cut to an ellipsoid.
type CutStatus int

const (
	// StatusSuccess: the cut was absorbed; the ellipsoid shrank.
	StatusSuccess CutStatus = iota
	// StatusNoSoln: the cut is so deep the ellipsoid contains no feasible
	// point; the driver should terminate as infeasible.
	StatusNoSoln
	// StatusSmallEnough: τ² fell below the tolerance; the driver should
	// terminate successfully.
	StatusSmallEnough
	// StatusNoEffect: the cut does not shrink the ellipsoid; recoverable,
	// cutting_plane_q may retry with an alternative cut.
	StatusNoEffect
)

func (s CutStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNoSoln:
		return "no-solution"
	case StatusSmallEnough:
		return "small-enough"
	case StatusNoEffect:
		return "no-effect"
	default:
		return "unknown"
	}
}

// params are the (rho, sigma, delta) shrink coefficients shared by every
// successful central/deep/parallel-cut update.
type params struct {
	rho, sigma, delta float64
}

// calcCentralCut returns the shrink coefficients for a central cut of an
// n-dimensional ellipsoid with precomputed constant c1.
func calcCentralCut(n int, c1 float64) params {
	rho := 1.0 / float64(n+1)
	return params{rho: rho, sigma: 2 * rho, delta: c1}
}

// calcDeepCut returns (status, params) for a deep cut with ratio alpha =
// beta/sqrt(tsq). alpha == 0 degenerates to the central cut.
func calcDeepCut(n int, c1, alpha float64) (CutStatus, params) {
	if alpha == 0 {
		return StatusSuccess, calcCentralCut(n, c1)
	}
	nf := float64(n)
	if alpha > 1 {
		return StatusNoSoln, params{}
	}
	if nf*alpha < -1 {
		return StatusNoEffect, params{}
	}
	rho := (1 + nf*alpha) / (nf + 1)
	sigma := 2 * rho / (1 + alpha)
	delta := c1 * (1 - alpha*alpha)
	return StatusSuccess, params{rho: rho, sigma: sigma, delta: delta}
}

// calcParallelCut returns (status, params) for a parallel cut with ratios
// alpha0 <= alpha1. alpha1 >= 1 reduces to a deep cut with alpha0.
func calcParallelCut(n int, c1, alpha0, alpha1 float64) (CutStatus, params) {
	if alpha1 >= 1 {
		return calcDeepCut(n, c1, alpha0)
	}
	nf := float64(n)
	if alpha0 > alpha1 {
		return StatusNoSoln, params{}
	}
	aprod := alpha0 * alpha1
	if nf*aprod < -1 {
		return StatusNoEffect, params{}
	}
	asq0, asq1 := alpha0*alpha0, alpha1*alpha1
	asqdiff := asq1 - asq0
	xi := math.Sqrt(4*(1-asq0)*(1-asq1) + nf*nf*asqdiff*asqdiff)
	asum := alpha0 + alpha1
	sigma := (nf + 2*(1+aprod-xi/2)/(asum*asum)) / (nf + 1)
	rho := asum * sigma / 2
	delta := c1 * (1 - (asq0+asq1-xi/nf)/2)
	return StatusSuccess, params{rho: rho, sigma: sigma, delta: delta}
}

// calcLL dispatches a cut to the appropriate central/deep/parallel-cut
// coefficient calculation given tau = sqrt(tsq). useParallelCut lets a
// caller degrade a ParallelCut to a plain deep cut on Beta alone, discarding
// Beta1, when the search space was configured not to exploit slab cuts.
func calcLL(n int, c1 float64, cut Cut, tau float64, useParallelCut bool) (CutStatus, params) {
	switch cut.Kind {
	case CentralCut:
		return StatusSuccess, calcCentralCut(n, c1)
	case DeepCut:
		return calcDeepCut(n, c1, cut.Beta/tau)
	case ParallelCut:
		if !useParallelCut || cut.Beta1 >= tau {
			return calcDeepCut(n, c1, cut.Beta/tau)
		}
		return calcParallelCut(n, c1, cut.Beta/tau, cut.Beta1/tau)
	default:
		panic("ell: unknown cut kind")
	}
}
