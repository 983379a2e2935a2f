// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cutting implements the cutting-plane drivers that repeatedly
// query a separation oracle and shrink a search ellipsoid until the oracle
// is satisfied, the ellipsoid collapses, or an iteration budget is spent.
package cutting

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/luk036/ellalgo-go/ell"
	"github.com/luk036/ellalgo-go/oracle"
)

// Options bounds a cutting-plane run.
type Options struct {
	MaxIt int
	Tol   float64
}

// DefaultOptions mirrors the teacher's conservative defaults.
func DefaultOptions() Options {
	return Options{MaxIt: 2000, Tol: 1e-8}
}

// Info reports why a cutting-plane driver stopped.
type Info struct {
	Status     ell.CutStatus
	NumIters   int
	Feasible   bool
}

// CInfo additionally carries the number of NoEffect cuts CuttingPlaneQ
// counted since its last objective improvement.
type CInfo struct {
	Info
	NumRetries int
}

// searchSpace is the minimal shrinkable-region contract shared by
// ell.Ellipsoid and ell.EllipsoidStable.
type searchSpace interface {
	Xc() []float64
	Update(cut ell.Cut) (ell.CutStatus, float64)
}

// CuttingPlaneFeas drives space toward a point accepted by omega, logging
// each iteration at debug level. It returns the last trial point and an
// Info describing the outcome. ctx cancellation is checked once per
// iteration so long-running searches can be aborted cooperatively.
func CuttingPlaneFeas(ctx context.Context, omega oracle.FeasibilityOracle, space searchSpace, opts Options, log zerolog.Logger) ([]float64, Info) {
	for i := 0; i < opts.MaxIt; i++ {
		if err := ctx.Err(); err != nil {
			return space.Xc(), Info{Status: ell.StatusNoSoln, NumIters: i, Feasible: false}
		}

		x := space.Xc()
		cut, feasible := omega.Assess(x)
		if feasible {
			log.Debug().Int("iter", i).Msg("feasible point found")
			return x, Info{Status: ell.StatusSuccess, NumIters: i, Feasible: true}
		}

		status, tsq := space.Update(cut)
		log.Debug().Int("iter", i).Str("status", status.String()).Float64("tsq", tsq).Msg("cut applied")
		if status != ell.StatusSuccess {
			return x, Info{Status: status, NumIters: i, Feasible: false}
		}
		if tsq < opts.Tol {
			return x, Info{Status: ell.StatusSmallEnough, NumIters: i, Feasible: false}
		}
	}
	return space.Xc(), Info{Status: ell.StatusNoSoln, NumIters: opts.MaxIt, Feasible: false}
}

// CuttingPlaneDC drives space toward the minimizer of a convex objective
// tracked by omega, starting from best-known value t0. It returns the best
// x found, the tightened objective value, and an Info describing why the
// search stopped.
func CuttingPlaneDC(ctx context.Context, omega oracle.OptimizationOracle, space searchSpace, t0 float64, opts Options, log zerolog.Logger) ([]float64, float64, Info) {
	t := t0
	var xBest []float64

	for i := 0; i < opts.MaxIt; i++ {
		if err := ctx.Err(); err != nil {
			return xBest, t, Info{Status: ell.StatusNoSoln, NumIters: i, Feasible: xBest != nil}
		}

		x := space.Xc()
		cut, newT, updated := omega.Assess(x, t)
		if updated {
			t = newT
			xBest = append([]float64(nil), x...)
			log.Debug().Int("iter", i).Float64("t", t).Msg("objective improved")
		}

		status, tsq := space.Update(cut)
		log.Debug().Int("iter", i).Str("status", status.String()).Float64("tsq", tsq).Msg("cut applied")
		if status == ell.StatusNoSoln {
			return xBest, t, Info{Status: status, NumIters: i, Feasible: xBest != nil}
		}
		if status == ell.StatusSmallEnough || tsq < opts.Tol {
			return xBest, t, Info{Status: ell.StatusSmallEnough, NumIters: i, Feasible: xBest != nil}
		}
	}
	return xBest, t, Info{Status: ell.StatusNoSoln, NumIters: opts.MaxIt, Feasible: xBest != nil}
}

// maxRetries bounds how many NoEffect cuts CuttingPlaneQ will tolerate from
// a discrete oracle since its last objective improvement — a discrete
// oracle may legitimately report NoEffect for a cut that still carries
// useful information.
const maxRetries = 20

// CuttingPlaneQ drives space toward the minimizer of a convex objective
// over a discrete feasible set. A NoEffect status uses up one iteration and
// one unit of the maxRetries budget; the driver stops once more than
// maxRetries NoEffect cuts have occurred since the last objective
// improvement, since a discrete oracle's rounding can produce a cut that
// fails to shrink the ellipsoid without the problem itself being
// infeasible. CuttingPlaneDC has no such budget and keeps iterating.
func CuttingPlaneQ(ctx context.Context, omega oracle.DiscreteOracle, space searchSpace, t0 float64, opts Options, log zerolog.Logger) ([]float64, float64, CInfo) {
	t := t0
	var xBest []float64
	retries := 0

	for i := 0; i < opts.MaxIt; i++ {
		if err := ctx.Err(); err != nil {
			return xBest, t, CInfo{Info: Info{Status: ell.StatusNoSoln, NumIters: i, Feasible: xBest != nil}, NumRetries: retries}
		}

		x := space.Xc()
		cut, newT, x0, updated := omega.Assess(x, t)
		if updated {
			t = newT
			xBest = append([]float64(nil), x0...)
			retries = 0
			log.Debug().Int("iter", i).Float64("t", t).Msg("objective improved")
		}

		status, tsq := space.Update(cut)
		log.Debug().Int("iter", i).Str("status", status.String()).Float64("tsq", tsq).Msg("cut applied")

		switch status {
		case ell.StatusNoSoln:
			return xBest, t, CInfo{Info: Info{Status: status, NumIters: i, Feasible: xBest != nil}, NumRetries: retries}
		case ell.StatusNoEffect:
			retries++
			if retries > maxRetries {
				return xBest, t, CInfo{Info: Info{Status: status, NumIters: i, Feasible: xBest != nil}, NumRetries: retries}
			}
		case ell.StatusSuccess:
			if tsq < opts.Tol {
				return xBest, t, CInfo{Info: Info{Status: ell.StatusSmallEnough, NumIters: i, Feasible: xBest != nil}, NumRetries: retries}
			}
		}
	}
	return xBest, t, CInfo{Info: Info{Status: ell.StatusNoSoln, NumIters: opts.MaxIt, Feasible: xBest != nil}, NumRetries: retries}
}

// Bsearch binary-searches [lo, hi] for the largest t accepted by omega,
// stopping once the interval shrinks below opts.Tol. It returns the
// accepted threshold and the number of iterations spent.
func Bsearch(ctx context.Context, omega oracle.BisectionOracle, lo, hi float64, opts Options, log zerolog.Logger) (float64, int) {
	best := lo
	for i := 0; i < opts.MaxIt; i++ {
		if err := ctx.Err(); err != nil {
			return best, i
		}
		if hi-lo < opts.Tol {
			return best, i
		}
		mid := lo + (hi-lo)/2
		if omega.Assess(mid) {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
		log.Debug().Int("iter", i).Float64("lo", lo).Float64("hi", hi).Msg("bisection step")
	}
	return best, opts.MaxIt
}
