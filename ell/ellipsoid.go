// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ell

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/luk036/ellalgo-go/internal/f64"
)

// Ellipsoid is the naive n-D ellipsoid { x : (x-xc)'Q^-1(x-xc) <= kappa },
// storing its shape matrix Q explicitly as a dense symmetric matrix.
//
// kappa is kept apart from Q (the "defer trick", see the NoDeferTrick
// field) so that the per-step scalar multiplication by delta costs O(1)
// rather than O(n²); the Q method returns the effective matrix kappa*Q, and
// NoDeferTrick forces immediate folding.
type Ellipsoid struct {
	// UseParallelCut enables the two-sided parallel-cut formula; when
	// false, a parallel cut is applied as a deep cut on its Beta alone.
	UseParallelCut bool
	// NoDeferTrick folds kappa into Q after every update instead of
	// deferring it, for testing/comparison against the stable variant.
	NoDeferTrick bool

	n     int
	c1    float64
	kappa float64
	xc    []float64
	q     *mat.SymDense
}

// NewEllipsoid constructs the ellipsoid with initial shape diag(val) and
// center xc.
func NewEllipsoid(val []float64, xc []float64) *Ellipsoid {
	n := len(xc)
	q := mat.NewSymDense(n, nil)
	for i, v := range val {
		q.SetSym(i, i, v)
	}
	return newEllipsoid(n, 1, xc, q)
}

// NewEllipsoidSphere constructs the ellipsoid with initial shape alpha*I
// and center xc.
func NewEllipsoidSphere(alpha float64, xc []float64) *Ellipsoid {
	n := len(xc)
	q := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		q.SetSym(i, i, 1)
	}
	return newEllipsoid(n, alpha, xc, q)
}

func newEllipsoid(n int, kappa float64, xc []float64, q *mat.SymDense) *Ellipsoid {
	nf := float64(n)
	return &Ellipsoid{
		UseParallelCut: true,
		n:              n,
		c1:             nf * nf / (nf*nf - 1),
		kappa:          kappa,
		xc:             append([]float64(nil), xc...),
		q:              q,
	}
}

// Xc returns the current centroid.
func (e *Ellipsoid) Xc() []float64 { return e.xc }

// Kappa returns the current deferred scale factor.
func (e *Ellipsoid) Kappa() float64 { return e.kappa }

// Q returns the current effective shape matrix kappa*Q as a dense n×n
// symmetric matrix, folding the deferred scale in lazily.
func (e *Ellipsoid) Q() *mat.SymDense {
	out := mat.NewSymDense(e.n, nil)
	out.ScaleSym(e.kappa, e.q)
	return out
}

// Copy returns an independent copy of e.
func (e *Ellipsoid) Copy() *Ellipsoid {
	q := mat.NewSymDense(e.n, nil)
	q.CopySym(e.q)
	return &Ellipsoid{
		UseParallelCut: e.UseParallelCut,
		NoDeferTrick:   e.NoDeferTrick,
		n:              e.n,
		c1:             e.c1,
		kappa:          e.kappa,
		xc:             append([]float64(nil), e.xc...),
		q:              q,
	}
}

// SetXc overwrites the centroid, e.g. to restore a saved solution.
func (e *Ellipsoid) SetXc(xc []float64) {
	copy(e.xc, xc)
}

// Update shrinks the ellipsoid under cut and returns the outcome status
// together with tau², the squared step size.
func (e *Ellipsoid) Update(cut Cut) (CutStatus, float64) {
	g := cut.G
	qgVec := mat.NewVecDense(e.n, nil)
	qgVec.MulVec(e.q, mat.NewVecDense(e.n, g))
	qg := qgVec.RawVector().Data

	gamma := f64.DotUnitary(g, qg)
	tsq := e.kappa * gamma
	tau := math.Sqrt(tsq)

	status, p := calcLL(e.n, e.c1, cut, tau, e.UseParallelCut)
	if status != StatusSuccess {
		return status, tsq
	}

	effQg := f64.ScaleTo(make([]float64, e.n), e.kappa, qg)
	f64.AxpyUnitary(-p.rho/tau, effQg, e.xc)

	e.q.SymRankOne(e.q, -p.sigma/gamma, qgVec)
	e.kappa *= p.delta
	if e.NoDeferTrick {
		e.q.ScaleSym(e.kappa, e.q)
		e.kappa = 1
	}

	return status, tsq
}
