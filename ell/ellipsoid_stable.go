// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ell

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/luk036/ellalgo-go/internal/f64"
)

// EllipsoidStable is the numerically stable n-D ellipsoid. It implements the
// same external contract as Ellipsoid (Xc, Update, Copy) but never stores Q
// explicitly: Q = L^-T D^-1 L^-1 (L unit lower-triangular) is kept as a
// single dense n×n buffer — strict upper triangle holds L' (L transposed),
// the diagonal holds D^-1, and the
// strict lower triangle is scratch reused on every Update call. This keeps Q
// symmetric positive definite by construction, modulo floating-point error.
type EllipsoidStable struct {
	UseParallelCut bool
	NoDeferTrick   bool

	n     int
	c1    float64
	kappa float64
	xc    []float64
	t     *mat.Dense // n×n: strict-upper = L', diag = D^-1, strict-lower = scratch
}

// NewEllipsoidStable constructs the stable ellipsoid with initial shape
// diag(val) and center xc.
func NewEllipsoidStable(val []float64, xc []float64) *EllipsoidStable {
	n := len(xc)
	t := mat.NewDense(n, n, nil)
	for i, v := range val {
		t.Set(i, i, v)
	}
	return newEllipsoidStable(n, 1, xc, t)
}

// NewEllipsoidStableSphere constructs the stable ellipsoid with initial
// shape alpha*I and center xc.
func NewEllipsoidStableSphere(alpha float64, xc []float64) *EllipsoidStable {
	n := len(xc)
	t := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		t.Set(i, i, 1)
	}
	return newEllipsoidStable(n, alpha, xc, t)
}

func newEllipsoidStable(n int, kappa float64, xc []float64, t *mat.Dense) *EllipsoidStable {
	nf := float64(n)
	return &EllipsoidStable{
		UseParallelCut: true,
		n:              n,
		c1:             nf * nf / (nf*nf - 1),
		kappa:          kappa,
		xc:             append([]float64(nil), xc...),
		t:              t,
	}
}

// Xc returns the current centroid.
func (e *EllipsoidStable) Xc() []float64 { return e.xc }

// Kappa returns the current deferred scale factor.
func (e *EllipsoidStable) Kappa() float64 { return e.kappa }

// Copy returns an independent copy of e.
func (e *EllipsoidStable) Copy() *EllipsoidStable {
	t := mat.NewDense(e.n, e.n, nil)
	t.Copy(e.t)
	return &EllipsoidStable{
		UseParallelCut: e.UseParallelCut,
		NoDeferTrick:   e.NoDeferTrick,
		n:              e.n,
		c1:             e.c1,
		kappa:          e.kappa,
		xc:             append([]float64(nil), e.xc...),
		t:              t,
	}
}

// SetXc overwrites the centroid.
func (e *EllipsoidStable) SetXc(xc []float64) {
	copy(e.xc, xc)
}

// Reconstruct rebuilds the effective shape matrix kappa*L^-T*D^-1*L^-1 as a dense
// matrix, purely for property tests (§8.2: SPD preservation) that need to
// inspect eigenvalues.
func (e *EllipsoidStable) Reconstruct() *mat.Dense {
	n := e.n
	l := mat.NewDense(n, n, nil)
	dinv := mat.NewDiagDense(n, nil)
	for i := 0; i < n; i++ {
		l.Set(i, i, 1)
		dinv.SetDiag(i, e.t.At(i, i))
		for j := i + 1; j < n; j++ {
			l.Set(j, i, e.t.At(i, j))
		}
	}
	var linv, ld, q mat.Dense
	if err := linv.Inverse(l); err != nil {
		panic(err)
	}
	ld.Mul(linv.T(), dinv)
	q.Mul(&ld, &linv)
	q.Scale(e.kappa, &q)
	return &q
}

// Update shrinks the ellipsoid under cut and returns the outcome status
// together with tau², the squared step size.
func (e *EllipsoidStable) Update(cut Cut) (CutStatus, float64) {
	n := e.n
	g := cut.G

	// Forward substitution: solve L*y = g, storing L(i,j)*y(j) scratch in
	// the strict lower triangle for reuse by the rank-one update below.
	y := append([]float64(nil), g...)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			v := e.t.At(j, i) * y[j]
			e.t.Set(i, j, v)
			y[i] -= v
		}
	}

	// z = D^-1 * y, omega = y'*z = g'*Q*g, the same quadratic form naive
	// calls gamma.
	z := make([]float64, n)
	var omega float64
	for i := 0; i < n; i++ {
		z[i] = y[i] * e.t.At(i, i)
		omega += y[i] * z[i]
	}

	tsq := e.kappa * omega
	tau := math.Sqrt(tsq)
	status, p := calcLL(n, e.c1, cut, tau, e.UseParallelCut)
	if status != StatusSuccess {
		return status, tsq
	}

	// Back substitution: solve L'*u = z, giving u = Q*g (not yet scaled by
	// kappa, same as naive's qg).
	u := append([]float64(nil), z...)
	for i := n - 1; i > 0; i-- {
		for j := i; j < n; j++ {
			u[i-1] -= e.t.At(i-1, j) * u[j]
		}
	}
	effU := f64.ScaleTo(make([]float64, n), e.kappa, u)
	f64.AxpyUnitary(-p.rho/tau, effU, e.xc)

	// Rank-one update of the LDL' factors.
	r := p.sigma / omega
	mu := r / (1 - p.sigma)
	oldt := 1.0
	w := append([]float64(nil), g...)
	for j := 0; j < n; j++ {
		pj := w[j]
		mup := mu * pj
		dinv := e.t.At(j, j)
		t := oldt + mup*pj*dinv
		dinv /= t
		beta := mup * dinv
		dinv *= oldt
		e.t.Set(j, j, dinv)
		for l := j + 1; l < n; l++ {
			w[l] -= e.t.At(l, j)
			e.t.Set(j, l, e.t.At(j, l)+beta*w[l])
		}
		oldt = t
	}

	e.kappa *= p.delta
	if e.NoDeferTrick {
		for i := 0; i < n; i++ {
			e.t.Set(i, i, e.t.At(i, i)*e.kappa)
		}
		e.kappa = 1
	}

	return status, tsq
}
