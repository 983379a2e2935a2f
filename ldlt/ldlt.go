// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ldlt implements LDLᵀ-ext, a square-root-free incremental
// factorization that either certifies a symmetric matrix positive
// (semi-)definite or returns the smallest leading principal submatrix that
// is not, together with a witness vector v such that v'·A[start:stop,
// start:stop]·v < 0. It is the computational core of the LMI and QMI
// separation oracles.
package ldlt

import "math"

// Range is a half-open row range [Start, Stop) where the factorization
// stopped. Start == Stop == 0 means the matrix is positive definite
// (semi-definite if AllowSemidefinite).
type Range struct {
	Start, Stop int
}

// LDLExt is an incremental LDLᵀ factorization of a symmetric matrix,
// reusable across calls to Factor/Factorize without per-call allocation.
//
// T double-duties as the scratch buffer: the strict lower triangle holds
// the L entries, the diagonal holds the D entries, and the strict upper
// triangle is free for lazy-factorization temporaries. This is intrusive on
// purpose — it mirrors the original ellcpp chol_ext/ldlt_ext layout rather
// than splitting into two buffers.
type LDLExt struct {
	// AllowSemidefinite switches the stopping rule from "d <= 0 stops" to
	// "d < 0 stops, d == 0 restarts the window at the next row".
	AllowSemidefinite bool

	n int
	t []float64 // n*n, row-major
	p Range
	v []float64
}

// New returns an LDLExt sized for n×n matrices.
func New(n int) *LDLExt {
	return &LDLExt{
		n: n,
		t: make([]float64, n*n),
		v: make([]float64, n),
	}
}

func (e *LDLExt) at(i, j int) float64     { return e.t[i*e.n+j] }
func (e *LDLExt) set(i, j int, v float64) { e.t[i*e.n+j] = v }

// Range returns the half-open row range where factorization stopped.
func (e *LDLExt) Range() Range { return e.p }

// Factorize runs the factorization against a fully materialized symmetric
// matrix accessed through get(i, j).
func (e *LDLExt) Factorize(get func(i, j int) float64) bool {
	return e.Factor(get)
}

// Factor performs the square-root-free LDLᵀ factorization, calling getA
// lazily for each element it needs. See the package doc for the layout of
// the scratch buffer T.
func (e *LDLExt) Factor(getA func(i, j int) float64) bool {
	start, stop := 0, 0
	for i := 0; i < e.n; i++ {
		var d float64
		for j := start; j < i; j++ {
			d = getA(i, j)
			for k := start; k < j; k++ {
				d -= e.at(i, k) * e.at(k, j)
			}
			e.set(j, i, d)         // scratch
			e.set(i, j, d/e.at(j, j)) // L entry
		}
		d = getA(i, i)
		for k := start; k < i; k++ {
			d -= e.at(i, k) * e.at(k, i)
		}
		e.set(i, i, d)

		if e.AllowSemidefinite {
			switch {
			case d < 0:
				stop = i + 1
			case d == 0:
				start = i + 1
				continue
			default:
				continue
			}
		} else {
			if d <= 0 {
				stop = i + 1
			} else {
				continue
			}
		}
		break
	}
	e.p = Range{Start: start, Stop: stop}
	return e.IsSPD()
}

// IsSPD reports whether the last factorization found the matrix positive
// (semi-)definite.
func (e *LDLExt) IsSPD() bool { return e.p.Stop == 0 }

// Witness builds a nonzero vector v of length Range().Stop (read it with
// WitnessVector) and returns a strictly positive value such that
// v'·A[Range().Start:Range().Stop, Range().Start:Range().Stop]·v equals
// -value, the certificate that A is not positive (semi-)definite. Witness
// panics if the last
// factorization found A positive (semi-)definite.
func (e *LDLExt) Witness() float64 {
	if e.IsSPD() {
		panic("ldlt: Witness called on a positive (semi-)definite factorization")
	}
	start, stop := e.p.Start, e.p.Stop
	m := stop - 1
	for i := range e.v {
		e.v[i] = 0
	}
	e.v[m] = 1
	for i := m; i > start; i-- {
		var s float64
		for k := i; k < stop; k++ {
			s += e.at(k, i-1) * e.v[k]
		}
		e.v[i-1] = -s
	}
	return -e.at(m, m)
}

// WitnessVector returns the witness vector built by the most recent call to
// Witness, valid over [0, Range().Stop).
func (e *LDLExt) WitnessVector() []float64 {
	return e.v[:e.p.Stop]
}

// SymQuad computes v'·A[start:stop, start:stop]·v for the witness vector v
// produced by Witness and an arbitrary symmetric matrix A of the same shape
// accessed through get(i, j) (i<=j), exploiting symmetry to halve the work.
func (e *LDLExt) SymQuad(get func(i, j int) float64) float64 {
	start, stop := e.p.Start, e.p.Stop
	v := e.v
	var res float64
	for i := start; i < stop; i++ {
		var s float64
		for j := i + 1; j < stop; j++ {
			s += get(i, j) * v[j]
		}
		res += v[i] * (get(i, i)*v[i] + 2*s)
	}
	return res
}

// Sqrt returns the upper-triangular n×n matrix R (row-major, n*n) such that
// R'R = A for the most recently factorized positive definite A. Sqrt panics
// if the last factorization did not find A positive definite.
func (e *LDLExt) Sqrt() []float64 {
	if !e.IsSPD() {
		panic("ldlt: Sqrt called on a non positive-definite factorization")
	}
	m := make([]float64, e.n*e.n)
	for i := 0; i < e.n; i++ {
		rii := math.Sqrt(e.at(i, i))
		m[i*e.n+i] = rii
		for j := i + 1; j < e.n; j++ {
			m[i*e.n+j] = e.at(j, i) * rii
		}
	}
	return m
}
