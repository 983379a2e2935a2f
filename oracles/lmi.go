// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracles collects the example separation oracles described by the
// specification: linear/quadratic matrix inequalities, profit maximization
// (continuous, robust, and discrete variants), low-pass FIR filter design,
// optimal network scaling, and minimum-cycle-ratio on a directed graph.
// None of these are part of the core solver; they exist to exercise it.
package oracles

import (
	"github.com/luk036/ellalgo-go/ell"
	"github.com/luk036/ellalgo-go/ldlt"
)

// LMIOracle certifies the linear matrix inequality A(x) = B - sum_i
// Fi*xi ⪰ 0 by running LDLᵀ-ext on A(x) at each query point.
type LMIOracle struct {
	F []SymMat // F[0..n-1], the coefficient matrices
	B SymMat   // the constant term

	n int
	e *ldlt.LDLExt
}

// SymMat is a dense symmetric matrix stored as a flat, row-major n×n slice;
// only the upper triangle is read.
type SymMat struct {
	N    int
	Data []float64
}

// At returns m[i][j], reflecting across the diagonal for i > j.
func (m SymMat) At(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	return m.Data[i*m.N+j]
}

// NewLMIOracle constructs an oracle for A(x) = B - sum_i Fi*xi.
func NewLMIOracle(f []SymMat, b SymMat) *LMIOracle {
	return &LMIOracle{F: f, B: b, n: b.N, e: ldlt.New(b.N)}
}

// Assess runs LDLᵀ-ext on A(x); if SPD, x is feasible. Otherwise it builds
// the cut (g, beta) with g_i = v'*Fi*v and beta = -v'*A(x)*v, read off the
// witness vector via sym_quad without reconstructing A(x).
func (o *LMIOracle) Assess(x []float64) (ell.Cut, bool) {
	getA := func(i, j int) float64 {
		v := o.B.At(i, j)
		for k, fk := range o.F {
			v -= fk.At(i, j) * x[k]
		}
		return v
	}

	if o.e.Factor(getA) {
		return ell.Cut{}, true
	}
	o.e.Witness()

	g := make([]float64, len(o.F))
	for k, fk := range o.F {
		g[k] = o.e.SymQuad(fk.At)
	}
	beta := -o.e.SymQuad(getA)
	return ell.NewDeepCut(g, beta), false
}
