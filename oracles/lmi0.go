// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"github.com/luk036/ellalgo-go/ell"
	"github.com/luk036/ellalgo-go/ldlt"
)

// LMI0Oracle certifies the homogeneous linear matrix inequality A(x) =
// sum_i Fi*xi ⪰ 0, used when the feasible set is a cone through the
// origin and no constant term B applies.
type LMI0Oracle struct {
	F []SymMat

	n int
	e *ldlt.LDLExt
}

// NewLMI0Oracle constructs an oracle for A(x) = sum_i Fi*xi.
func NewLMI0Oracle(f []SymMat) *LMI0Oracle {
	n := f[0].N
	return &LMI0Oracle{F: f, n: n, e: ldlt.New(n)}
}

// Assess mirrors LMIOracle.Assess without the constant term B.
func (o *LMI0Oracle) Assess(x []float64) (ell.Cut, bool) {
	getA := func(i, j int) float64 {
		var v float64
		for k, fk := range o.F {
			v += fk.At(i, j) * x[k]
		}
		return v
	}

	if o.e.Factor(getA) {
		return ell.Cut{}, true
	}
	o.e.Witness()

	g := make([]float64, len(o.F))
	for k, fk := range o.F {
		g[k] = -o.e.SymQuad(fk.At)
	}
	beta := -o.e.SymQuad(getA)
	return ell.NewDeepCut(g, beta), false
}
