// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"github.com/luk036/ellalgo-go/ell"
	"github.com/luk036/ellalgo-go/ldlt"
)

// Mat is a dense, row-major matrix used by QMIOracle, where F0 and each Fk
// need not be square.
type Mat struct {
	Rows, Cols int
	Data       []float64 // row-major, length Rows*Cols
}

// At returns m[r][c].
func (m Mat) At(r, c int) float64 { return m.Data[r*m.Cols+c] }

// QMIOracle certifies the quadratic matrix inequality t*I - F(x)'F(x) ⪰ 0,
// where F(x) = F0 - sum_k Fk*xk. Columns of F(x) are expensive (each is a
// dense combination of every Fk), so they are computed lazily and memoized
// per Assess call, reused across the O(p) factorization queries that touch
// them.
type QMIOracle struct {
	F0 Mat
	F  []Mat
	t  float64

	p    int
	e    *ldlt.LDLExt
	cols [][]float64
}

// NewQMIOracle constructs an oracle for F(x) = F0 - sum_k Fk*xk, testing
// t*I - F(x)'F(x) ⪰ 0 at whatever t was last set with SetT.
func NewQMIOracle(f0 Mat, f []Mat) *QMIOracle {
	return &QMIOracle{F0: f0, F: f, p: f0.Cols, e: ldlt.New(f0.Cols)}
}

// SetT updates the threshold t tested by Assess, for callers driving a
// bisection search over t.
func (o *QMIOracle) SetT(t float64) { o.t = t }

func (o *QMIOracle) column(x []float64, j int) []float64 {
	if o.cols[j] != nil {
		return o.cols[j]
	}
	m := o.F0.Rows
	col := make([]float64, m)
	for r := 0; r < m; r++ {
		v := o.F0.At(r, j)
		for k, fk := range o.F {
			v -= fk.At(r, j) * x[k]
		}
		col[r] = v
	}
	o.cols[j] = col
	return col
}

// Assess implements oracle.FeasibilityOracle: it certifies t*I -
// F(x)'F(x) ⪰ 0 at the current x and the threshold set by SetT.
func (o *QMIOracle) Assess(x []float64) (ell.Cut, bool) {
	o.cols = make([][]float64, o.p)
	getA := func(i, j int) float64 {
		ci, cj := o.column(x, i), o.column(x, j)
		var dot float64
		for k := range ci {
			dot += ci[k] * cj[k]
		}
		v := -dot
		if i == j {
			v += o.t
		}
		return v
	}

	if o.e.Factor(getA) {
		return ell.Cut{}, true
	}

	beta := o.e.Witness()
	v := o.e.WitnessVector()
	p := len(v)
	m := o.F0.Rows

	av := make([]float64, m)
	for j := 0; j < p; j++ {
		col, vj := o.column(x, j), v[j]
		for r := 0; r < m; r++ {
			av[r] += vj * col[r]
		}
	}

	g := make([]float64, len(o.F))
	for k, fk := range o.F {
		var s float64
		for j := 0; j < p; j++ {
			vj := v[j]
			for r := 0; r < m; r++ {
				s += vj * fk.At(r, j) * av[r]
			}
		}
		g[k] = -2 * s
	}
	return ell.NewDeepCut(g, beta), false
}
