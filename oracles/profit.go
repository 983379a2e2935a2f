// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/luk036/ellalgo-go/ell"
)

// ProfitOracle assesses the Cobb-Douglas profit maximization problem
//
//	maximize    p*A*x1^a1*x2^a2*... - v'x
//	subject to  x1 <= k
//
// in log-transformed decision variables y = log(x), so that the
// log-revenue term is linear in y.
type ProfitOracle struct {
	logPA float64
	logK  float64
	v     []float64
	a     []float64
}

// NewProfitOracle constructs the oracle for price p, output scale A, the
// output-variable bound k, Cobb-Douglas exponents a, and unit costs v.
func NewProfitOracle(p, A, k float64, a, v []float64) *ProfitOracle {
	return &ProfitOracle{
		logPA: math.Log(p * A),
		logK:  math.Log(k),
		v:     append([]float64(nil), v...),
		a:     append([]float64(nil), a...),
	}
}

// Assess implements oracle.OptimizationOracle for the profit problem.
func (o *ProfitOracle) Assess(y []float64, t float64) (ell.Cut, float64, bool) {
	if fj := y[0] - o.logK; fj > 0 {
		g := make([]float64, len(y))
		g[0] = 1
		return ell.NewDeepCut(g, fj), t, false
	}

	n := len(y)
	logCobb := o.logPA
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		logCobb += o.a[i] * y[i]
		x[i] = math.Exp(y[i])
	}

	vx := floats.Dot(o.v, x)
	te := t + vx
	fj := math.Log(te) - logCobb

	updated := false
	if fj < 0 {
		te = math.Exp(logCobb)
		t = te - vx
		fj = 0
		updated = true
	}

	g := make([]float64, n)
	for i := 0; i < n; i++ {
		g[i] = o.v[i]*x[i]/te - o.a[i]
	}
	if fj == 0 {
		return ell.NewCentralCut(g), t, updated
	}
	return ell.NewDeepCut(g, fj), t, updated
}

// ProfitRbOracle is the robust variant of ProfitOracle: it shrinks p and k
// and inflates v by a fixed margin e3, and perturbs the Cobb-Douglas
// exponents a by e depending on the sign of the current y — the worst case
// over an uncertainty box around the nominal parameters.
type ProfitRbOracle struct {
	uie   []float64
	a     []float64
	inner *ProfitOracle
}

// NewProfitRbOracle constructs the robust profit oracle with elasticity
// uncertainty e and price/output-bound margin e3.
func NewProfitRbOracle(p, A, k float64, a, v, e []float64, e3 float64) *ProfitRbOracle {
	n := len(v)
	vAdj := make([]float64, n)
	for i := range v {
		vAdj[i] = v[i] + e3
	}
	return &ProfitRbOracle{
		uie:   append([]float64(nil), e...),
		a:     append([]float64(nil), a...),
		inner: NewProfitOracle(p-e3, A, k-e3, a, vAdj),
	}
}

// Assess implements oracle.OptimizationOracle, re-deriving the worst-case
// exponents before delegating to the inner ProfitOracle.
func (o *ProfitRbOracle) Assess(y []float64, t float64) (ell.Cut, float64, bool) {
	aRb := make([]float64, len(o.a))
	copy(aRb, o.a)
	for i := range y {
		if y[i] > 0 {
			aRb[i] -= o.uie[i]
		} else {
			aRb[i] += o.uie[i]
		}
	}
	o.inner.a = aRb
	return o.inner.Assess(y, t)
}

// ProfitQOracle is the discrete variant of ProfitOracle: before assessing,
// y is rounded to the nearest lattice point (never letting exp(y) round to
// zero), and the resulting cut and witness point are reported against that
// rounded point rather than the continuous y.
type ProfitQOracle struct {
	inner *ProfitOracle
}

// NewProfitQOracle constructs the discrete profit oracle.
func NewProfitQOracle(p, A, k float64, a, v []float64) *ProfitQOracle {
	return &ProfitQOracle{inner: NewProfitOracle(p, A, k, a, v)}
}

// Assess implements oracle.DiscreteOracle.
func (o *ProfitQOracle) Assess(y []float64, t float64) (ell.Cut, float64, []float64, bool) {
	yd := make([]float64, len(y))
	for i, yi := range y {
		x := math.Round(math.Exp(yi))
		if x == 0 {
			x = 1
		}
		yd[i] = math.Log(x)
	}
	cut, newT, updated := o.inner.Assess(yd, t)
	return cut, newT, yd, updated
}
