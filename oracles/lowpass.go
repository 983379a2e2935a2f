// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/luk036/ellalgo-go/ell"
)

// LowpassDesign holds the discretized FIR design matrices and bounds built
// by BuildLowpassDesign, ready to feed LowpassOracle.
type LowpassDesign struct {
	Ap, As, Anr Mat
	Lpsq, Upsq  float64
	Spsq0       float64
}

// BuildLowpassDesign discretizes the autocorrelation-coefficient design for
// an N-tap FIR lowpass filter over m frequency samples in [0, pi], with
// passband edge wpass, stopband edge wstop, and fractional ripple
// deltaPass/deltaStop in each band. It follows the spectral-factorization
// formulation: the decision vector r (length N) are autocorrelation
// coefficients, and A*r gives the squared-magnitude response R(w) at each
// sampled w.
func BuildLowpassDesign(nTaps, m int, wpass, wstop, deltaPass, deltaStop float64) LowpassDesign {
	w := make([]float64, m)
	for i := 0; i < m; i++ {
		w[i] = math.Pi * float64(i) / float64(m-1)
	}

	a := Mat{Rows: m, Cols: nTaps, Data: make([]float64, m*nTaps)}
	for i := 0; i < m; i++ {
		a.Data[i*nTaps] = 1
		for k := 1; k < nTaps; k++ {
			a.Data[i*nTaps+k] = 2 * math.Cos(float64(k)*w[i])
		}
	}

	indPEnd := 0
	for indPEnd < m && w[indPEnd] <= wpass {
		indPEnd++
	}
	indSStart := m
	for i := m - 1; i >= 0; i-- {
		if w[i] >= wstop {
			indSStart = i
		} else {
			break
		}
	}

	deltaDB := 20 * math.Log10(1+deltaPass)
	delta2DB := 20 * math.Log10(deltaStop)
	lp := math.Pow(10, -deltaDB/20)
	up := math.Pow(10, deltaDB/20)
	sp := math.Pow(10, delta2DB/20)

	return LowpassDesign{
		Ap:    subRows(a, 0, indPEnd),
		As:    subRows(a, indSStart, m),
		Anr:   subRows(a, indPEnd, indSStart),
		Lpsq:  lp * lp,
		Upsq:  up * up,
		Spsq0: sp * sp,
	}
}

func subRows(m Mat, start, stop int) Mat {
	rows := stop - start
	out := Mat{Rows: rows, Cols: m.Cols, Data: make([]float64, rows*m.Cols)}
	copy(out.Data, m.Data[start*m.Cols:stop*m.Cols])
	return out
}

func (m Mat) row(i int) []float64 { return m.Data[i*m.Cols : (i+1)*m.Cols] }

func dotRow(row, x []float64) float64 { return floats.Dot(row, x) }

// LowpassOracle assesses a trial autocorrelation-coefficient vector x
// against the nonnegative-real, passband, and stopband constraints of an
// FIR lowpass filter design, returning the current worst-case stopband
// objective as t. Its round-robin cursors (iAp, iAs, iAnr) advance whenever
// Assess reports a violated row, so that repeated violations of the same row
// are not always what gets reported first — this spreads cuts across the
// constraint set instead of hammering row 0 every iteration.
type LowpassOracle struct {
	ap, as, anr Mat
	lpsq, upsq  float64

	iAp, iAs, iAnr int
}

// NewLowpassOracle constructs the oracle from a prebuilt design.
func NewLowpassOracle(d LowpassDesign) *LowpassOracle {
	return &LowpassOracle{ap: d.Ap, as: d.As, anr: d.Anr, lpsq: d.Lpsq, upsq: d.Upsq}
}

// Assess implements oracle.OptimizationOracle against Spsq, the best-known
// worst-case stopband energy.
func (o *LowpassOracle) Assess(x []float64, spsq float64) (ell.Cut, float64, bool) {
	n := len(x)

	if x[0] < 0 {
		g := make([]float64, n)
		g[0] = -1
		return ell.NewDeepCut(g, -x[0]), spsq, false
	}

	if np := o.ap.Rows; np > 0 {
		for i := 0; i < np; i++ {
			k := (o.iAp + i) % np
			row := o.ap.row(k)
			v := dotRow(row, x)
			switch {
			case v > o.upsq:
				o.iAp = k + 1
				return ell.NewParallelCut(append([]float64(nil), row...), v-o.upsq, v-o.lpsq), spsq, false
			case v < o.lpsq:
				o.iAp = k + 1
				g := negate(row)
				return ell.NewParallelCut(g, -v+o.lpsq, -v+o.upsq), spsq, false
			}
		}
	}

	ns := o.as.Rows
	fmax := math.Inf(-1)
	imax := 0
	for i := 0; i < ns; i++ {
		k := (o.iAs + i) % ns
		row := o.as.row(k)
		v := dotRow(row, x)
		switch {
		case v > spsq:
			o.iAs = k + 1
			return ell.NewParallelCut(append([]float64(nil), row...), v-spsq, v), spsq, false
		case v < 0:
			o.iAs = k + 1
			g := negate(row)
			return ell.NewParallelCut(g, -v, -v+spsq), spsq, false
		}
		if v > fmax {
			fmax = v
			imax = k
		}
	}

	if nnr := o.anr.Rows; nnr > 0 {
		for i := 0; i < nnr; i++ {
			k := (o.iAnr + i) % nnr
			row := o.anr.row(k)
			v := dotRow(row, x)
			if v < 0 {
				o.iAnr = k + 1
				return ell.NewDeepCut(negate(row), -v), spsq, false
			}
		}
	}

	newSpsq := fmax
	g := append([]float64(nil), o.as.row(imax)...)
	return ell.NewParallelCut(g, 0, fmax), newSpsq, true
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}
