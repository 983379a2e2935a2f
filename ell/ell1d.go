// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ell

import "math"

// Ell1D is a one-dimensional ellipsoid, i.e. the interval [xc-r, xc+r].
type Ell1D struct {
	xc, r float64
}

// NewEll1D constructs the interval [xc-r, xc+r].
func NewEll1D(xc, r float64) *Ell1D {
	return &Ell1D{xc: xc, r: r}
}

// Xc returns the current center of the interval.
func (e *Ell1D) Xc() float64 { return e.xc }

// R returns the current radius of the interval.
func (e *Ell1D) R() float64 { return e.r }

// Copy returns an independent copy of e.
func (e *Ell1D) Copy() *Ell1D {
	c := *e
	return &c
}

// Update shrinks the interval under the cut g*(x-xc) + beta <= 0 and returns
// the outcome status together with tau² (the squared step size).
func (e *Ell1D) Update(g, beta float64) (CutStatus, float64) {
	tau := math.Abs(e.r * g)
	tsq := tau * tau

	if beta == 0 {
		e.r /= 2
		if g > 0 {
			e.xc -= e.r
		} else {
			e.xc += e.r
		}
		return StatusSuccess, tsq
	}
	if beta > tau {
		return StatusNoSoln, tsq
	}
	if beta < -tau {
		return StatusNoEffect, tsq
	}

	var l, u float64
	bound := e.xc - beta/g
	if g > 0 {
		u = bound
		l = e.xc - e.r
	} else {
		l = bound
		u = e.xc + e.r
	}
	e.r = (u - l) / 2
	e.xc = l + e.r
	return StatusSuccess, tsq
}
