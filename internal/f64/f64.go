// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package f64 provides the small set of dense float64 vector kernels the
// ellipsoid update engine needs. It mirrors the shape of gonum's
// internal/asm/f64 package (pure-Go fallback variants, no assembly), kept
// separate from gonum/floats so the ellipsoid core has no allocation-heavy
// dependency for its innermost loops.
package f64

import "math"

// DotUnitary returns the dot product of x and y.
//
//	for i, v := range x {
//		sum += y[i] * v
//	}
//	return sum
func DotUnitary(x, y []float64) float64 {
	var sum float64
	for i, v := range x {
		sum += y[i] * v
	}
	return sum
}

// ScaleUnitary scales x in place by alpha.
//
//	for i := range x {
//		x[i] *= alpha
//	}
func ScaleUnitary(alpha float64, x []float64) {
	for i := range x {
		x[i] *= alpha
	}
}

// ScaleTo stores alpha*x in dst and returns dst.
func ScaleTo(dst []float64, alpha float64, x []float64) []float64 {
	for i, v := range x {
		dst[i] = alpha * v
	}
	return dst
}

// AxpyUnitaryTo stores alpha*x+y in dst and returns dst.
func AxpyUnitaryTo(dst []float64, alpha float64, x, y []float64) []float64 {
	for i, v := range x {
		dst[i] = alpha*v + y[i]
	}
	return dst
}

// AxpyUnitary adds alpha*x to y in place.
func AxpyUnitary(alpha float64, x, y []float64) {
	for i, v := range x {
		y[i] += alpha * v
	}
}

// Ger performs the symmetric rank-one update
//
//	A += alpha * x * x^T
//
// on the strict upper triangle plus diagonal of the n×n row-major buffer a
// (row stride lda). Only i<=j entries are touched, matching the symmetric
// storage the ellipsoid's naive variant keeps for Q.
func Ger(n int, alpha float64, x []float64, a []float64, lda int) {
	for i := 0; i < n; i++ {
		axi := alpha * x[i]
		if axi == 0 {
			continue
		}
		row := a[i*lda+i : i*lda+n]
		AxpyUnitary(axi, x[i:], row)
	}
}

// L2NormUnitary returns the Euclidean norm of x.
func L2NormUnitary(x []float64) float64 {
	var ss float64
	for _, v := range x {
		ss += v * v
	}
	return math.Sqrt(ss)
}
