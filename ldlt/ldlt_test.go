// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldlt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func matGet(a [][]float64) func(i, j int) float64 {
	return func(i, j int) float64 {
		if i <= j {
			return a[i][j]
		}
		return a[j][i]
	}
}

func TestSPD(t *testing.T) {
	a := [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}
	e := New(3)
	ok := e.Factorize(matGet(a))
	assert.True(t, ok)
	assert.True(t, e.IsSPD())
	assert.Equal(t, Range{0, 0}, e.Range())
}

// TestIndefiniteWitness exercises scenario S6 from the specification: a
// symmetric matrix with a zero leading pivot.
func TestIndefiniteWitness(t *testing.T) {
	a := [][]float64{
		{0, 15, -5},
		{15, 18, 0},
		{-5, 0, 11},
	}
	e := New(3)
	ok := e.Factorize(matGet(a))
	assert.False(t, ok)
	assert.Equal(t, 1, e.Range().Stop)
}

func TestIndefiniteWitnessSemidefiniteRestarts(t *testing.T) {
	a := [][]float64{
		{0, 15, -5},
		{15, 18, 0},
		{-5, 0, 11},
	}
	e := New(3)
	e.AllowSemidefinite = true
	e.Factorize(matGet(a))
	assert.Equal(t, 1, e.Range().Start)
}

func TestWitnessCertificate(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{2, 1},
	}
	e := New(2)
	ok := e.Factorize(matGet(a))
	assert.False(t, ok)
	val := e.Witness()
	assert.Greater(t, val, 0.0)
	v := e.WitnessVector()
	quad := quadForm(a, v)
	assert.InDelta(t, -val, quad, 1e-9)
}

func TestSymQuadMatchesWitness(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{2, 1},
	}
	b := [][]float64{
		{3, -1},
		{-1, 5},
	}
	e := New(2)
	e.Factorize(matGet(a))
	e.Witness()
	got := e.SymQuad(matGet(b))
	v := e.WitnessVector()
	want := quadForm(b, v)
	assert.InDelta(t, want, got, 1e-9)
}

func TestSqrtReconstructsA(t *testing.T) {
	a := [][]float64{
		{4, 2, 0},
		{2, 5, 1},
		{0, 1, 3},
	}
	e := New(3)
	ok := e.Factorize(matGet(a))
	assert.True(t, ok)
	r := e.Sqrt()
	n := 3
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var got float64
			for k := 0; k < n; k++ {
				got += r[k*n+i] * r[k*n+j]
			}
			assert.InDelta(t, a[i][j], got, 1e-9)
		}
	}
}

func TestRandomSPDAlwaysFactorizes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		n := 4
		m := make([][]float64, n)
		for i := range m {
			m[i] = make([]float64, n)
		}
		// Build A = M*M' + n*I so it's SPD.
		raw := make([][]float64, n)
		for i := range raw {
			raw[i] = make([]float64, n)
			for j := range raw[i] {
				raw[i][j] = rng.NormFloat64()
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				var s float64
				for k := 0; k < n; k++ {
					s += raw[i][k] * raw[j][k]
				}
				if i == j {
					s += float64(n)
				}
				m[i][j] = s
			}
		}
		e := New(n)
		ok := e.Factorize(matGet(m))
		assert.True(t, ok)
	}
}

func quadForm(a [][]float64, v []float64) float64 {
	var s float64
	for i := range v {
		for j := range v {
			var aij float64
			if i <= j {
				aij = a[i][j]
			} else {
				aij = a[j][i]
			}
			s += v[i] * aij * v[j]
		}
	}
	return s
}

func TestWitnessPanicsOnSPD(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic calling Witness on an SPD factorization")
		}
	}()
	a := [][]float64{{1, 0}, {0, 1}}
	e := New(2)
	e.Factorize(matGet(a))
	e.Witness()
}

func TestSqrtPanicsOnIndefinite(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic calling Sqrt on a non-SPD factorization")
		}
	}()
	a := [][]float64{{1, 2}, {2, 1}}
	e := New(2)
	e.Factorize(matGet(a))
	e.Sqrt()
}
