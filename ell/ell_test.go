// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ell

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestEll1DCentralCut(t *testing.T) {
	e := NewEll1D(0, 1)
	status, tsq := e.Update(1, 0)
	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, 1.0, tsq)
	assert.Equal(t, -0.5, e.Xc())
	assert.Equal(t, 0.5, e.R())
}

func TestEll1DNoSoln(t *testing.T) {
	e := NewEll1D(0, 1)
	status, _ := e.Update(1, 2)
	assert.Equal(t, StatusNoSoln, status)
}

func TestEll1DNoEffect(t *testing.T) {
	e := NewEll1D(0, 1)
	status, _ := e.Update(1, -2)
	assert.Equal(t, StatusNoEffect, status)
}

// TestEllipsoidVolumeContracts checks property 1 from the specification:
// every successful central-cut update strictly shrinks the volume proxy
// det(Q)*kappa^n by the fixed factor c1^n*(1-sigma), sigma = 2/(n+1) for a
// central cut, which is below 1.
func TestEllipsoidVolumeContracts(t *testing.T) {
	e := NewEllipsoid([]float64{1, 1, 1}, []float64{0, 0, 0})
	before := effectiveDet(e)
	status, _ := e.Update(NewCentralCut([]float64{1, 0, 0}))
	assert.Equal(t, StatusSuccess, status)
	after := effectiveDet(e)
	ratio := after / before
	want := math.Pow(e.c1, float64(e.n)) * (1 - 2/float64(e.n+1))
	assert.InDelta(t, want, ratio, 1e-9)
}

func effectiveDet(e *Ellipsoid) float64 {
	q := e.Q()
	var chol mat.Cholesky
	ok := chol.Factorize(q)
	if !ok {
		t := mat.NewDense(e.n, e.n, nil)
		t.Copy(q)
		return mat.Det(t)
	}
	return chol.Det()
}

// TestEllipsoidContainsCenterAfterUpdate checks property from §8: the new
// centroid always lies strictly inside the pre-update ellipsoid.
func TestEllipsoidContainsCenterAfterUpdate(t *testing.T) {
	e := NewEllipsoid([]float64{4, 9}, []float64{1, 1})
	status, _ := e.Update(NewDeepCut([]float64{1, 1}, 0.1))
	assert.Equal(t, StatusSuccess, status)
	assert.NotEqual(t, []float64{1, 1}, e.Xc())
	d0, d1 := e.Xc()[0]-1, e.Xc()[1]-1
	assert.Less(t, d0*d0/4+d1*d1/9, 1.0)
}

// TestEllipsoidParallelCutReducesToDeepCut checks property 6: a parallel
// cut whose upper bound beta1 >= tau must shrink bit-identically to a deep
// cut on beta alone.
func TestEllipsoidParallelCutReducesToDeepCut(t *testing.T) {
	e1 := NewEllipsoid([]float64{1, 1}, []float64{0, 0})
	e2 := e1.Copy()

	g := []float64{1, 0}
	s1, t1 := e1.Update(NewDeepCut(g, 0.1))
	s2, t2 := e2.Update(NewParallelCut(g, 0.1, 100))

	assert.Equal(t, s1, s2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, e1.Xc(), e2.Xc())
}

func TestEllipsoidCopyIsIndependent(t *testing.T) {
	e1 := NewEllipsoidSphere(1, []float64{0, 0})
	e2 := e1.Copy()
	e1.Update(NewCentralCut([]float64{1, 0}))
	assert.NotEqual(t, e1.Xc(), e2.Xc())
}

// TestEllipsoidStableMatchesNaive checks that, modulo floating-point noise,
// the LDLT-factored stable variant produces the same centroid trajectory
// and tau² sequence as the naive explicit-Q variant for the same cuts.
func TestEllipsoidStableMatchesNaive(t *testing.T) {
	naive := NewEllipsoid([]float64{10, 10, 10}, []float64{0, 0, 0})
	stable := NewEllipsoidStable([]float64{10, 10, 10}, []float64{0, 0, 0})

	cuts := []Cut{
		NewCentralCut([]float64{1, 0, 0}),
		NewDeepCut([]float64{0, 1, 0}, 0.2),
		NewParallelCut([]float64{0, 0, 1}, 0.05, 0.3),
	}

	for _, cut := range cuts {
		s1, t1 := naive.Update(cut)
		s2, t2 := stable.Update(cut)
		assert.Equal(t, s1, s2)
		assert.InDelta(t, t1, t2, 1e-9)
		for i := range naive.Xc() {
			assert.InDelta(t, naive.Xc()[i], stable.Xc()[i], 1e-9)
		}
	}
}

// TestEllipsoidStableStaysSPD checks property 2: the stable ellipsoid's
// reconstructed shape matrix remains symmetric positive definite after a
// sequence of updates, even though Q is never stored explicitly.
func TestEllipsoidStableStaysSPD(t *testing.T) {
	e := NewEllipsoidStable([]float64{4, 4, 4}, []float64{0, 0, 0})
	e.Update(NewDeepCut([]float64{1, 0, 0}, 0.3))
	e.Update(NewDeepCut([]float64{0, 1, 1}, 0.1))

	q := e.Reconstruct()
	var chol mat.Cholesky
	ok := chol.Factorize(mat.NewSymDense(3, symmetrize(q)))
	assert.True(t, ok)
}

// TestEllipsoidStableMatchesNaiveRandomized extends
// TestEllipsoidStableMatchesNaive with randomly generated deep cuts, the way
// gonum/optimize/convex/lp's affine-scaling solver uses golang.org/x/exp/rand
// for its own randomized construction. cmp.Diff with cmpopts.EquateApprox
// tolerates the floating-point drift between the two update formulas.
func TestEllipsoidStableMatchesNaiveRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const n = 4
	val := []float64{5, 5, 5, 5}
	x0 := []float64{0, 0, 0, 0}
	naive := NewEllipsoid(val, x0)
	stable := NewEllipsoidStable(val, x0)

	for i := 0; i < 20; i++ {
		g := make([]float64, n)
		for j := range g {
			g[j] = rng.Float64()*2 - 1
		}
		beta := (rng.Float64() - 0.5) * 0.1
		cut := NewDeepCut(g, beta)

		s1, t1 := naive.Update(cut)
		s2, t2 := stable.Update(cut)
		if s1 != StatusSuccess {
			break
		}
		assert.Equal(t, s1, s2)
		assert.InDelta(t, t1, t2, 1e-6)
		if diff := cmp.Diff(naive.Xc(), stable.Xc(), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Errorf("centroid mismatch after update %d (-naive +stable):\n%s", i, diff)
		}
	}
}

func symmetrize(m *mat.Dense) []float64 {
	r, c := m.Dims()
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i*c+j] = m.At(i, j)
		}
	}
	return out
}
