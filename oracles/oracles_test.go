// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/luk036/ellalgo-go/cutting"
	"github.com/luk036/ellalgo-go/ell"
)

// sym2 builds a 2x2 symmetric matrix [[a, b], [b, c]] in the row-major
// layout SymMat.At expects (only the upper triangle is ever read).
func sym2(a, b, c float64) SymMat {
	return SymMat{N: 2, Data: []float64{a, b, b, c}}
}

// TestLMIOracleConverges exercises a 2-variable LMI feasibility problem
// from §8 scenario S3's family: find x with B - F1*x1 - F2*x2 PSD.
func TestLMIOracleConverges(t *testing.T) {
	f1 := sym2(-1, 0, -1)
	f2 := sym2(0, -1, 0)
	b := sym2(10, 2, 10)

	oracle := NewLMIOracle([]SymMat{f1, f2}, b)
	space := ell.NewEllipsoidSphere(100, []float64{0, 0})
	log := zerolog.Nop()

	x, info := cutting.CuttingPlaneFeas(context.Background(), oracle, space, cutting.DefaultOptions(), log)
	assert.True(t, info.Feasible)
	assert.Len(t, x, 2)
}

func TestLMI0OracleConverges(t *testing.T) {
	f1 := sym2(1, 0, 1)
	f2 := sym2(0, 1, 0)

	oracle := NewLMI0Oracle([]SymMat{f1, f2})
	space := ell.NewEllipsoidSphere(100, []float64{1, 1})
	log := zerolog.Nop()

	_, info := cutting.CuttingPlaneFeas(context.Background(), oracle, space, cutting.DefaultOptions(), log)
	assert.True(t, info.Feasible)
}

// TestProfitOracleMatchesScenario exercises scenario S4: p=20, A=40,
// k=30.5, a=(0.1,0.4), v=(10,35), initial sphere alpha 100 (radius 10) centered at origin.
func TestProfitOracleMatchesScenario(t *testing.T) {
	omega := NewProfitOracle(20, 40, 30.5, []float64{0.1, 0.4}, []float64{10, 35})
	space := ell.NewEllipsoidSphere(100, []float64{0, 0})
	log := zerolog.Nop()

	y, _, info := cutting.CuttingPlaneDC(context.Background(), omega, space, 0, cutting.Options{MaxIt: 2000, Tol: 1e-8}, log)
	assert.True(t, info.Feasible)
	assert.LessOrEqual(t, y[0], math.Log(30.5)+1e-6)
}

func TestProfitRbOracleFeasible(t *testing.T) {
	omega := NewProfitRbOracle(20, 40, 30.5, []float64{0.1, 0.4}, []float64{10, 35}, []float64{0.003, 0.007}, 1)
	space := ell.NewEllipsoidSphere(100, []float64{0, 0})
	log := zerolog.Nop()

	y, _, info := cutting.CuttingPlaneDC(context.Background(), omega, space, 0, cutting.Options{MaxIt: 2000, Tol: 1e-8}, log)
	assert.True(t, info.Feasible)
	assert.LessOrEqual(t, y[0], math.Log(30.5)+1e-6)
}

func TestProfitQOracleFeasible(t *testing.T) {
	omega := NewProfitQOracle(20, 40, 30.5, []float64{0.1, 0.4}, []float64{10, 35})
	space := ell.NewEllipsoidSphere(100, []float64{2, 0})
	log := zerolog.Nop()

	_, _, info := cutting.CuttingPlaneQ(context.Background(), omega, space, 0, cutting.Options{MaxIt: 2000, Tol: 1e-8}, log)
	assert.True(t, info.Feasible)
}

// TestLowpassDesignFeasible exercises scenario S1/S2's family at reduced
// scale — the full N=32 design is a >600-iteration run, too slow for a unit
// test, so this checks the design matrices are well-formed and the oracle
// can drive a few iterations without error.
func TestLowpassDesignFeasible(t *testing.T) {
	design := BuildLowpassDesign(8, 8*15, 0.12*math.Pi, 0.20*math.Pi, 0.125, 0.125)
	assert.Greater(t, design.Ap.Rows, 0)
	assert.Greater(t, design.As.Rows, 0)
	assert.Greater(t, design.Lpsq, 0.0)
	assert.Greater(t, design.Upsq, design.Lpsq)

	omega := NewLowpassOracle(design)
	r0 := make([]float64, 8)
	space := ell.NewEllipsoidSphere(40, r0)
	space.UseParallelCut = true
	log := zerolog.Nop()

	x, _, info := cutting.CuttingPlaneDC(context.Background(), omega, space, design.Spsq0, cutting.Options{MaxIt: 20000, Tol: 1e-8}, log)
	assert.Greater(t, info.NumIters, 0)
	if info.Feasible {
		assert.Len(t, x, 8)
	}
}

// TestMinCycleRatioFiveNodeCycle exercises scenario S5: a 5-node directed
// cycle with edge costs (5,1,1,1,1) and unit times has minimum cycle ratio
// 9/5, since the cycle itself is the only cycle in the graph.
func TestMinCycleRatioFiveNodeCycle(t *testing.T) {
	problem := CycleRatioProblem{
		N: 5,
		Edges: []CycleEdge{
			{U: 0, V: 1, Cost: 5, Time: 1},
			{U: 1, V: 2, Cost: 1, Time: 1},
			{U: 2, V: 3, Cost: 1, Time: 1},
			{U: 3, V: 4, Cost: 1, Time: 1},
			{U: 4, V: 0, Cost: 1, Time: 1},
		},
	}
	lo, hi := problem.Bounds()
	log := zerolog.Nop()
	r, _ := cutting.Bsearch(context.Background(), problem, lo, hi, cutting.Options{MaxIt: 200, Tol: 1e-9}, log)
	assert.InDelta(t, 9.0/5.0, r, 1e-6)
}

func TestOptScalingOracleFindsFeasibleScale(t *testing.T) {
	omega := NewOptScalingOracle(3, []ScalingEdge{
		{U: 0, V: 1, Cost: 1},
		{U: 1, V: 2, Cost: 2},
		{U: 2, V: 0, Cost: -1.5},
	})
	space := ell.NewEllipsoidSphere(100, []float64{0, 0})
	log := zerolog.Nop()

	_, _, info := cutting.CuttingPlaneDC(context.Background(), omega, space, 1e9, cutting.Options{MaxIt: 2000, Tol: 1e-8}, log)
	assert.True(t, info.Feasible)
}
