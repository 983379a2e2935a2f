// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/luk036/ellalgo-go/ell"
)

// ScalingEdge is a directed network edge with a fixed log-domain cost,
// oriented so that U <= V edges bind the upper scale x[0] and U > V edges
// bind the lower scale x[1].
type ScalingEdge struct {
	U, V int64
	Cost float64
}

// OptScalingOracle certifies that a pair of scale bounds x = (x0, x1) is
// consistent with every edge of a network: each edge (u,v) requires a node
// potential pi with pi(u) - pi(v) <= x0 - cost(u,v) when u <= v, or
// pi(u) - pi(v) <= cost(u,v) - x1 otherwise. Feasibility of that system of
// difference constraints is equivalent to the corresponding graph having no
// negative-weight cycle.
type OptScalingOracle struct {
	N     int
	Edges []ScalingEdge
}

// NewOptScalingOracle constructs the oracle over an n-node network.
func NewOptScalingOracle(n int, edges []ScalingEdge) *OptScalingOracle {
	return &OptScalingOracle{N: n, Edges: edges}
}

// owner maps a (from, to) pair in the difference-constraint graph (edge
// V->U for original edge U->V) back to the ScalingEdge that produced it.
func (o *OptScalingOracle) buildGraph(x []float64) (*simple.WeightedDirectedGraph, map[[2]int64]ScalingEdge) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < o.N; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	owner := make(map[[2]int64]ScalingEdge, len(o.Edges))
	for _, e := range o.Edges {
		var w float64
		if e.U <= e.V {
			w = x[0] - e.Cost
		} else {
			w = e.Cost - x[1]
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.V), simple.Node(e.U), w))
		owner[[2]int64{e.V, e.U}] = e
	}
	return g, owner
}

// Assess implements oracle.OptimizationOracle for the scaling span x0 -
// x1, minimized subject to network feasibility.
func (o *OptScalingOracle) Assess(x []float64, t float64) (ell.Cut, float64, bool) {
	g, owner := o.buildGraph(x)
	cycle, found := NegativeCycle(g)
	if found {
		g0, g1, beta, ok := worstEdgeOnCycle(cycle, owner, x)
		if ok {
			return ell.NewDeepCut([]float64{g0, g1}, beta), t, false
		}
	}

	s := x[0] - x[1]
	fj := s - t
	updated := false
	if fj < 0 {
		t = s
		fj = 0
		updated = true
	}
	return ell.NewCentralCut([]float64{1, -1}), t, updated
}

// worstEdgeOnCycle picks the cycle edge whose constraint is most violated
// and reports the gradient of that constraint with respect to x, together
// with its slack.
func worstEdgeOnCycle(cycle []int64, owner map[[2]int64]ScalingEdge, x []float64) (g0, g1, beta float64, ok bool) {
	best := math.Inf(1)
	for i := range cycle {
		from, to := cycle[i], cycle[(i+1)%len(cycle)]
		e, found := owner[[2]int64{from, to}]
		if !found {
			continue
		}
		var slack float64
		var cg0, cg1 float64
		if e.U <= e.V {
			slack = e.Cost - x[0]
			cg0, cg1 = 1, 0
		} else {
			slack = x[1] - e.Cost
			cg0, cg1 = 0, -1
		}
		if slack < best {
			best = slack
			g0, g1 = cg0, cg1
			beta = -slack
			ok = true
		}
	}
	return g0, g1, beta, ok
}
