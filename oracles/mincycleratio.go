// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// CycleEdge is a directed edge of a CycleRatioProblem, carrying both an
// arbitrary cost and an arbitrary positive duration.
type CycleEdge struct {
	U, V       int64
	Cost, Time float64
}

// CycleRatioProblem is the minimum-cycle-ratio problem: among all directed
// cycles in a graph, find the one minimizing sum(cost)/sum(time). It is
// solved parametrically — weight(u,v) = cost(u,v) - r*time(u,v) — by
// bisecting on r and asking whether the parametrized graph still contains a
// negative-weight cycle.
type CycleRatioProblem struct {
	N     int
	Edges []CycleEdge
}

func (p CycleRatioProblem) weightedGraph(r float64) *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < p.N; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	super := simple.Node(int64(p.N))
	g.AddNode(super)
	for i := 0; i < p.N; i++ {
		g.SetWeightedEdge(g.NewWeightedEdge(super, simple.Node(int64(i)), 0))
	}
	for _, e := range p.Edges {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.U), simple.Node(e.V), e.Cost-r*e.Time))
	}
	return g
}

// Feasible reports whether r is a valid lower bound on the minimum cycle
// ratio: every cycle has cost - r*time >= 0, i.e. the parametrized graph has
// no negative-weight cycle.
func (p CycleRatioProblem) Feasible(r float64) bool {
	g := p.weightedGraph(r)
	_, ok := path.BellmanFordFrom(simple.Node(int64(p.N)), g)
	return ok
}

// Assess implements oracle.BisectionOracle: Feasible is true for every r at
// or below the true minimum ratio and false above it, so bisection on this
// predicate converges to the minimum cycle ratio itself.
func (p CycleRatioProblem) Assess(r float64) bool {
	return p.Feasible(r)
}

// Bounds returns a safe [lo, hi] bracket for the minimum cycle ratio,
// derived from the extreme cost and time values present in the problem.
func (p CycleRatioProblem) Bounds() (lo, hi float64) {
	if len(p.Edges) == 0 {
		return 0, 0
	}
	maxCost, minTime := 0.0, p.Edges[0].Time
	for _, e := range p.Edges {
		c := e.Cost
		if c < 0 {
			c = -c
		}
		if c > maxCost {
			maxCost = c
		}
		if e.Time < minTime {
			minTime = e.Time
		}
	}
	if minTime <= 0 {
		minTime = 1
	}
	bound := maxCost * float64(len(p.Edges)) / minTime
	if bound < 0 {
		bound = -bound
	}
	return -bound - 1, bound + 1
}
