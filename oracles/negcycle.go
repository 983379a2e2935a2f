// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// NegativeCycle finds a negative-weight cycle in g, if one exists, via
// Bellman-Ford relaxation seeded with every node at distance zero — the
// standard trick for detecting a cycle that need not be reachable from any
// single designated source. It returns the cycle as a sequence of node IDs
// (cycle[i] -> cycle[i+1], wrapping around), or ok=false if the graph has
// none.
func NegativeCycle(g *simple.WeightedDirectedGraph) (cycle []int64, ok bool) {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	if n == 0 {
		return nil, false
	}

	dist := make(map[int64]float64, n)
	pred := make(map[int64]int64, n)
	for _, nd := range nodes {
		dist[nd.ID()] = 0
	}

	edges := graph.EdgesOf(g.Edges())
	lastUpdated := int64(-1)
	for i := 0; i < n; i++ {
		lastUpdated = -1
		for _, e := range edges {
			u, v := e.From().ID(), e.To().ID()
			w, _ := g.Weight(u, v)
			if dist[u]+w < dist[v] {
				dist[v] = dist[u] + w
				pred[v] = u
				lastUpdated = v
			}
		}
	}
	if lastUpdated == -1 {
		return nil, false
	}

	x := lastUpdated
	for i := 0; i < n; i++ {
		x = pred[x]
	}

	c := []int64{x}
	for cur := pred[x]; cur != x; cur = pred[cur] {
		c = append(c, cur)
	}
	// c was built walking predecessors backward; reverse it so
	// c[i] -> c[i+1] follows the actual cycle direction.
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
	return c, true
}
