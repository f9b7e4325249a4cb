// Package toposort cycle breaking: remove the most expendable edge per
// discovered cycle until none remains.
//
// Complexity:
//
//   - Time:   O(E·(V + E)) worst case — each round removes one edge, and the
//     shared working set keeps each round from re-exploring settled nodes
//   - Memory: O(V)
package toposort

import "github.com/katalvlaran/depsort/core"

// BreakCycles mutates g in place until it is acyclic. Each discovered cycle
// loses exactly one edge: the maximal one under edgeCost among the cycle's
// wrap-around consecutive pairs. A cycle-free graph is left untouched.
//
// Termination: every round strictly removes one edge, so the loop runs at most
// EdgeCount times.
func BreakCycles[N comparable, E any](g *core.Graph[N, E], edgeCost EdgeCostFunc[N, E]) {
	// 1) Seed the working set once; it is pruned across rounds, so later
	//    searches restart only where the previous edge removal disturbed.
	subgraph := make(map[N]struct{}, g.NodeCount())
	for n := range g.Nodes() {
		subgraph[n] = struct{}{}
	}

	for {
		// 2) One cycle (length k ≥ 1; k == 1 is a self-loop), or done.
		cycle, found := findCycleInSubgraph(g, subgraph)
		if !found {
			return
		}

		// 3) Walk the k wrap-around pairs and keep the maximal edge under
		//    edgeCost. Every pair is an edge — the cycle came from the graph —
		//    so the lookups cannot miss.
		var worst core.Arc[N, E]
		var source, target N
		var i int
		for i, source = range cycle {
			target = cycle[(i+1)%len(cycle)]
			weight, _ := g.Edge(source, target)
			arc := core.Arc[N, E]{Source: source, Target: target, Weight: weight}
			if i == 0 || edgeCost(arc, worst) > 0 {
				worst = arc
			}
		}

		// 4) Discard it and search again.
		g.RemoveEdge(worst.Source, worst.Target)
	}
}
