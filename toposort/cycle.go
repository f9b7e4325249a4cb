// Package toposort cycle detection: depth-first search with an explicit
// recursion-stack set and a shared, shrinking working set of candidates.
//
// Complexity:
//
//   - Time:   O(V + E) across all searches sharing one working set
//   - Memory: O(V) (working set, path set, recursion stack)
package toposort

import (
	"slices"

	"github.com/katalvlaran/depsort/core"
)

// FindCycle locates one directed cycle in g, returned as a node sequence whose
// consecutive pairs — wrapping from the last node back to the first — are all
// edges of g. A self-loop is reported as a single-node sequence. The rotation
// the sequence starts at is unspecified. ok is false iff g is acyclic.
func FindCycle[N comparable, E any](g *core.Graph[N, E]) ([]N, bool) {
	// Seed the working set with every present node and delegate.
	subgraph := make(map[N]struct{}, g.NodeCount())
	for n := range g.Nodes() {
		subgraph[n] = struct{}{}
	}

	return findCycleInSubgraph(g, subgraph)
}

// findCycleInSubgraph searches for a cycle among the not-yet-settled nodes in
// subgraph. The set is shared across calls: every node proven cycle-free is
// removed, so a caller that searches repeatedly (BreakCycles) never re-explores
// settled regions. Nodes on a reported cycle stay in the set — they must be
// reconsidered after the caller perturbs the graph.
func findCycleInSubgraph[N comparable, E any](g *core.Graph[N, E], subgraph map[N]struct{}) ([]N, bool) {
	// State scoped to one call: path tracks nodes open on the current DFS
	// recursion stack, stack is those same nodes in visit order.
	path := make(map[N]struct{})
	stack := make([]N, 0, len(subgraph))

	for {
		// 1) Pick any remaining candidate; an empty set proves acyclicity.
		//    Which representative starts the search is irrelevant: visit
		//    prunes everything it settles, so no node is explored twice.
		picked := false
		var start N
		for n := range subgraph {
			start, picked = n, true

			break
		}
		if !picked {
			return nil, false
		}

		// 2) DFS from the representative; a discovered cycle propagates out.
		if cycle, found := visit(g, subgraph, path, &stack, start); found {
			return cycle, true
		}
	}
}

// visit runs the depth-first step from node, threading the shared working set,
// the open-path set, and the recursion stack through the recursion.
//
// Invariant on return: when no cycle was found, node has been removed from
// both subgraph and path, and the stack is restored to its entry state; when a
// cycle was found, open nodes stay in subgraph for later re-examination.
func visit[N comparable, E any](
	g *core.Graph[N, E],
	subgraph map[N]struct{},
	path map[N]struct{},
	stack *[]N,
	node N,
) ([]N, bool) {
	// 1) Open the node: it is now an ancestor of everything explored below.
	path[node] = struct{}{}
	*stack = append(*stack, node)

	// 2) Scan outgoing neighbors. The node came from the working set, so it is
	//    present and the lookup cannot miss.
	neighbors, _ := g.Outgoing(node)
	for neighbor := range neighbors {
		if _, open := path[neighbor]; open {
			// 2a) Back-edge onto an open ancestor (or onto node itself, a
			//     self-loop): the cycle is the contiguous stack suffix from
			//     that ancestor through the current node. Copy it out — the
			//     stack keeps unwinding after we return.
			idx := slices.Index(*stack, neighbor)
			cycle := append([]N(nil), (*stack)[idx:]...)

			return cycle, true
		}
		if _, pending := subgraph[neighbor]; pending {
			// 2b) Unexplored candidate: recurse, propagating any cycle upward
			//     unchanged.
			if cycle, found := visit(g, subgraph, path, stack, neighbor); found {
				return cycle, true
			}
		}
		// 2c) Otherwise the neighbor is already settled as cycle-free; skip.
	}

	// 3) Every path out of node avoids the remaining candidates, so node can
	//    belong to no cycle among them: settle it and close the frame.
	delete(subgraph, node)
	delete(path, node)
	*stack = (*stack)[:len(*stack)-1]

	return nil, false
}
