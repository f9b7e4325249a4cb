// Package toposort scheduling: a full linear extension of a possibly-cyclic
// graph, computed on a private clone.
//
// Complexity:
//
//   - Time:   O(V log V + E) after cycle breaking (each node enters the heap once)
//   - Memory: O(V + E) for the clone and the ready queue
package toposort

import (
	"container/heap"

	"github.com/katalvlaran/depsort/core"
)

// Sort returns every node of g in an order consistent with all surviving
// edges: for each edge u→v, u precedes v. Cycles do not block scheduling —
// they are first broken on an internal clone under edgeCost (see BreakCycles),
// and the caller's graph is never mutated.
//
// Nodes whose dependencies are all scheduled become ready together; ready
// nodes are released in ascending nodeCost order. Supply total orders for both
// comparators to make the output fully deterministic.
func Sort[N comparable, E any](g *core.Graph[N, E], nodeCost NodeCostFunc[N], edgeCost EdgeCostFunc[N, E]) []N {
	// 1) Operate on a private copy and make it acyclic. Everything below
	//    assumes — and relies on — acyclicity.
	work := g.Clone()
	BreakCycles(work, edgeCost)

	// 2) Seed the ready queue with every node that depends on nothing.
	pending := &nodeHeap[N]{cost: nodeCost, items: make([]N, 0, work.NodeCount())}
	for n := range work.Nodes() {
		if work.InDegree(n) == 0 {
			pending.items = append(pending.items, n)
		}
	}
	heap.Init(pending)

	// 3) Release nodes in comparator order. Popping u may ready its outgoing
	//    neighbors: v is enqueued exactly when u is its last unmet dependency
	//    (current in-degree 1), so each node enters the heap exactly once.
	result := make([]N, 0, work.NodeCount())
	var u N
	for pending.Len() > 0 {
		u = heap.Pop(pending).(N)
		neighbors, _ := work.Outgoing(u)
		for v := range neighbors {
			if work.InDegree(v) == 1 {
				heap.Push(pending, v)
			}
		}
		work.RemoveNode(u)
		result = append(result, u)
	}

	// 4) Kahn's algorithm drains an acyclic finite graph completely; leftovers
	//    mean the breaking pass failed its contract, not bad input.
	if work.NodeCount() != 0 {
		panic("toposort: scheduling left a non-empty graph; cycle breaking is broken")
	}

	return result
}
