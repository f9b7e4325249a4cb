// Package toposort implements cycle detection, cycle breaking, and a
// deterministic topological scheduler over a core.Graph, the three passes a
// dependency-aware reordering tool needs to turn "who references whom" into a
// stable linear order.
//
// What:
//
//   - FindCycle: locate one directed cycle (self-loops included), or prove the
//     graph acyclic. Depth-first search over a shrinking working set: every
//     node proven cycle-free is pruned permanently, so repeated searches never
//     re-explore settled regions.
//   - BreakCycles: mutate a graph in place until acyclic. Each round removes a
//     single edge — the one a caller-supplied comparator judges most
//     expendable among the discovered cycle's edges — then searches again,
//     reusing the pruned working set.
//   - Sort: Kahn's algorithm over a private clone of the input. Nodes that
//     become ready simultaneously are released in ascending order under a
//     caller-supplied node comparator, via a container/heap priority queue.
//
// Why:
//
//   - Reordering statements by their reference graph must behave identically
//     run after run, and must not fall over when two statements reference each
//     other. Removing the single costliest edge per cycle is the minimal
//     mutation that restores schedulability.
//
// Key Types:
//
//   - NodeCostFunc[N]: three-way node comparator (ascending release order)
//   - EdgeCostFunc[N, E]: three-way comparator over (source, target, weight)
//     triples, so edge cost may depend on the endpoints, not only the payload
//
// Determinism:
//
//	Supply total orders and every output is fully reproducible. With a
//	non-total comparator the order among equal-cost candidates is
//	unspecified, never unsafe.
//
// Errors:
//
//	None returned. Sort operates on a clone and cannot fail for any finite
//	input; a non-empty graph after scheduling would mean the cycle-breaking
//	pass itself is broken, and panics as an internal invariant violation.
//
// Complexity:
//
//   - FindCycle:   Time O(V + E), Memory O(V)
//   - BreakCycles: Time O(E·(V + E)) worst case (one edge removed per round;
//     working-set pruning makes typical rounds far cheaper), Memory O(V)
//   - Sort:        Time O(V + E + B + V log V) with B the BreakCycles cost,
//     Memory O(V + E) for the clone
package toposort
