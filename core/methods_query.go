// File: methods_query.go
// Role: Read-only inspection of nodes, edges, neighbors and degrees.
// Determinism:
//   - Nodes/Outgoing/Incoming/Edges iterate in unspecified (map) order;
//     algorithms needing determinism impose it via comparators, not here.

package core

import (
	"iter"
	"maps"
)

// HasNode reports whether n is present in the graph.
// Complexity: O(1)
func (g *Graph[N, E]) HasNode(n N) bool {
	_, ok := g.outgoing[n]

	return ok
}

// NodeCount returns the number of present nodes.
// Complexity: O(1)
func (g *Graph[N, E]) NodeCount() int {
	return len(g.outgoing)
}

// EdgeCount returns the number of directed edges.
// Complexity: O(V)
func (g *Graph[N, E]) EdgeCount() int {
	total := 0
	for _, adj := range g.outgoing {
		total += len(adj)
	}

	return total
}

// Nodes returns a lazy sequence over all present nodes, in unspecified order.
func (g *Graph[N, E]) Nodes() iter.Seq[N] {
	return maps.Keys(g.outgoing)
}

// Outgoing returns a lazy sequence over the targets of n's outgoing edges.
// ok is false iff n is absent; a present, edgeless node yields an empty sequence.
func (g *Graph[N, E]) Outgoing(n N) (seq iter.Seq[N], ok bool) {
	adj, ok := g.outgoing[n]
	if !ok {
		return nil, false
	}

	return maps.Keys(adj), true
}

// Incoming returns a lazy sequence over the sources of n's incoming edges.
// ok is false iff n is absent; a present, edgeless node yields an empty sequence.
func (g *Graph[N, E]) Incoming(n N) (seq iter.Seq[N], ok bool) {
	adj, ok := g.incoming[n]
	if !ok {
		return nil, false
	}

	return maps.Keys(adj), true
}

// OutDegree returns the number of outgoing edges of n, 0 if n is absent.
// Complexity: O(1)
func (g *Graph[N, E]) OutDegree(n N) int {
	return len(g.outgoing[n])
}

// InDegree returns the number of incoming edges of n, 0 if n is absent.
// Complexity: O(1)
func (g *Graph[N, E]) InDegree(n N) int {
	return len(g.incoming[n])
}

// Edge looks up the payload recorded for the edge source→target.
// ok is false when no such edge exists (including when either endpoint is absent).
// Complexity: O(1)
func (g *Graph[N, E]) Edge(source, target N) (weight E, ok bool) {
	// Indexing a missing outer key yields a nil inner map, which in turn
	// yields the zero payload and ok=false.
	weight, ok = g.outgoing[source][target]

	return weight, ok
}

// Edges returns a lazy sequence over every directed edge as an Arc, in
// unspecified order. Each edge appears exactly once (from its outgoing
// projection), self-loops included.
// Complexity: O(V + E) for a full drain.
func (g *Graph[N, E]) Edges() iter.Seq[Arc[N, E]] {
	return func(yield func(Arc[N, E]) bool) {
		for source, adj := range g.outgoing {
			for target, weight := range adj {
				if !yield(Arc[N, E]{Source: source, Target: target, Weight: weight}) {
					return
				}
			}
		}
	}
}
