// File: methods_clone.go
// Role: Cloning graph instances for mutate-in-private workflows.
// Determinism:
//   - Clone copies structure only; iteration order on the clone is still unspecified.

package core

import "maps"

// Clone returns a deep copy of the Graph: both adjacency maps are rebuilt, so
// mutating the clone never disturbs the receiver (and vice versa). Node and
// payload values themselves are copied by assignment; callers using pointer
// payloads share the pointees.
//
// Complexity: O(V + E)
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	clone := &Graph[N, E]{
		outgoing: make(map[N]map[N]E, len(g.outgoing)),
		incoming: make(map[N]map[N]E, len(g.incoming)),
	}
	// Copy each per-node bucket; maps.Clone duplicates the inner map so edge
	// removals on the clone stay confined to it.
	var n N
	var adj map[N]E
	for n, adj = range g.outgoing {
		clone.outgoing[n] = maps.Clone(adj)
	}
	for n, adj = range g.incoming {
		clone.incoming[n] = maps.Clone(adj)
	}

	return clone
}
