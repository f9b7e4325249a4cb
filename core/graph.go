// File: graph.go
// Role: Graph and Arc type declarations, constructor, and mutating methods.
// Determinism:
//   - Mutations are deterministic; iteration order is unspecified (map-backed).
// Concurrency:
//   - No internal locking; see package doc.

package core

// Graph is a directed graph keyed by node identity.
//
// N is the node type: opaque to the engine, compared with == and used as a map
// key. E is the edge payload (weight) type, copied by value. At most one edge
// exists per ordered (source, target) pair; self-loops are permitted.
//
// Two adjacency maps are maintained in lock-step: for every edge u→v the same
// payload is recorded under outgoing[u][v] and incoming[v][u]. A node is
// present iff it has an entry in the outgoing map; presence in the incoming
// map mirrors it at all times.
type Graph[N comparable, E any] struct {
	outgoing map[N]map[N]E // node → target-node → edge payload
	incoming map[N]map[N]E // node → source-node → edge payload
}

// New creates an empty Graph.
// Complexity: O(1)
func New[N comparable, E any]() *Graph[N, E] {
	return &Graph[N, E]{
		outgoing: make(map[N]map[N]E),
		incoming: make(map[N]map[N]E),
	}
}

// Arc is one directed edge of a Graph as a plain value: the ordered endpoint
// pair plus its payload. It is the unit produced by Edges and consumed by
// edge-cost comparators, which may rank an edge by its endpoints and not only
// by its weight.
type Arc[N comparable, E any] struct {
	// Source is the node the edge leaves.
	Source N

	// Target is the node the edge enters.
	Target N

	// Weight is the edge payload recorded for (Source, Target).
	Weight E
}

// AddNode ensures n is present, with no edges if it was absent. Idempotent:
// re-adding an existing node leaves its edges untouched.
// Complexity: O(1)
func (g *Graph[N, E]) AddNode(n N) {
	// 1) Presence is defined by the outgoing map; bail early if already there.
	if _, ok := g.outgoing[n]; ok {
		return
	}
	// 2) Install empty buckets in both directions to keep the maps in lock-step.
	g.outgoing[n] = make(map[N]E)
	g.incoming[n] = make(map[N]E)
}

// AddEdge records the edge source→target with the given weight, inserting both
// endpoints if absent. A repeated call for the same ordered pair overwrites the
// previous payload. source == target records a self-loop.
// Complexity: O(1)
func (g *Graph[N, E]) AddEdge(source, target N, weight E) {
	// 1) Both endpoints become present nodes even if this is their only edge.
	g.AddNode(source)
	g.AddNode(target)
	// 2) Record the identical payload in both projections of the edge set.
	g.outgoing[source][target] = weight
	g.incoming[target][source] = weight
}

// RemoveEdge deletes the edge source→target from both adjacency maps.
// No-op when the edge (or either endpoint) is absent; endpoints remain present
// even if left edgeless.
// Complexity: O(1)
func (g *Graph[N, E]) RemoveEdge(source, target N) {
	delete(g.outgoing[source], target)
	delete(g.incoming[target], source)
}

// RemoveNode deletes n and every edge incident to it, in both directions.
// No-op when n is absent.
// Complexity: O(deg(n))
func (g *Graph[N, E]) RemoveNode(n N) {
	// 1) Detach n's own buckets; absent node means nothing to do.
	out, ok := g.outgoing[n]
	if !ok {
		return
	}
	in := g.incoming[n]
	delete(g.outgoing, n)
	delete(g.incoming, n)

	// 2) Scrub the mirrored entries held by n's neighbors. A self-loop's
	//    mirror lived in the buckets deleted above, so the nil-map delete
	//    below is a no-op for it.
	var m N
	for m = range out {
		delete(g.incoming[m], n)
	}
	for m = range in {
		delete(g.outgoing[m], n)
	}
}
