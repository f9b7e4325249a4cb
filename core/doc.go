// Package core defines the central Graph type: a generic directed graph with
// one weighted edge per ordered node pair and bidirectional adjacency indices.
//
// What:
//
//   - Graph[N, E]: nodes of any comparable type N, edge payloads of any type E.
//     Two mirrored maps (outgoing and incoming adjacency) are kept in lock-step,
//     so neighbor queries in either direction are O(1).
//   - Mutation: AddNode, AddEdge (auto-inserts endpoints, overwrites payloads,
//     permits self-loops), RemoveNode (drops all incident edges), RemoveEdge.
//   - Inspection: HasNode, NodeCount, EdgeCount, Nodes, Outgoing, Incoming,
//     OutDegree, InDegree, Edge, Edges.
//   - Clone: a deep copy of both adjacency maps for mutate-in-private workflows.
//
// Why:
//
//   - Statement/symbol reordering passes need "who depends on whom" in both
//     directions: incoming degree drives readiness, outgoing neighbors drive
//     release. Duplicating the edge set across two maps trades memory for O(1)
//     direction queries and keeps the symmetry invariant easy to state and test.
//
// Key Types:
//
//   - Graph[N comparable, E any]: the dual-index directed graph
//   - Arc[N, E]: an (Source, Target, Weight) edge triple, as produced by Edges
//
// Errors:
//
//	None. Queries on absent nodes degrade gracefully: counts report 0,
//	lookups report ok=false, removals are no-ops. The zero Graph value is not
//	usable; construct with New.
//
// Concurrency:
//
//	Graph performs no internal locking. A single sort operation is
//	single-threaded by design; callers sharing one Graph across goroutines
//	must synchronize externally.
//
// Complexity:
//
//   - AddNode/AddEdge/RemoveEdge/Edge/degree queries: O(1) expected
//   - RemoveNode: O(deg(n))
//   - Nodes/Edges/Clone: O(V) / O(V+E) / O(V+E)
package core
