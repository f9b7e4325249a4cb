// Package depsort is a dependency-aware reordering engine: feed it items and
// directed "depends-on" relations, get back a linear order consistent with
// every relation — deterministically, even when the relations form cycles.
//
// 🚀 What is depsort?
//
//	A small, generic library that brings together:
//		• Core primitives: a directed graph keyed by any comparable node type,
//		  with O(1) neighbor lookups in both directions
//		• Cycle detection: find one directed cycle, or prove there is none
//		• Cycle breaking: discard the most expendable edge per cycle, by the
//		  cost function you supply, until an order becomes possible
//		• Scheduling: a priority-queue linear extension with caller-defined,
//		  deterministic tie-breaking
//
// ✨ Why choose depsort?
//
//   - Payload-agnostic – nodes and edge weights are type parameters; the engine
//     only ever relies on node identity and your comparators
//   - Caller-safe – sorting operates on a private clone; your graph is never mutated
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – supply total-order comparators and the output is fully deterministic
//
// Under the hood, everything is organized under two subpackages:
//
//	core/     — generic Graph with dual adjacency indices, cloning, traversal
//	toposort/ — FindCycle, BreakCycles, and the Sort scheduler
//
// Quick ASCII example:
//
//	    A──▶B
//	    ▲   │
//	    └─C◀┘
//
//	a three-statement cycle; Sort discards the costliest of the three edges
//	and schedules the remaining DAG.
//
// Dive into each package's doc.go for contracts, complexity notes and examples.
//
//	go get github.com/katalvlaran/depsort
package depsort
