// Package toposort defines the comparator types shared by BreakCycles and
// Sort, and the heap plumbing behind the scheduler's priority queue.
package toposort

import "github.com/katalvlaran/depsort/core"

// NodeCostFunc is a three-way comparator over nodes, following the stdlib cmp
// convention: negative when a orders before b, zero when equal, positive when
// a orders after b. Sort releases ready nodes in ascending order under it.
//
// The comparator should be a total order (e.g. fall back to a stable per-node
// index); equal-cost nodes are otherwise released in unspecified order.
type NodeCostFunc[N any] func(a, b N) int

// EdgeCostFunc is a three-way comparator over directed edges, presented as
// (Source, Target, Weight) triples rather than bare payloads so that cost may
// depend on which node pair an edge connects. BreakCycles removes the maximal
// edge of each cycle under this order.
type EdgeCostFunc[N comparable, E any] func(a, b core.Arc[N, E]) int

// nodeHeap is a min-heap of nodes ordered by a NodeCostFunc, used by Sort as
// the ready queue. It implements container/heap's Interface; the stored
// comparator keeps Less closed over caller state without per-item wrappers.
type nodeHeap[N any] struct {
	items []N
	cost  NodeCostFunc[N]
}

// Len returns the number of queued nodes.
func (h *nodeHeap[N]) Len() int { return len(h.items) }

// Less orders the heap ascending under the node comparator.
func (h *nodeHeap[N]) Less(i, j int) bool { return h.cost(h.items[i], h.items[j]) < 0 }

// Swap swaps two queued nodes.
func (h *nodeHeap[N]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends x; called by heap.Push, x must be of type N.
func (h *nodeHeap[N]) Push(x any) { h.items = append(h.items, x.(N)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (h *nodeHeap[N]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
