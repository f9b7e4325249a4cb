package toposort_test

import (
	"cmp"
	"testing"

	"github.com/katalvlaran/depsort/core"
	"github.com/katalvlaran/depsort/toposort"
)

// chainGraph builds 0→1→…→n once per benchmark.
func chainGraph(n int) *core.Graph[int, int] {
	g := core.New[int, int]()
	for i := 0; i < n; i++ {
		g.AddEdge(i, i+1, i)
	}

	return g
}

// BenchmarkSort_Chain10000 measures scheduling a 10,000-node chain, the
// deepest possible dependency stack (clone + heap drain dominate).
func BenchmarkSort_Chain10000(b *testing.B) {
	g := chainGraph(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = toposort.Sort(g, cmp.Compare, byWeightInt)
	}
}

// BenchmarkSort_SelfLoops1000 measures the cycle-breaking fast path: 1,000
// independent self-loops, each costing one search round and one removal.
func BenchmarkSort_SelfLoops1000(b *testing.B) {
	g := core.New[int, int]()
	for i := 0; i < 1000; i++ {
		g.AddEdge(i, i, 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = toposort.Sort(g, cmp.Compare, byWeightInt)
	}
}

// BenchmarkFindCycle_Acyclic10000 measures a full acyclicity proof, the cost
// every BreakCycles round pays at least once.
func BenchmarkFindCycle_Acyclic10000(b *testing.B) {
	g := chainGraph(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = toposort.FindCycle(g)
	}
}
