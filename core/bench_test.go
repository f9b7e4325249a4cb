package core_test

import (
	"testing"

	"github.com/katalvlaran/depsort/core"
)

// buildChain constructs a linear chain 0→1→…→n once per benchmark.
func buildChain(n int) *core.Graph[int, int] {
	g := core.New[int, int]()
	for i := 0; i < n; i++ {
		g.AddEdge(i, i+1, i)
	}

	return g
}

// BenchmarkGraph_AddEdge measures insertion cost including endpoint auto-insert.
func BenchmarkGraph_AddEdge(b *testing.B) {
	g := core.New[int, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(i, i+1, i)
	}
}

// BenchmarkGraph_Clone10000 measures a deep copy of a 10,000-edge chain.
func BenchmarkGraph_Clone10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

// BenchmarkGraph_RemoveNode measures node removal on a star graph, the
// worst case for mirror scrubbing (one node incident to every edge).
func BenchmarkGraph_RemoveNode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.New[int, int]()
		for j := 1; j <= 1000; j++ {
			g.AddEdge(0, j, j)
			g.AddEdge(j, 0, j)
		}
		b.StartTimer()
		g.RemoveNode(0)
	}
}
