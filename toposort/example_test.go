package toposort_test

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/katalvlaran/depsort/core"
	"github.com/katalvlaran/depsort/toposort"
)

// ExampleSort demonstrates scheduling a small statement-dependency graph:
// "use" depends on "helper" and "config", which both depend on "imports",
// while "config" and "helper" also reference each other (a cycle).
//
//	     imports
//	     ╱     ╲
//	helper ⇄ config
//	     ╲     ╱
//	       use
//
// The helper→config reference is the weaker one (weight 1 vs 2), so the
// cycle is resolved by dropping config→helper, the costlier edge.
func ExampleSort() {
	g := core.New[string, int]()
	g.AddEdge("imports", "helper", 1)
	g.AddEdge("imports", "config", 1)
	g.AddEdge("helper", "config", 1)
	g.AddEdge("config", "helper", 2)
	g.AddEdge("helper", "use", 1)
	g.AddEdge("config", "use", 1)

	order := toposort.Sort(g,
		strings.Compare,
		func(a, b core.Arc[string, int]) int { return cmp.Compare(a.Weight, b.Weight) },
	)
	fmt.Println(strings.Join(order, " "))

	// Output:
	// imports helper config use
}

// ExampleFindCycle reports one cycle of a graph as a closed walk.
func ExampleFindCycle() {
	g := core.New[string, int]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "a", 1)

	cycle, found := toposort.FindCycle(g)
	fmt.Println(found, len(cycle))

	// Output:
	// true 2
}
