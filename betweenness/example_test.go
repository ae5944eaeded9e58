package betweenness_test

import (
	"fmt"

	"github.com/katalvlaran/centrality/betweenness"
	"github.com/katalvlaran/centrality/builder"
	"github.com/katalvlaran/centrality/core"
)

// ExampleNodes scores the hub of a star: it lies on every leaf-to-leaf path.
func ExampleNodes() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDPrefix("leaf")}, builder.Star(4))

	bc, _ := betweenness.Nodes(g)
	for _, id := range g.Vertices() {
		fmt.Printf("%s %.2f\n", id, bc[id])
	}
	// Output:
	// Center 1.00
	// leaf1 0.00
	// leaf2 0.00
	// leaf3 0.00
}

// ExampleNodes_weighted routes a–c through b because the direct edge is expensive.
func ExampleNodes_weighted() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 1)
	_, _ = g.AddEdge("a", "c", 3)

	bc, _ := betweenness.Nodes(g,
		betweenness.WithWeight(core.WeightAttr),
		betweenness.WithNormalized(false),
	)
	fmt.Printf("a=%.1f b=%.1f c=%.1f\n", bc["a"], bc["b"], bc["c"])
	// Output: a=0.0 b=1.0 c=0.0
}

// ExampleEdges lists edge betweenness of a path.
func ExampleEdges() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(4))

	ceb, _ := betweenness.Edges(g, betweenness.WithNormalized(false))
	for _, e := range g.Edges() {
		k := betweenness.EdgeKey{From: e.From, To: e.To}
		fmt.Printf("%s %.0f\n", k, ceb[k])
	}
	// Output:
	// 0→1 3
	// 1→2 4
	// 2→3 3
}
