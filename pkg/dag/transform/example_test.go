package transform_test

import (
	"fmt"

	"github.com/matzehuels/habitstack/pkg/dag"
	"github.com/matzehuels/habitstack/pkg/dag/transform"
)

func ExampleTransitiveReduction() {
	// run requires stretch and water; stretch already requires water.
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "run"})
	_ = g.AddNode(dag.Node{ID: "stretch"})
	_ = g.AddNode(dag.Node{ID: "water"})
	_ = g.AddEdge(dag.Edge{From: "run", To: "stretch"})
	_ = g.AddEdge(dag.Edge{From: "run", To: "water"})
	_ = g.AddEdge(dag.Edge{From: "stretch", To: "water"})

	transform.TransitiveReduction(g)
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("run requires:", g.Children("run"))
	// Output:
	// Edges: 2
	// run requires: [stretch]
}

func ExampleAssignLayers() {
	// Edges point from a prerequisite to the habit it unlocks.
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "water"})
	_ = g.AddNode(dag.Node{ID: "stretch"})
	_ = g.AddNode(dag.Node{ID: "run"})
	_ = g.AddEdge(dag.Edge{From: "water", To: "stretch"})
	_ = g.AddEdge(dag.Edge{From: "stretch", To: "run"})

	transform.AssignLayers(g)
	for _, row := range g.RowIDs() {
		fmt.Println(row, dag.NodeIDs(g.NodesInRow(row)))
	}
	// Output:
	// 0 [water]
	// 1 [stretch]
	// 2 [run]
}
