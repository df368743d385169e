// Package dag provides the directed graph behind habit prerequisites.
//
// # Overview
//
// Every habit is a node; every prerequisite is an edge from the dependent
// habit to the habit it depends on. The graph must stay acyclic: no habit
// may, directly or transitively, depend on itself.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [DAG.AddNode] and edges with
// [DAG.AddEdge]. Edges may only connect existing nodes:
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "run"})
//	g.AddNode(dag.Node{ID: "stretch"})
//	g.AddEdge(dag.Edge{From: "run", To: "stretch"}) // run requires stretch
//
// Prerequisite ids that do not name a habit are modeled as nodes of kind
// [NodeKindDangling]. They never have outgoing edges, so they can terminate
// a path but never close a cycle.
//
// # Cycles
//
// [DAG.Validate] and [DAG.FindCycle] search the whole graph with the classic
// white/gray/black depth-first search: gray marks nodes on the current path,
// black marks fully explored nodes, and an edge into a gray node is a
// back-edge, i.e. a cycle. [DAG.CycleThrough] runs the same search rooted at
// one node and only reports back-edges that return to that root; this is the
// question "would this node's edges close a loop?" asked when a user edits
// prerequisites.
//
// Iteration order is insertion order, so cycle paths and rendered output are
// deterministic for a given input.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Read-only queries on a graph
// that is no longer being modified can run in parallel.
//
// # Related Packages
//
// The [transform] subpackage assigns tiers (layers), removes transitive edges
// and breaks cycles for display.
//
// [transform]: github.com/matzehuels/habitstack/pkg/dag/transform
package dag
