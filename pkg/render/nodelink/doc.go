// Package nodelink renders habit dependency graphs as node-link diagrams.
//
// # Usage
//
// Build the graph with deps.Graph, optionally annotate nodes with a status,
// then convert to DOT and render:
//
//	g := deps.Graph(habits)
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Arrows point from a habit to the prerequisites it waits on.
//
// # Node Metadata
//
// [ToDOT] reads these keys from [dag.Node.Meta]:
//
//   - "title": label text (the id is used when absent)
//   - "status": one of "done", "open", "locked", "not due"; selects the fill
//   - "streak": shown under the label when positive
//
// Edges whose [dag.Edge.Meta] has "cycle" set to true, and self-loops, are
// drawn in red.
//
// Dangling nodes (prerequisite ids with no matching habit) are drawn with a
// dashed red outline.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
//
// [dag.Node.Meta]: https://pkg.go.dev/github.com/matzehuels/habitstack/pkg/dag#Node
// [dag.Edge.Meta]: https://pkg.go.dev/github.com/matzehuels/habitstack/pkg/dag#Edge
package nodelink
