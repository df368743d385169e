// Package render turns habit dependency graphs into pictures.
//
// The [nodelink] subpackage writes Graphviz DOT and renders it to SVG
// in-process:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/habitstack/pkg/render/nodelink
package render
