package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/habitstack/pkg/dag"
)

// Metadata keys read by ToDOT.
const (
	MetaTitle  = "title"
	MetaStatus = "status"
	MetaStreak = "streak"

	// MetaCycle marks an edge that closes a prerequisite cycle.
	MetaCycle = "cycle"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels nodes with their id and every metadata entry instead
	// of the title alone.
	Detailed bool
}

var statusFill = map[string]string{
	"done":    "palegreen",
	"open":    "white",
	"locked":  "lightgrey",
	"not due": "whitesmoke",
}

// ToDOT converts a habit graph to Graphviz DOT. Nodes and edges are written
// in graph order, so the output is deterministic.
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph habits {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#555555\", arrowsize=0.7];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := fmtAttrs(*n, fmtLabel(*n, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if cyc, _ := e.Meta[MetaCycle].(bool); cyc || e.From == e.To {
			fmt.Fprintf(&buf, "  %q -> %q [color=red];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n dag.Node, detailed bool) string {
	if detailed {
		parts := []string{n.ID}
		for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
			parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
		}
		return strings.Join(parts, "\n")
	}

	label := n.ID
	if t, ok := n.Meta[MetaTitle].(string); ok && strings.TrimSpace(t) != "" {
		label = t
	}
	if n.IsDangling() {
		return label + "\n(missing)"
	}
	if s, ok := n.Meta[MetaStreak].(int); ok && s > 0 {
		label += fmt.Sprintf("\nstreak %d", s)
	}
	return label
}

func fmtAttrs(n dag.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.IsDangling() {
		return append(attrs, "style=\"rounded,dashed\"", "color=red", "fontcolor=red")
	}
	status, _ := n.Meta[MetaStatus].(string)
	if fill, ok := statusFill[status]; ok && fill != "white" {
		attrs = append(attrs, "fillcolor="+fill)
	}
	if status == "not due" {
		attrs = append(attrs, "fontcolor=grey40")
	}
	return attrs
}

// RenderSVG lays out a DOT graph with the embedded Graphviz engine and
// returns SVG with a normalized, scalable viewBox.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
