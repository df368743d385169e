package graph

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/habitstack/pkg/dag"
	"github.com/matzehuels/habitstack/pkg/render/nodelink"
)

// Graph is the serialized prerequisite graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one habit, or a prerequisite id that matches no habit.
type Node struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Status  string `json:"status,omitempty"`
	Streak  int    `json:"streak,omitempty"`
	Missing bool   `json:"missing,omitempty"`
}

// DisplayLabel returns the title if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}

// Edge points from a habit to one of its prerequisites.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Cycle bool   `json:"cycle,omitempty"`
}

// FromDAG converts a graph to its serialization format. Nodes are sorted
// by ID and edges by endpoints for deterministic output.
func FromDAG(g *dag.DAG) Graph {
	nodes := g.Nodes()
	slices.SortFunc(nodes, func(a, b *dag.Node) int { return strings.Compare(a.ID, b.ID) })

	out := Graph{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for i, n := range nodes {
		out.Nodes[i] = nodeFromDAG(n)
	}
	for _, e := range g.Edges() {
		cycle, _ := e.Meta[nodelink.MetaCycle].(bool)
		out.Edges = append(out.Edges, Edge{From: e.From, To: e.To, Cycle: cycle})
	}
	slices.SortFunc(out.Edges, func(a, b Edge) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})
	return out
}

// ToDAG rebuilds the in-memory graph. It fails on duplicate or empty node
// ids and on edges whose endpoints are not listed as nodes.
func ToDAG(gj Graph) (*dag.DAG, error) {
	d := dag.New(nil)
	for _, nj := range gj.Nodes {
		n := dag.Node{ID: nj.ID, Meta: dag.Metadata{}}
		if nj.Title != "" {
			n.Meta[nodelink.MetaTitle] = nj.Title
		}
		if nj.Status != "" {
			n.Meta[nodelink.MetaStatus] = nj.Status
		}
		if nj.Streak != 0 {
			n.Meta[nodelink.MetaStreak] = nj.Streak
		}
		if nj.Missing {
			n.Kind = dag.NodeKindDangling
		}
		if err := d.AddNode(n); err != nil {
			return nil, fmt.Errorf("node %q: %w", nj.ID, err)
		}
	}
	for _, ej := range gj.Edges {
		e := dag.Edge{From: ej.From, To: ej.To}
		if ej.Cycle {
			e.Meta = dag.Metadata{nodelink.MetaCycle: true}
		}
		if err := d.AddEdge(e); err != nil {
			return nil, fmt.Errorf("edge %s -> %s: %w", ej.From, ej.To, err)
		}
	}
	return d, nil
}

// UnmarshalGraph decodes the JSON form without building a DAG.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}
	return g, nil
}

func nodeFromDAG(n *dag.Node) Node {
	node := Node{ID: n.ID, Missing: n.IsDangling()}
	if title, ok := n.Meta[nodelink.MetaTitle].(string); ok && title != n.ID {
		node.Title = title
	}
	if status, ok := n.Meta[nodelink.MetaStatus].(string); ok {
		node.Status = status
	}
	switch streak := n.Meta[nodelink.MetaStreak].(type) {
	case int:
		node.Streak = streak
	case float64:
		node.Streak = int(streak)
	}
	return node
}
