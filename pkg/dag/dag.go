package dag

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrDanglingSource is returned by [DAG.AddEdge] when the From node is a
	// dangling reference. Dangling nodes are leaves by construction.
	ErrDanglingSource = errors.New("dangling node cannot have outgoing edges")

	// ErrGraphHasCycle is returned by [DAG.Validate] when a cycle is detected.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to nodes or the graph,
// such as a habit's title or its status on the reference day.
type Metadata map[string]any

// NodeKind distinguishes real habits from unresolved references.
type NodeKind int

const (
	// NodeKindHabit represents a habit present in the collection.
	NodeKindHabit NodeKind = iota
	// NodeKindDangling represents a prerequisite id that matches no habit.
	NodeKindDangling
)

// Node is a vertex in the prerequisite graph.
type Node struct {
	ID   string   // Habit ID
	Row  int      // Tier assigned by transform.AssignLayers (0 = top)
	Meta Metadata // Arbitrary key-value metadata (never nil after AddNode)
	Kind NodeKind
}

// IsDangling reports whether the node stands for an unresolved id.
func (n Node) IsDangling() bool { return n.Kind == NodeKindDangling }

// Edge is a directed prerequisite edge: From requires To.
type Edge struct {
	From string
	To   string
	Meta Metadata // never nil after AddEdge
}

// DAG is a directed graph of habits and their prerequisites.
//
// The zero value is not usable - use New to create a valid DAG instance.
type DAG struct {
	nodes    map[string]*Node
	order    []string // node IDs in insertion order
	edges    []Edge
	outgoing map[string][]string // nodeID -> prerequisite IDs
	incoming map[string][]string // nodeID -> dependent IDs
	meta     Metadata
}

// New creates an empty DAG with optional graph-level metadata.
func New(meta Metadata) *DAG {
	if meta == nil {
		meta = Metadata{}
	}
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		meta:     meta,
	}
}

// Meta returns the graph-level metadata map.
func (d *DAG) Meta() Metadata { return d.meta }

// AddNode adds a node. Returns ErrInvalidNodeID for an empty ID and
// ErrDuplicateNodeID if the ID is taken. A nil Meta is replaced with an
// empty map.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	d.nodes[node.ID] = node
	d.order = append(d.order, node.ID)
	return nil
}

// SetRows updates row assignments. Nodes missing from rows keep their row.
func (d *DAG) SetRows(rows map[string]int) {
	for id, r := range rows {
		if n, ok := d.nodes[id]; ok {
			n.Row = r
		}
	}
}

// AddEdge adds a directed edge between two existing nodes.
// Self-loops are accepted so that a cyclic proposal can be represented and
// then rejected by the cycle search.
func (d *DAG) AddEdge(e Edge) error {
	src, ok := d.nodes[e.From]
	if !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if src.IsDangling() {
		return ErrDanglingSource
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e.To)
	d.incoming[e.To] = append(d.incoming[e.To], e.From)
	return nil
}

// RemoveEdge removes the edge from→to if it exists.
// If multiple edges exist between the same nodes, all are removed.
func (d *DAG) RemoveEdge(from, to string) {
	d.edges = slices.DeleteFunc(d.edges, func(e Edge) bool { return e.From == from && e.To == to })
	d.outgoing[from] = slices.DeleteFunc(d.outgoing[from], func(s string) bool { return s == to })
	d.incoming[to] = slices.DeleteFunc(d.incoming[to], func(s string) bool { return s == from })
}

// SetChildren replaces all outgoing edges of id with edges to children.
// Unknown child IDs are added as dangling nodes. Returns ErrUnknownSourceNode
// if id is not in the graph.
func (d *DAG) SetChildren(id string, children []string) error {
	if _, ok := d.nodes[id]; !ok {
		return ErrUnknownSourceNode
	}
	for _, c := range slices.Clone(d.outgoing[id]) {
		d.RemoveEdge(id, c)
	}
	for _, c := range children {
		if _, ok := d.nodes[c]; !ok {
			if err := d.AddNode(Node{ID: c, Kind: NodeKindDangling}); err != nil {
				return err
			}
		}
		if err := d.AddEdge(Edge{From: id, To: c}); err != nil {
			return err
		}
	}
	return nil
}

// Nodes returns all nodes in insertion order. The pointers refer to the
// graph's nodes.
func (d *DAG) Nodes() []*Node {
	nodes := make([]*Node, 0, len(d.order))
	for _, id := range d.order {
		nodes = append(nodes, d.nodes[id])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the graph.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the prerequisite IDs of a node. Read-only view.
func (d *DAG) Children(id string) []string { return d.outgoing[id] }

// Parents returns the IDs of nodes that depend on this node. Read-only view.
func (d *DAG) Parents(id string) []string { return d.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
func (d *DAG) OutDegree(id string) int { return len(d.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
func (d *DAG) InDegree(id string) int { return len(d.incoming[id]) }

// Node returns the node with the given ID and true, or nil and false.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Sources returns nodes nothing depends on, in insertion order.
func (d *DAG) Sources() []*Node {
	var sources []*Node
	for _, id := range d.order {
		if len(d.incoming[id]) == 0 {
			sources = append(sources, d.nodes[id])
		}
	}
	return sources
}

// Sinks returns nodes without prerequisites, in insertion order.
func (d *DAG) Sinks() []*Node {
	var sinks []*Node
	for _, id := range d.order {
		if len(d.outgoing[id]) == 0 {
			sinks = append(sinks, d.nodes[id])
		}
	}
	return sinks
}

// RowIDs returns all distinct row indices in ascending order.
func (d *DAG) RowIDs() []int {
	rows := make(map[int]struct{})
	for _, n := range d.nodes {
		rows[n.Row] = struct{}{}
	}
	return slices.Sorted(maps.Keys(rows))
}

// NodesInRow returns the nodes assigned to row, in insertion order.
func (d *DAG) NodesInRow(row int) []*Node {
	var nodes []*Node
	for _, id := range d.order {
		if n := d.nodes[id]; n.Row == row {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Clone returns a deep copy of the graph structure. Metadata maps are
// copied shallowly.
func (d *DAG) Clone() *DAG {
	c := New(maps.Clone(d.meta))
	for _, id := range d.order {
		n := *d.nodes[id]
		n.Meta = maps.Clone(n.Meta)
		_ = c.AddNode(n)
	}
	for _, e := range d.edges {
		e.Meta = maps.Clone(e.Meta)
		_ = c.AddEdge(e)
	}
	return c
}

// NodeIDs extracts the ID from each node in a slice.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

// NodePosMap maps each node ID to its index in nodes.
func NodePosMap(nodes []*Node) map[string]int {
	m := make(map[string]int, len(nodes))
	for i, n := range nodes {
		m[n.ID] = i
	}
	return m
}
