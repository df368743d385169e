package dag

import (
	"errors"
	"slices"
	"testing"
)

func build(t *testing.T, nodes []string, edges [][2]string) *DAG {
	t.Helper()
	g := New(nil)
	for _, id := range nodes {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%s->%s): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestAddNodeErrors(t *testing.T) {
	g := New(nil)
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a) = %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(dup) = %v, want ErrDuplicateNodeID", err)
	}
	n, _ := g.Node("a")
	if n.Meta == nil {
		t.Error("AddNode should initialize Meta")
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := build(t, []string{"a"}, nil)
	_ = g.AddNode(Node{ID: "ghost", Kind: NodeKindDangling})

	if err := g.AddEdge(Edge{From: "x", To: "a"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(unknown from) = %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(unknown to) = %v", err)
	}
	if err := g.AddEdge(Edge{From: "ghost", To: "a"}); !errors.Is(err, ErrDanglingSource) {
		t.Errorf("AddEdge(from dangling) = %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "ghost"}); err != nil {
		t.Errorf("AddEdge(to dangling) = %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "a"}); err != nil {
		t.Errorf("AddEdge(self loop) = %v", err)
	}
}

func TestQueries(t *testing.T) {
	g := build(t, []string{"run", "stretch", "water", "sleep"}, [][2]string{
		{"run", "stretch"},
		{"run", "water"},
		{"stretch", "water"},
	})

	if got := g.Children("run"); !slices.Equal(got, []string{"stretch", "water"}) {
		t.Errorf("Children(run) = %v", got)
	}
	if got := g.Parents("water"); !slices.Equal(got, []string{"run", "stretch"}) {
		t.Errorf("Parents(water) = %v", got)
	}
	if g.OutDegree("run") != 2 || g.InDegree("water") != 2 {
		t.Error("unexpected degrees")
	}
	if got := NodeIDs(g.Sources()); !slices.Equal(got, []string{"run", "sleep"}) {
		t.Errorf("Sources() = %v", got)
	}
	if got := NodeIDs(g.Sinks()); !slices.Equal(got, []string{"water", "sleep"}) {
		t.Errorf("Sinks() = %v", got)
	}
	if got := NodeIDs(g.Nodes()); !slices.Equal(got, []string{"run", "stretch", "water", "sleep"}) {
		t.Errorf("Nodes() should keep insertion order, got %v", got)
	}
}

func TestRemoveEdge(t *testing.T) {
	g := build(t, []string{"a", "b"}, [][2]string{{"a", "b"}, {"a", "b"}})
	g.RemoveEdge("a", "b")
	if g.EdgeCount() != 0 || g.OutDegree("a") != 0 || g.InDegree("b") != 0 {
		t.Errorf("RemoveEdge left edges behind: %v", g.Edges())
	}
	g.RemoveEdge("a", "zzz")
}

func TestSetChildren(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}})

	if err := g.SetChildren("a", []string{"c", "ghost"}); err != nil {
		t.Fatalf("SetChildren() = %v", err)
	}
	if got := g.Children("a"); !slices.Equal(got, []string{"c", "ghost"}) {
		t.Errorf("Children(a) = %v", got)
	}
	if g.InDegree("b") != 0 {
		t.Error("old edge a->b should be gone")
	}
	ghost, ok := g.Node("ghost")
	if !ok || !ghost.IsDangling() {
		t.Error("unknown child should become a dangling node")
	}
	if err := g.SetChildren("nope", nil); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("SetChildren(unknown) = %v", err)
	}
}

func TestRows(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, nil)
	g.SetRows(map[string]int{"b": 2, "c": 1, "zzz": 9})
	if got := g.RowIDs(); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("RowIDs() = %v", got)
	}
	if got := NodeIDs(g.NodesInRow(2)); !slices.Equal(got, []string{"b"}) {
		t.Errorf("NodesInRow(2) = %v", got)
	}
}

func TestClone(t *testing.T) {
	g := build(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	c := g.Clone()
	c.RemoveEdge("a", "b")
	_ = c.AddNode(Node{ID: "z"})
	if g.EdgeCount() != 1 || g.NodeCount() != 2 {
		t.Error("Clone() should not share structure with the original")
	}
}

func TestPosMap(t *testing.T) {
	g := build(t, []string{"x", "y"}, nil)
	pos := NodePosMap(g.Nodes())
	if pos["x"] != 0 || pos["y"] != 1 {
		t.Errorf("NodePosMap() = %v", pos)
	}
}
