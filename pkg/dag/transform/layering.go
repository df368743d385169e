package transform

import "github.com/matzehuels/habitstack/pkg/dag"

// AssignLayers assigns nodes to rows based on their depth in the graph.
//
// It uses longest-path layering via Kahn's algorithm: sources (in-degree 0)
// are placed at row 0 and each child at one plus the maximum row of its
// parents. Existing row assignments are overwritten.
//
// AssignLayers returns false if some nodes were never released because they
// sit on or below a cycle; those nodes keep row 0. Run [BreakCycles] first
// when the graph may be cyclic.
//
// Time complexity is O(V + E).
func AssignLayers(g *dag.DAG) bool {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		rows[n.ID] = 0
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	released := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		released++

		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRows(rows)
	return released == len(nodes)
}

// Reverse returns a copy of g with every edge flipped. Node metadata is
// shared with g. Dangling nodes become regular nodes in the copy, since
// flipping gives them outgoing edges.
func Reverse(g *dag.DAG) *dag.DAG {
	r := dag.New(g.Meta())
	for _, n := range g.Nodes() {
		cp := *n
		cp.Kind = dag.NodeKindHabit
		_ = r.AddNode(cp)
	}
	for _, e := range g.Edges() {
		_ = r.AddEdge(dag.Edge{From: e.To, To: e.From, Meta: e.Meta})
	}
	return r
}
