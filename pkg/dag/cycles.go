package dag

const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// Validate returns ErrGraphHasCycle if any cycle exists, nil otherwise.
// Cycle detection runs in O(N+E) time.
func (d *DAG) Validate() error {
	if d.FindCycle() != nil {
		return ErrGraphHasCycle
	}
	return nil
}

// FindCycle searches the whole graph and returns the first cycle found as a
// path of node IDs whose first element is repeated at the end
// (e.g. [a b a]). It returns nil for an acyclic graph. Roots are tried in
// insertion order.
func (d *DAG) FindCycle() []string {
	color := make(map[string]int, len(d.nodes))
	var stack []string

	var dfs func(id string) []string
	dfs = func(id string) []string {
		color[id] = gray
		stack = append(stack, id)
		for _, child := range d.outgoing[id] {
			switch color[child] {
			case white:
				if cycle := dfs(child); cycle != nil {
					return cycle
				}
			case gray:
				return closeCycle(stack, child)
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return nil
	}

	for _, id := range d.order {
		if color[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// CycleThrough returns a cycle that passes through root, or nil.
//
// The search is rooted at root and reports only back-edges into root itself.
// Back-edges into other gray nodes close loops that do not involve root and
// are skipped; black nodes are never re-entered, since a fully explored node
// that could reach root would already have produced a result.
func (d *DAG) CycleThrough(root string) []string {
	if _, ok := d.nodes[root]; !ok {
		return nil
	}
	color := make(map[string]int, len(d.nodes))
	var stack []string

	var dfs func(id string) []string
	dfs = func(id string) []string {
		color[id] = gray
		stack = append(stack, id)
		for _, child := range d.outgoing[id] {
			if child == root {
				return closeCycle(stack, root)
			}
			if color[child] == white {
				if cycle := dfs(child); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return nil
	}
	return dfs(root)
}

// closeCycle returns the stack suffix starting at target, with target
// appended to close the loop.
func closeCycle(stack []string, target string) []string {
	for i, id := range stack {
		if id == target {
			cycle := make([]string, 0, len(stack)-i+1)
			cycle = append(cycle, stack[i:]...)
			return append(cycle, target)
		}
	}
	return []string{target, target}
}
