package deps

import (
	"github.com/matzehuels/habitstack/pkg/dag"
	"github.com/matzehuels/habitstack/pkg/dag/transform"
	"github.com/matzehuels/habitstack/pkg/errors"
	"github.com/matzehuels/habitstack/pkg/habit"
)

// Graph builds the prerequisite graph of all: one node per habit, an edge
// from each habit to each of its prerequisites, and a dangling leaf node for
// every prerequisite id that matches no habit. Node metadata carries the
// habit title under "title". For duplicate ids the first habit wins.
func Graph(all habit.Collection) *dag.DAG {
	g := dag.New(nil)
	var owners []*habit.Habit
	for i := range all {
		h := &all[i]
		if err := g.AddNode(dag.Node{ID: h.ID, Meta: dag.Metadata{"title": h.DisplayName()}}); err != nil {
			continue // empty or duplicate id
		}
		owners = append(owners, h)
	}
	for _, h := range owners {
		_ = g.SetChildren(h.ID, nonEmpty(h.Prerequisites))
	}
	return g
}

// FindCycle returns the cycle that giving candidateID the prerequisite list
// candidatePrereqs would create, or nil if the edit is safe. The path starts
// and ends with candidateID.
//
// candidateID need not exist in all; a new habit is inserted for the check.
// A candidate listing itself is a cycle. all is not modified.
func FindCycle(candidateID string, candidatePrereqs []string, all habit.Collection) []string {
	if candidateID == "" {
		return nil
	}
	g := Graph(all)
	n, ok := g.Node(candidateID)
	if !ok {
		_ = g.AddNode(dag.Node{ID: candidateID})
	} else if n.IsDangling() {
		// Already referenced as a prerequisite, about to become a habit.
		n.Kind = dag.NodeKindHabit
	}
	_ = g.SetChildren(candidateID, nonEmpty(candidatePrereqs))
	return g.CycleThrough(candidateID)
}

// WouldCreateCycle reports whether giving candidateID the prerequisite list
// candidatePrereqs would make the habit depend on itself.
func WouldCreateCycle(candidateID string, candidatePrereqs []string, all habit.Collection) bool {
	return FindCycle(candidateID, candidatePrereqs, all) != nil
}

// Validate checks the stored collection as a whole and returns an
// ErrCodeCycleDetected error wrapping an *errors.CycleError when any habit
// transitively depends on itself.
func Validate(all habit.Collection) error {
	if cycle := Graph(all).FindCycle(); cycle != nil {
		return errors.Wrap(errors.ErrCodeCycleDetected, &errors.CycleError{Path: cycle},
			"habit %q depends on itself", cycle[0])
	}
	return nil
}

// Tiers returns habit ids grouped so that each habit appears in a later tier
// than all of its prerequisites. Tier 0 holds habits without (resolvable)
// prerequisites. Within a tier, ids keep collection order. Dangling ids are
// not listed.
//
// Tiers fails with ErrCodeCycleDetected when the collection is cyclic.
func Tiers(all habit.Collection) ([][]string, error) {
	if err := Validate(all); err != nil {
		return nil, err
	}
	g := Graph(all)
	unlocks := transform.Reverse(g)
	transform.AssignLayers(unlocks)

	var tiers [][]string
	for _, row := range unlocks.RowIDs() {
		var ids []string
		for _, n := range unlocks.NodesInRow(row) {
			if orig, ok := g.Node(n.ID); ok && orig.IsDangling() {
				continue
			}
			ids = append(ids, n.ID)
		}
		if len(ids) > 0 {
			tiers = append(tiers, ids)
		}
	}
	return tiers, nil
}

// nonEmpty drops empty ids, which cannot be graph nodes. They never name a
// habit, so they cannot take part in a cycle either.
func nonEmpty(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
