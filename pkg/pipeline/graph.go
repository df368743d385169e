package pipeline

import (
	"time"

	"github.com/matzehuels/habitstack/pkg/dag"
	"github.com/matzehuels/habitstack/pkg/dag/transform"
	"github.com/matzehuels/habitstack/pkg/deps"
	"github.com/matzehuels/habitstack/pkg/habit"
	"github.com/matzehuels/habitstack/pkg/render/nodelink"
	"github.com/matzehuels/habitstack/pkg/stats"
)

// BuildGraph returns the prerequisite graph of habits. With a non-zero
// date, every habit node carries its status and current streak on that
// day under the nodelink metadata keys.
func BuildGraph(habits habit.Collection, date time.Time) *dag.DAG {
	g := deps.Graph(habits)
	if date.IsZero() {
		return g
	}
	for _, n := range g.Nodes() {
		if n.IsDangling() {
			continue
		}
		h, ok := habits.Find(n.ID)
		if !ok {
			continue
		}
		n.Meta[nodelink.MetaStatus] = habit.StatusOn(h, habits, date).String()
		n.Meta[nodelink.MetaStreak] = stats.CurrentStreak(h, habits, date)
	}
	return g
}

// Reduce returns a copy of g with implied edges removed. Back-edges are
// cut before the reduction and added back flagged with
// nodelink.MetaCycle; they are also returned.
func Reduce(g *dag.DAG) (*dag.DAG, []dag.Edge) {
	work := g.Clone()
	cut := transform.BreakCycles(work)
	transform.TransitiveReduction(work)
	for _, e := range cut {
		_ = work.AddEdge(dag.Edge{From: e.From, To: e.To, Meta: dag.Metadata{nodelink.MetaCycle: true}})
	}
	return work, cut
}
