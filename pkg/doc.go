// Package pkg provides the libraries behind habitstack, a tracker for
// recurring habits whose prerequisites must be done first on the same day.
//
// # Overview
//
// The pkg directory is organized in layers:
//
//  1. Core: [datekey] (calendar-day keys), [habit] (data model, due rules,
//     prerequisite checks), [deps] (prerequisite graph, cycle detection,
//     tiers) and [stats] (completion rate, weekly series, streaks).
//  2. Graph: [dag] and [dag/transform] hold the graph structure and its
//     algorithms; [render/nodelink] draws it, [graph] serializes it.
//  3. Infrastructure: [io] (habit files), [config], [cache], [errors],
//     [observability] and [buildinfo].
//  4. Orchestration: [pipeline] (build, reduce, render with caching).
//
// # Quick Start
//
// Load habits and ask what can be done today:
//
//	res, err := io.ImportFile("habits.json")
//	if err != nil {
//	    return err
//	}
//	today := time.Now()
//	for i := range res.Habits {
//	    h := &res.Habits[i]
//	    fmt.Println(h.DisplayName(), habit.StatusOn(h, res.Habits, today))
//	}
//
// Check an edit before saving it:
//
//	if cycle := deps.FindCycle("run", []string{"stretch"}, res.Habits); cycle != nil {
//	    fmt.Println("cycle:", errors.FormatPath(cycle))
//	}
//
// The pure core ([datekey], [habit], [deps], [stats]) never logs, never
// does IO and never mutates its inputs.
package pkg
