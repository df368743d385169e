// Package transform provides graph transformations over the habit
// prerequisite graph.
//
// # Layering
//
// [AssignLayers] gives every node a row (tier) using longest-path layering:
// sources sit at row 0 and every node is placed one row below its deepest
// parent. Applied to a graph whose edges point from a prerequisite to its
// dependents, the rows are a valid daily order: everything in row n can be
// done once rows 0..n-1 are done.
//
// # Transitive Reduction
//
// [TransitiveReduction] removes edges implied by longer paths. If "run"
// requires "stretch" and "stretch" requires "water", an explicit
// run→water edge adds nothing to a drawing and is dropped.
//
// # Cycle Breaking
//
// [BreakCycles] removes back-edges found by depth-first search so that a
// cyclic habit file can still be drawn. It is a display aid only; the
// removed edges are returned so callers can report them.
package transform
