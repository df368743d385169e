// Package deps answers questions about the prerequisite graph of a habit
// collection.
//
// # Cycle checks
//
// Prerequisite edits must keep the graph acyclic. [WouldCreateCycle] is the
// validation oracle callers consult before accepting an edit: it overlays the
// proposed prerequisite list for one habit on the stored collection (without
// mutating anything) and reports whether the candidate habit would then
// reach itself. [FindCycle] answers the same question but returns the
// offending path, e.g. [read journal read], for error messages.
//
// A cycle is attributed to an edit only if it passes through the edited
// habit. Loops elsewhere in the stored data exist with or without the edit;
// [Validate] reports those.
//
//	if deps.WouldCreateCycle("read", []string{"journal"}, habits) {
//	    return errors.New("read cannot require journal")
//	}
//
// The caller is responsible for rejecting the edit; this package never
// stores anything.
//
// # Ordering
//
// [Tiers] groups habits so that every habit comes after all of its
// prerequisites, which is the order in which a day's habits unlock.
//
// Prerequisite ids that match no habit are leaves in every graph built
// here: they can block a habit (see habit.IsPrerequisitesMet) but never
// close a cycle.
package deps
